package response

// Business status codes.
const (
	CodeSuccess = 0
	CodeError   = 1

	// User / social graph errors 100xx
	ErrUserExists        = 10001
	ErrUserNotFound      = 10002
	ErrAuthFailed        = 10003
	ErrTokenInvalid      = 10004
	ErrNoPermission      = 10005
	ErrUserBanned        = 10006
	ErrSelfSubscription  = 10007
	ErrAlreadySubscribed = 10008

	// Content errors 200xx
	ErrPostNotFound    = 20001
	ErrCommentNotFound = 20002
	ErrReportNotFound  = 20003

	// System errors 500xx
	ErrServerInternal  = 50001
	ErrInvalidParam    = 50002
	ErrTooManyRequests = 50003
)
