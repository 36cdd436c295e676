package response

import (
	"net/http"

	"wanderfeed/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// FromError maps a service error to an HTTP status and business code.
// Ownership failures come back as 403 whether or not the entity exists;
// services are responsible for not leaking the difference.
func FromError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		Error(c, http.StatusNotFound, ErrPostNotFound, err.Error())
	case apperr.KindForbidden:
		Error(c, http.StatusForbidden, ErrNoPermission, err.Error())
	case apperr.KindConflict:
		Error(c, http.StatusConflict, ErrAlreadySubscribed, err.Error())
	case apperr.KindValidation:
		Error(c, http.StatusBadRequest, ErrInvalidParam, err.Error())
	default:
		Error(c, http.StatusInternalServerError, ErrServerInternal, err.Error())
	}
}
