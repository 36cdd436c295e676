package service

import (
	"errors"

	"wanderfeed/internal/domain/admin/repository"
	postmodel "wanderfeed/internal/domain/post/model"
	usermodel "wanderfeed/internal/domain/user/model"
	"wanderfeed/internal/pkg/uploader"
	"wanderfeed/pkg/apperr"

	"gorm.io/gorm"
)

// AdminService is the moderation surface: ban management and the report queue.
// Ban and unban are idempotent status transitions.
type AdminService interface {
	SearchUsers(query string) ([]usermodel.User, error)
	BanUser(userID uint) error
	UnbanUser(userID uint) error
	ListBanned() ([]usermodel.User, error)
	ListReports() ([]postmodel.Report, error)
	DeleteReport(reportID uint) error
}

type adminService struct {
	repo  repository.AdminRepository
	media uploader.MediaStore
}

func NewAdminService(repo repository.AdminRepository, media uploader.MediaStore) AdminService {
	return &adminService{repo: repo, media: media}
}

func (s *adminService) SearchUsers(query string) ([]usermodel.User, error) {
	users, err := s.repo.SearchUsers(query)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Photo = s.media.ResolveOrDefault(users[i].Photo)
	}
	return users, nil
}

func (s *adminService) setStatus(userID uint, status string) error {
	user, err := s.repo.GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("user not found")
		}
		return err
	}

	// Already in the target state: success, nothing to do.
	if user.Status == status {
		return nil
	}

	return s.repo.UpdateUserStatus(userID, status)
}

func (s *adminService) BanUser(userID uint) error {
	return s.setStatus(userID, usermodel.StatusBanned)
}

func (s *adminService) UnbanUser(userID uint) error {
	return s.setStatus(userID, usermodel.StatusActive)
}

func (s *adminService) ListBanned() ([]usermodel.User, error) {
	users, err := s.repo.ListBanned()
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Photo = s.media.ResolveOrDefault(users[i].Photo)
	}
	return users, nil
}

// ListReports returns the report queue joined with each report's post and
// reporter, photos and cover pictures resolved.
func (s *adminService) ListReports() ([]postmodel.Report, error) {
	reports, err := s.repo.ListReports()
	if err != nil {
		return nil, err
	}

	for i := range reports {
		reports[i].User.Photo = s.media.ResolveOrDefault(reports[i].User.Photo)
		if len(reports[i].Post.Pictures) > 0 {
			pictures := make([]string, len(reports[i].Post.Pictures))
			copy(pictures, reports[i].Post.Pictures)
			pictures[0] = s.media.Resolve(pictures[0])
			reports[i].Post.Pictures = pictures
		}
	}
	return reports, nil
}

func (s *adminService) DeleteReport(reportID uint) error {
	if _, err := s.repo.GetReport(reportID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("report not found")
		}
		return err
	}
	return s.repo.DeleteReport(reportID)
}
