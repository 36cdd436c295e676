package repository

import (
	postmodel "wanderfeed/internal/domain/post/model"
	usermodel "wanderfeed/internal/domain/user/model"

	"gorm.io/gorm"
)

// AdminRepository is the persistence gateway for moderation queries.
type AdminRepository interface {
	// SearchUsers finds ban candidates: admins and already-banned accounts
	// are excluded.
	SearchUsers(query string) ([]usermodel.User, error)
	GetUser(id uint) (*usermodel.User, error)
	UpdateUserStatus(id uint, status string) error
	ListBanned() ([]usermodel.User, error)

	ListReports() ([]postmodel.Report, error)
	GetReport(id uint) (*postmodel.Report, error)
	DeleteReport(id uint) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) SearchUsers(query string) ([]usermodel.User, error) {
	var users []usermodel.User
	err := r.db.
		Where("(login ILIKE ? OR email ILIKE ?)", "%"+query+"%", "%"+query+"%").
		Where("role <> ?", usermodel.RoleAdmin).
		Where("status <> ?", usermodel.StatusBanned).
		Order("created_at desc").
		Find(&users).Error
	return users, err
}

func (r *adminRepository) GetUser(id uint) (*usermodel.User, error) {
	var user usermodel.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *adminRepository) UpdateUserStatus(id uint, status string) error {
	return r.db.Model(&usermodel.User{}).Where("id = ?", id).Update("status", status).Error
}

func (r *adminRepository) ListBanned() ([]usermodel.User, error) {
	var users []usermodel.User
	err := r.db.
		Where("status = ?", usermodel.StatusBanned).
		Order("created_at desc").
		Find(&users).Error
	return users, err
}

func (r *adminRepository) ListReports() ([]postmodel.Report, error) {
	var reports []postmodel.Report
	err := r.db.Preload("Post").Preload("User").
		Order("created_at desc").
		Find(&reports).Error
	return reports, err
}

func (r *adminRepository) GetReport(id uint) (*postmodel.Report, error) {
	var report postmodel.Report
	if err := r.db.Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *adminRepository) DeleteReport(id uint) error {
	return r.db.Where("id = ?", id).Delete(&postmodel.Report{}).Error
}
