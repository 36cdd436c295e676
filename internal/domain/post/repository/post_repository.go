package repository

import (
	commentmodel "wanderfeed/internal/domain/comment/model"
	engagementmodel "wanderfeed/internal/domain/engagement/model"
	"wanderfeed/internal/domain/post/model"

	"gorm.io/gorm"
)

// PostRepository is the persistence gateway for posts, reports and the
// row-level cascade issued when a post is removed.
type PostRepository interface {
	Create(post *model.Post) error
	GetByID(id uint) (*model.Post, error)
	Update(post *model.Post) error
	Delete(id uint) error

	// ListAll returns a page of the global feed plus the total row count.
	ListAll(offset, limit int) ([]model.Post, int64, error)
	ListByTags(tags []string) ([]model.Post, error)
	ListByUser(userID uint) ([]model.Post, error)
	ListByUsers(userIDs []uint) ([]model.Post, error)
	ListByIDs(ids []uint) ([]model.Post, error)
	SearchByTitle(query string) ([]model.Post, error)
	SearchByRegion(query string) ([]model.Post, error)
	CountByUser(userID uint) (int64, error)

	// Row-level cascade for post deletion. Each removes every dependent row
	// referencing the post; all must complete before the post row goes.
	DeleteLikesByPost(postID uint) error
	DeleteSavedByPost(postID uint) error
	DeleteCommentsByPost(postID uint) error
	DeleteReportsByPost(postID uint) error

	CreateReport(report *model.Report) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.Preload("User").Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Update(post *model.Post) error {
	return r.db.Save(post).Error
}

func (r *postRepository) Delete(id uint) error {
	return r.db.Where("id = ?", id).Delete(&model.Post{}).Error
}

func (r *postRepository) ListAll(offset, limit int) ([]model.Post, int64, error) {
	var total int64
	if err := r.db.Model(&model.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	err := r.db.Preload("User").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *postRepository) ListByTags(tags []string) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Preload("User").
		Where("tag IN ?", tags).
		Order("created_at desc").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByUser(userID uint) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByUsers(userIDs []uint) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Preload("User").
		Where("user_id IN ?", userIDs).
		Order("created_at desc").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByIDs(ids []uint) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Preload("User").Where("id IN ?", ids).Find(&posts).Error
	return posts, err
}

func (r *postRepository) SearchByTitle(query string) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Preload("User").
		Where("title ILIKE ?", "%"+query+"%").
		Order("created_at desc").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) SearchByRegion(query string) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Preload("User").
		Where("region ILIKE ?", "%"+query+"%").
		Order("created_at desc").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *postRepository) DeleteLikesByPost(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&engagementmodel.Like{}).Error
}

func (r *postRepository) DeleteSavedByPost(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&engagementmodel.SavedPost{}).Error
}

func (r *postRepository) DeleteCommentsByPost(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&commentmodel.Comment{}).Error
}

func (r *postRepository) DeleteReportsByPost(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&model.Report{}).Error
}

func (r *postRepository) CreateReport(report *model.Report) error {
	return r.db.Create(report).Error
}
