package service

import (
	"errors"
	"mime/multipart"
	"testing"

	commentmodel "wanderfeed/internal/domain/comment/model"
	engagementmodel "wanderfeed/internal/domain/engagement/model"
	"wanderfeed/internal/domain/post/model"
	"wanderfeed/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockPostRepository is a mock of PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *model.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id uint) (*model.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) Update(post *model.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) ListAll(offset, limit int) ([]model.Post, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]model.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) ListByTags(tags []string) ([]model.Post, error) {
	args := m.Called(tags)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUser(userID uint) ([]model.Post, error) {
	args := m.Called(userID)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUsers(userIDs []uint) ([]model.Post, error) {
	args := m.Called(userIDs)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) ListByIDs(ids []uint) ([]model.Post, error) {
	args := m.Called(ids)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) SearchByTitle(query string) ([]model.Post, error) {
	args := m.Called(query)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) SearchByRegion(query string) ([]model.Post, error) {
	args := m.Called(query)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) CountByUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) DeleteLikesByPost(postID uint) error {
	args := m.Called(postID)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteSavedByPost(postID uint) error {
	args := m.Called(postID)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteCommentsByPost(postID uint) error {
	args := m.Called(postID)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteReportsByPost(postID uint) error {
	args := m.Called(postID)
	return args.Error(0)
}

func (m *MockPostRepository) CreateReport(report *model.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

// MockEngagementRepository is a mock of the like/save persistence gateway.
type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) CreateLike(like *engagementmodel.Like) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *MockEngagementRepository) DeleteLike(userID, postID uint) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *MockEngagementRepository) HasLiked(userID, postID uint) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepository) CountLikes(postID uint) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementRepository) CreateSaved(saved *engagementmodel.SavedPost) error {
	args := m.Called(saved)
	return args.Error(0)
}

func (m *MockEngagementRepository) DeleteSaved(userID, postID uint) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *MockEngagementRepository) HasSaved(userID, postID uint) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepository) ListSavedPostIDs(userID uint) ([]uint, error) {
	args := m.Called(userID)
	return args.Get(0).([]uint), args.Error(1)
}

// MockCommentRepository is a mock of the comment persistence gateway.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *commentmodel.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(id uint) (*commentmodel.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commentmodel.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(postID uint) ([]commentmodel.Comment, error) {
	args := m.Called(postID)
	return args.Get(0).([]commentmodel.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCommentRepository) CountByPost(postID uint) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

// recordingMediaStore records deletions and can be told to fail per key.
type recordingMediaStore struct {
	deleted []string
	fail    map[string]error
}

func (s *recordingMediaStore) UploadFile(file *multipart.FileHeader) (string, error) {
	return "", nil
}

func (s *recordingMediaStore) Resolve(key string) string {
	if key == "" {
		return ""
	}
	return "https://media.test/" + key
}

func (s *recordingMediaStore) ResolveOrDefault(key string) string {
	if key == "" {
		key = "avatars/man_avatar.jpg"
	}
	return "https://media.test/" + key
}

func (s *recordingMediaStore) Delete(key string) error {
	s.deleted = append(s.deleted, key)
	if err, ok := s.fail[key]; ok {
		return err
	}
	return nil
}

func ownedPost(id, userID uint) *model.Post {
	post := &model.Post{UserID: userID, Title: "Trip"}
	post.ID = id
	return post
}

func TestEditPost(t *testing.T) {
	t.Run("Missing post and foreign post fail identically", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo, new(MockEngagementRepository), new(MockCommentRepository), &recordingMediaStore{})

		mockRepo.On("GetByID", uint(404)).Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("GetByID", uint(5)).Return(ownedPost(5, 99), nil)

		title := "New title"
		_, missingErr := service.EditPost(1, 404, EditPostInput{Title: &title})
		_, foreignErr := service.EditPost(1, 5, EditPostInput{Title: &title})

		assert.True(t, apperr.Is(missingErr, apperr.KindForbidden))
		assert.Equal(t, missingErr, foreignErr)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("Only provided fields change", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo, new(MockEngagementRepository), new(MockCommentRepository), &recordingMediaStore{})

		post := ownedPost(5, 1)
		post.Region = "Altai"

		mockRepo.On("GetByID", uint(5)).Return(post, nil)
		mockRepo.On("Update", mock.AnythingOfType("*model.Post")).Return(nil)

		title := "New title"
		updated, err := service.EditPost(1, 5, EditPostInput{Title: &title})

		assert.NoError(t, err)
		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, "Altai", updated.Region)
	})
}

func TestDeletePost(t *testing.T) {
	t.Run("Dependent rows go before the post row", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		media := &recordingMediaStore{}
		service := NewPostService(mockRepo, new(MockEngagementRepository), new(MockCommentRepository), media)

		post := ownedPost(5, 1)
		post.Pictures = []string{"posts/a.jpg", "posts/b.jpg"}

		var order []string
		record := func(step string) func(mock.Arguments) {
			return func(mock.Arguments) { order = append(order, step) }
		}

		mockRepo.On("GetByID", uint(5)).Return(post, nil)
		mockRepo.On("DeleteLikesByPost", uint(5)).Run(record("likes")).Return(nil)
		mockRepo.On("DeleteSavedByPost", uint(5)).Run(record("saved")).Return(nil)
		mockRepo.On("DeleteCommentsByPost", uint(5)).Run(record("comments")).Return(nil)
		mockRepo.On("DeleteReportsByPost", uint(5)).Run(record("reports")).Return(nil)
		mockRepo.On("Delete", uint(5)).Run(record("post")).Return(nil)

		err := service.DeletePost(1, 5)

		assert.NoError(t, err)
		assert.Equal(t, []string{"likes", "saved", "comments", "reports", "post"}, order)
		assert.Equal(t, []string{"posts/a.jpg", "posts/b.jpg"}, media.deleted)
	})

	t.Run("Failed picture deletion does not abort the cascade", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		media := &recordingMediaStore{fail: map[string]error{"posts/a.jpg": errors.New("bucket unreachable")}}
		service := NewPostService(mockRepo, new(MockEngagementRepository), new(MockCommentRepository), media)

		post := ownedPost(5, 1)
		post.Pictures = []string{"posts/a.jpg", "posts/b.jpg"}

		mockRepo.On("GetByID", uint(5)).Return(post, nil)
		mockRepo.On("DeleteLikesByPost", uint(5)).Return(nil)
		mockRepo.On("DeleteSavedByPost", uint(5)).Return(nil)
		mockRepo.On("DeleteCommentsByPost", uint(5)).Return(nil)
		mockRepo.On("DeleteReportsByPost", uint(5)).Return(nil)
		mockRepo.On("Delete", uint(5)).Return(nil)

		err := service.DeletePost(1, 5)

		assert.NoError(t, err)
		assert.Equal(t, []string{"posts/a.jpg", "posts/b.jpg"}, media.deleted)
		mockRepo.AssertCalled(t, "Delete", uint(5))
	})

	t.Run("Row cascade failure aborts before the post row", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo, new(MockEngagementRepository), new(MockCommentRepository), &recordingMediaStore{})

		mockRepo.On("GetByID", uint(5)).Return(ownedPost(5, 1), nil)
		mockRepo.On("DeleteLikesByPost", uint(5)).Return(errors.New("db down"))

		err := service.DeletePost(1, 5)

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
	})
}

func TestGetPost(t *testing.T) {
	t.Run("Missing post", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo, new(MockEngagementRepository), new(MockCommentRepository), &recordingMediaStore{})

		mockRepo.On("GetByID", uint(404)).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.GetPost(404, nil)

		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})

	t.Run("Viewer flags attached", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockLikes := new(MockEngagementRepository)
		mockComments := new(MockCommentRepository)
		service := NewPostService(mockRepo, mockLikes, mockComments, &recordingMediaStore{})

		mockRepo.On("GetByID", uint(5)).Return(ownedPost(5, 2), nil)
		mockLikes.On("CountLikes", uint(5)).Return(int64(4), nil)
		mockComments.On("CountByPost", uint(5)).Return(int64(2), nil)
		mockLikes.On("HasLiked", uint(9), uint(5)).Return(true, nil)
		mockLikes.On("HasSaved", uint(9), uint(5)).Return(false, nil)

		viewerID := uint(9)
		view, err := service.GetPost(5, &viewerID)

		assert.NoError(t, err)
		assert.Equal(t, int64(4), view.LikeCount)
		assert.Equal(t, int64(2), view.CommentCount)
		assert.True(t, view.Liked)
		assert.False(t, view.Saved)
	})
}

func TestReportPost(t *testing.T) {
	t.Run("Missing post", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo, new(MockEngagementRepository), new(MockCommentRepository), &recordingMediaStore{})

		mockRepo.On("GetByID", uint(404)).Return(nil, gorm.ErrRecordNotFound)

		err := service.ReportPost(1, 404, "spam")

		assert.True(t, apperr.Is(err, apperr.KindNotFound))
		mockRepo.AssertNotCalled(t, "CreateReport", mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo, new(MockEngagementRepository), new(MockCommentRepository), &recordingMediaStore{})

		mockRepo.On("GetByID", uint(5)).Return(ownedPost(5, 2), nil)
		mockRepo.On("CreateReport", mock.MatchedBy(func(r *model.Report) bool {
			return r.PostID == 5 && r.UserID == 1 && r.Description == "spam"
		})).Return(nil)

		err := service.ReportPost(1, 5, "spam")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
