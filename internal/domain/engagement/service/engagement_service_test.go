package service

import (
	"testing"

	"wanderfeed/internal/domain/engagement/model"
	postmodel "wanderfeed/internal/domain/post/model"
	postservice "wanderfeed/internal/domain/post/service"
	"wanderfeed/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockEngagementRepository is a mock of EngagementRepository
type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) CreateLike(like *model.Like) error {
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

func (m *MockEngagementRepository) CreateSaved(saved *model.SavedPost) error {
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

// MockPostRepository is a mock of the post persistence gateway; the
// engagement ledger only reaches for GetByID and ListByIDs.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *postmodel.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id uint) (*postmodel.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postmodel.Post), args.Error(1)
}

func (m *MockPostRepository) Update(post *postmodel.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) ListAll(offset, limit int) ([]postmodel.Post, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]postmodel.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) ListByTags(tags []string) ([]postmodel.Post, error) {
	args := m.Called(tags)
	return args.Get(0).([]postmodel.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUser(userID uint) ([]postmodel.Post, error) {
	args := m.Called(userID)
	return args.Get(0).([]postmodel.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUsers(userIDs []uint) ([]postmodel.Post, error) {
	args := m.Called(userIDs)
	return args.Get(0).([]postmodel.Post), args.Error(1)
}

func (m *MockPostRepository) ListByIDs(ids []uint) ([]postmodel.Post, error) {
	args := m.Called(ids)
	return args.Get(0).([]postmodel.Post), args.Error(1)
}

func (m *MockPostRepository) SearchByTitle(query string) ([]postmodel.Post, error) {
	args := m.Called(query)
	return args.Get(0).([]postmodel.Post), args.Error(1)
}

func (m *MockPostRepository) SearchByRegion(query string) ([]postmodel.Post, error) {
	args := m.Called(query)
	return args.Get(0).([]postmodel.Post), args.Error(1)
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

func (m *MockPostRepository) CreateReport(report *postmodel.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

// MockFeedService is a mock of the feed decorator.
type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) ListAll(viewerID *uint, offset, limit int) ([]postservice.PostView, int64, error) {
	args := m.Called(viewerID, offset, limit)
	return args.Get(0).([]postservice.PostView), args.Get(1).(int64), args.Error(2)
}

func (m *MockFeedService) ListByTags(tags []string, viewerID *uint) ([]postservice.PostView, error) {
	args := m.Called(tags, viewerID)
	return args.Get(0).([]postservice.PostView), args.Error(1)
}

func (m *MockFeedService) ListSubscribed(viewerID uint) ([]postservice.PostView, error) {
	args := m.Called(viewerID)
	return args.Get(0).([]postservice.PostView), args.Error(1)
}

func (m *MockFeedService) Search(query string) (*postservice.SearchResult, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postservice.SearchResult), args.Error(1)
}

func (m *MockFeedService) DecoratePosts(posts []postmodel.Post, viewerID *uint) ([]postservice.PostView, error) {
	args := m.Called(posts, viewerID)
	return args.Get(0).([]postservice.PostView), args.Error(1)
}

func targetPost(id uint) *postmodel.Post {
	post := &postmodel.Post{Title: "Trip"}
	post.ID = id
	return post
}

func TestAddLike(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockEngagementRepository)
		mockPosts := new(MockPostRepository)
		service := NewEngagementService(mockRepo, mockPosts, new(MockFeedService))

		mockPosts.On("GetByID", uint(5)).Return(targetPost(5), nil)
		mockRepo.On("CreateLike", mock.MatchedBy(func(l *model.Like) bool {
			return l.UserID == 1 && l.PostID == 5
		})).Return(nil)

		err := service.AddLike(1, 5)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Double like is a no-op", func(t *testing.T) {
		mockRepo := new(MockEngagementRepository)
		mockPosts := new(MockPostRepository)
		service := NewEngagementService(mockRepo, mockPosts, new(MockFeedService))

		mockPosts.On("GetByID", uint(5)).Return(targetPost(5), nil)
		mockRepo.On("CreateLike", mock.AnythingOfType("*model.Like")).Return(gorm.ErrDuplicatedKey)

		err := service.AddLike(1, 5)

		assert.NoError(t, err)
	})

	t.Run("Missing post", func(t *testing.T) {
		mockRepo := new(MockEngagementRepository)
		mockPosts := new(MockPostRepository)
		service := NewEngagementService(mockRepo, mockPosts, new(MockFeedService))

		mockPosts.On("GetByID", uint(404)).Return(nil, gorm.ErrRecordNotFound)

		err := service.AddLike(1, 404)

		assert.True(t, apperr.Is(err, apperr.KindNotFound))
		mockRepo.AssertNotCalled(t, "CreateLike", mock.Anything)
	})
}

func TestRemoveLike(t *testing.T) {
	t.Run("Removing a missing like is a no-op", func(t *testing.T) {
		mockRepo := new(MockEngagementRepository)
		service := NewEngagementService(mockRepo, new(MockPostRepository), new(MockFeedService))

		mockRepo.On("DeleteLike", uint(1), uint(5)).Return(nil)

		err := service.RemoveLike(1, 5)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestAddBookmark(t *testing.T) {
	t.Run("Double save is a no-op", func(t *testing.T) {
		mockRepo := new(MockEngagementRepository)
		mockPosts := new(MockPostRepository)
		service := NewEngagementService(mockRepo, mockPosts, new(MockFeedService))

		mockPosts.On("GetByID", uint(5)).Return(targetPost(5), nil)
		mockRepo.On("CreateSaved", mock.AnythingOfType("*model.SavedPost")).Return(gorm.ErrDuplicatedKey)

		err := service.AddBookmark(1, 5)

		assert.NoError(t, err)
	})
}

func TestListBookmarks(t *testing.T) {
	t.Run("Save order survives the id lookup", func(t *testing.T) {
		mockRepo := new(MockEngagementRepository)
		mockPosts := new(MockPostRepository)
		mockFeed := new(MockFeedService)
		service := NewEngagementService(mockRepo, mockPosts, mockFeed)

		third := *targetPost(3)
		seven := *targetPost(7)

		// Saved seven first, then three; the repo returns them by id.
		mockRepo.On("ListSavedPostIDs", uint(1)).Return([]uint{3, 7}, nil)
		mockPosts.On("ListByIDs", []uint{3, 7}).Return([]postmodel.Post{seven, third}, nil)

		viewerID := uint(1)
		mockFeed.On("DecoratePosts", []postmodel.Post{third, seven}, &viewerID).
			Return([]postservice.PostView{{Post: third}, {Post: seven}}, nil)

		views, err := service.ListBookmarks(1)

		assert.NoError(t, err)
		assert.Len(t, views, 2)
		assert.Equal(t, uint(3), views[0].ID)
		mockFeed.AssertExpectations(t)
	})

	t.Run("No bookmarks yields empty slice without queries", func(t *testing.T) {
		mockRepo := new(MockEngagementRepository)
		mockPosts := new(MockPostRepository)
		service := NewEngagementService(mockRepo, mockPosts, new(MockFeedService))

		mockRepo.On("ListSavedPostIDs", uint(1)).Return([]uint{}, nil)

		views, err := service.ListBookmarks(1)

		assert.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
		mockPosts.AssertNotCalled(t, "ListByIDs", mock.Anything)
	})
}
