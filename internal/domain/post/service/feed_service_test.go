package service

import (
	"testing"

	"wanderfeed/internal/domain/post/model"
	usermodel "wanderfeed/internal/domain/user/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSubscriptionRepository is a mock of the follow-edge gateway; the feed
// only reaches for ListFollowingIDs.
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(sub *usermodel.Subscription) error {
	args := m.Called(sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Delete(subscriberID, subscriptionID uint) error {
	args := m.Called(subscriberID, subscriptionID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Exists(subscriberID, subscriptionID uint) (bool, error) {
	args := m.Called(subscriberID, subscriptionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) ListFollowerIDs(userID uint) ([]uint, error) {
	args := m.Called(userID)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockSubscriptionRepository) ListFollowingIDs(userID uint) ([]uint, error) {
	args := m.Called(userID)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockSubscriptionRepository) CountFollowers(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) CountFollowing(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func feedPost(id, userID uint, title string) model.Post {
	post := model.Post{UserID: userID, Title: title}
	post.ID = id
	return post
}

func stubCounts(likes *MockEngagementRepository, comments *MockCommentRepository) {
	likes.On("CountLikes", mock.Anything).Return(int64(0), nil)
	comments.On("CountByPost", mock.Anything).Return(int64(0), nil)
	likes.On("HasLiked", mock.Anything, mock.Anything).Return(false, nil)
	likes.On("HasSaved", mock.Anything, mock.Anything).Return(false, nil)
}

func TestListSubscribed(t *testing.T) {
	t.Run("Following no one yields an empty feed without a post query", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockSubs := new(MockSubscriptionRepository)
		service := NewFeedService(mockRepo, mockSubs, new(MockEngagementRepository), new(MockCommentRepository), &recordingMediaStore{})

		mockSubs.On("ListFollowingIDs", uint(1)).Return([]uint{}, nil)

		views, err := service.ListSubscribed(1)

		assert.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
		mockRepo.AssertNotCalled(t, "ListByUsers", mock.Anything)
	})

	t.Run("Union of followed authors, decorated for the viewer", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockSubs := new(MockSubscriptionRepository)
		mockLikes := new(MockEngagementRepository)
		mockComments := new(MockCommentRepository)
		service := NewFeedService(mockRepo, mockSubs, mockLikes, mockComments, &recordingMediaStore{})

		mockSubs.On("ListFollowingIDs", uint(1)).Return([]uint{2, 3}, nil)
		mockRepo.On("ListByUsers", []uint{2, 3}).Return([]model.Post{
			feedPost(10, 3, "newest"),
			feedPost(9, 2, "older"),
		}, nil)

		mockLikes.On("CountLikes", uint(10)).Return(int64(5), nil)
		mockLikes.On("CountLikes", uint(9)).Return(int64(0), nil)
		mockComments.On("CountByPost", mock.Anything).Return(int64(0), nil)
		mockLikes.On("HasLiked", uint(1), uint(10)).Return(true, nil)
		mockLikes.On("HasLiked", uint(1), uint(9)).Return(false, nil)
		mockLikes.On("HasSaved", uint(1), mock.Anything).Return(false, nil)

		views, err := service.ListSubscribed(1)

		assert.NoError(t, err)
		assert.Len(t, views, 2)
		assert.Equal(t, "newest", views[0].Title)
		assert.True(t, views[0].Liked)
		assert.Equal(t, int64(5), views[0].LikeCount)
		assert.False(t, views[1].Liked)
	})
}

func TestSearch(t *testing.T) {
	t.Run("Title match wins over region match", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockLikes := new(MockEngagementRepository)
		mockComments := new(MockCommentRepository)
		service := NewFeedService(mockRepo, new(MockSubscriptionRepository), mockLikes, mockComments, &recordingMediaStore{})

		both := feedPost(1, 2, "Altai ridge")
		both.Region = "Altai"
		regionOnly := feedPost(2, 2, "Quiet lakes")
		regionOnly.Region = "Altai"

		mockRepo.On("SearchByTitle", "altai").Return([]model.Post{both}, nil)
		mockRepo.On("SearchByRegion", "altai").Return([]model.Post{both, regionOnly}, nil)
		stubCounts(mockLikes, mockComments)

		result, err := service.Search("altai")

		assert.NoError(t, err)
		assert.Len(t, result.ByTitle, 1)
		assert.Len(t, result.ByRegion, 1)
		assert.Equal(t, uint(1), result.ByTitle[0].ID)
		assert.Equal(t, uint(2), result.ByRegion[0].ID)
	})

	t.Run("Cover picture resolved, remaining keys untouched", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockLikes := new(MockEngagementRepository)
		mockComments := new(MockCommentRepository)
		service := NewFeedService(mockRepo, new(MockSubscriptionRepository), mockLikes, mockComments, &recordingMediaStore{})

		post := feedPost(1, 2, "Altai ridge")
		post.Pictures = []string{"posts/a.jpg", "posts/b.jpg"}

		mockRepo.On("SearchByTitle", "altai").Return([]model.Post{post}, nil)
		mockRepo.On("SearchByRegion", "altai").Return([]model.Post{}, nil)
		stubCounts(mockLikes, mockComments)

		result, err := service.Search("altai")

		assert.NoError(t, err)
		assert.Equal(t, "https://media.test/posts/a.jpg", result.ByTitle[0].Pictures[0])
		assert.Equal(t, "posts/b.jpg", result.ByTitle[0].Pictures[1])
	})
}

func TestListAll(t *testing.T) {
	t.Run("Anonymous viewer gets counts but no flags", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockLikes := new(MockEngagementRepository)
		mockComments := new(MockCommentRepository)
		service := NewFeedService(mockRepo, new(MockSubscriptionRepository), mockLikes, mockComments, &recordingMediaStore{})

		mockRepo.On("ListAll", 0, 10).Return([]model.Post{feedPost(1, 2, "Trip")}, int64(12), nil)
		mockLikes.On("CountLikes", uint(1)).Return(int64(3), nil)
		mockComments.On("CountByPost", uint(1)).Return(int64(1), nil)

		views, total, err := service.ListAll(nil, 0, 10)

		assert.NoError(t, err)
		assert.Equal(t, int64(12), total)
		assert.Equal(t, int64(3), views[0].LikeCount)
		assert.False(t, views[0].Liked)
		mockLikes.AssertNotCalled(t, "HasLiked", mock.Anything, mock.Anything)
	})
}
