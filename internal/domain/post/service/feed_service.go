package service

import (
	commentrepo "wanderfeed/internal/domain/comment/repository"
	engagementrepo "wanderfeed/internal/domain/engagement/repository"
	"wanderfeed/internal/domain/post/model"
	"wanderfeed/internal/domain/post/repository"
	userrepo "wanderfeed/internal/domain/user/repository"
	"wanderfeed/internal/pkg/uploader"
)

// PostView is a post shaped for a feed: aggregate counts always, viewer
// flags when a viewer is known, owner photo resolved to a URL.
type PostView struct {
	model.Post
	LikeCount    int64 `json:"likeCount"`
	CommentCount int64 `json:"commentCount"`
	Liked        bool  `json:"liked"`
	Saved        bool  `json:"saved"`
}

// SearchResult partitions matches into two disjoint groups: a post matching
// both title and region appears only under ByTitle.
type SearchResult struct {
	ByTitle  []PostView `json:"byTitle"`
	ByRegion []PostView `json:"byRegion"`
}

// FeedService composes posts, engagement and the social graph into
// personalized listings. All listings are newest-first.
type FeedService interface {
	// ListAll returns a page of the global feed and the total post count.
	ListAll(viewerID *uint, offset, limit int) ([]PostView, int64, error)
	// ListByTags matches a post's tag exactly against the given set.
	ListByTags(tags []string, viewerID *uint) ([]PostView, error)
	// ListSubscribed returns the union of posts by users the viewer follows.
	// A viewer following no one gets an empty sequence.
	ListSubscribed(viewerID uint) ([]PostView, error)
	// Search matches the query case-insensitively as a substring of title
	// and region independently.
	Search(query string) (*SearchResult, error)
	// DecoratePosts annotates already-fetched posts for a viewer, keeping
	// their order. Shared with the engagement ledger's bookmark listing.
	DecoratePosts(posts []model.Post, viewerID *uint) ([]PostView, error)
}

type feedService struct {
	repo     repository.PostRepository
	subs     userrepo.SubscriptionRepository
	likes    engagementrepo.EngagementRepository
	comments commentrepo.CommentRepository
	media    uploader.MediaStore
}

func NewFeedService(repo repository.PostRepository, subs userrepo.SubscriptionRepository, likes engagementrepo.EngagementRepository, comments commentrepo.CommentRepository, media uploader.MediaStore) FeedService {
	return &feedService{repo: repo, subs: subs, likes: likes, comments: comments, media: media}
}

func (s *feedService) ListAll(viewerID *uint, offset, limit int) ([]PostView, int64, error) {
	posts, total, err := s.repo.ListAll(offset, limit)
	if err != nil {
		return nil, 0, err
	}
	views, err := s.DecoratePosts(posts, viewerID)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (s *feedService) ListByTags(tags []string, viewerID *uint) ([]PostView, error) {
	posts, err := s.repo.ListByTags(tags)
	if err != nil {
		return nil, err
	}
	return s.DecoratePosts(posts, viewerID)
}

func (s *feedService) ListSubscribed(viewerID uint) ([]PostView, error) {
	followingIDs, err := s.subs.ListFollowingIDs(viewerID)
	if err != nil {
		return nil, err
	}
	if len(followingIDs) == 0 {
		return []PostView{}, nil
	}

	posts, err := s.repo.ListByUsers(followingIDs)
	if err != nil {
		return nil, err
	}
	return s.DecoratePosts(posts, &viewerID)
}

func (s *feedService) Search(query string) (*SearchResult, error) {
	byTitle, err := s.repo.SearchByTitle(query)
	if err != nil {
		return nil, err
	}
	byRegion, err := s.repo.SearchByRegion(query)
	if err != nil {
		return nil, err
	}

	// A title match wins; drop it from the region group.
	titleIDs := make(map[uint]struct{}, len(byTitle))
	for _, post := range byTitle {
		titleIDs[post.ID] = struct{}{}
	}
	regionOnly := byRegion[:0]
	for _, post := range byRegion {
		if _, matched := titleIDs[post.ID]; !matched {
			regionOnly = append(regionOnly, post)
		}
	}

	titleViews, err := s.DecoratePosts(byTitle, nil)
	if err != nil {
		return nil, err
	}
	regionViews, err := s.DecoratePosts(regionOnly, nil)
	if err != nil {
		return nil, err
	}

	// Search results carry a retrievable cover image.
	for i := range titleViews {
		resolveFirstPicture(&titleViews[i], s.media)
	}
	for i := range regionViews {
		resolveFirstPicture(&regionViews[i], s.media)
	}

	return &SearchResult{ByTitle: titleViews, ByRegion: regionViews}, nil
}

func (s *feedService) DecoratePosts(posts []model.Post, viewerID *uint) ([]PostView, error) {
	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		view, err := decoratePost(post, viewerID, s.likes, s.comments, s.media)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// decoratePost attaches counts, viewer flags and the resolved owner photo.
func decoratePost(post model.Post, viewerID *uint, likes engagementrepo.EngagementRepository, comments commentrepo.CommentRepository, media uploader.MediaStore) (PostView, error) {
	view := PostView{Post: post}

	likeCount, err := likes.CountLikes(post.ID)
	if err != nil {
		return view, err
	}
	commentCount, err := comments.CountByPost(post.ID)
	if err != nil {
		return view, err
	}
	view.LikeCount = likeCount
	view.CommentCount = commentCount

	if viewerID != nil {
		liked, err := likes.HasLiked(*viewerID, post.ID)
		if err != nil {
			return view, err
		}
		saved, err := likes.HasSaved(*viewerID, post.ID)
		if err != nil {
			return view, err
		}
		view.Liked = liked
		view.Saved = saved
	}

	view.User.Photo = media.ResolveOrDefault(view.User.Photo)

	return view, nil
}

// resolveFirstPicture rewrites the cover picture reference to a URL.
// Posts without pictures are left unmodified.
func resolveFirstPicture(view *PostView, media uploader.MediaStore) {
	if len(view.Pictures) == 0 {
		return
	}
	pictures := make([]string, len(view.Pictures))
	copy(pictures, view.Pictures)
	pictures[0] = media.Resolve(pictures[0])
	view.Pictures = pictures
}
