package service

import (
	"errors"

	"wanderfeed/internal/domain/user/model"
	"wanderfeed/internal/domain/user/repository"
	postrepo "wanderfeed/internal/domain/post/repository"
	"wanderfeed/internal/pkg/uploader"
	"wanderfeed/pkg/apperr"
	"wanderfeed/pkg/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterInput holds the fields accepted at signup.
type RegisterInput struct {
	Login     string
	Email     string
	Password  string
	Firstname string
}

// EditUserInput holds the optional profile fields; nil means unchanged.
type EditUserInput struct {
	Firstname *string
	Login     *string
	About     *string
}

// ProfileView is a user profile shaped for reading: resolved photo plus
// aggregate counts, and the viewer's follow state when a viewer is known.
type ProfileView struct {
	ID            uint   `json:"id"`
	Login         string `json:"login"`
	Firstname     string `json:"firstname"`
	Secondname    string `json:"secondname"`
	Photo         string `json:"photo"`
	About         string `json:"about"`
	Posts         int64  `json:"posts"`
	Subscribers   int64  `json:"subscribers"`
	Subscriptions int64  `json:"subscriptions"`
	Subscribed    bool   `json:"subscribed"`
}

// UserService owns accounts and profile reads.
type UserService interface {
	Register(input RegisterInput) (*model.User, error)
	Login(email, password string) (string, error)
	GetProfile(userID uint, viewerID *uint) (*ProfileView, error)
	EditUser(userID uint, input EditUserInput) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	subs  repository.SubscriptionRepository
	posts postrepo.PostRepository
	media uploader.MediaStore
}

func NewUserService(repo repository.UserRepository, subs repository.SubscriptionRepository, posts postrepo.PostRepository, media uploader.MediaStore) UserService {
	return &userService{repo: repo, subs: subs, posts: posts, media: media}
}

// Register creates an account. A taken login or email surfaces as a conflict
// via the unique indexes, never as a second row.
func (s *userService) Register(input RegisterInput) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Login:     input.Login,
		Email:     input.Email,
		Firstname: input.Firstname,
		Hash:      string(hash),
		Status:    model.StatusActive,
		Role:      model.RoleUser,
	}

	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("credentials taken")
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns a signed token. The same error is
// returned for unknown email and wrong password.
func (s *userService) Login(email, password string) (string, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.Forbidden("credentials incorrect")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(password)); err != nil {
		return "", apperr.Forbidden("credentials incorrect")
	}

	if user.Status == model.StatusBanned {
		return "", apperr.Forbidden("account is banned")
	}

	return utils.GenerateToken(user.ID, user.Role)
}

// GetProfile returns a user's profile with counts. With a viewer it also
// reports whether the viewer follows the user.
func (s *userService) GetProfile(userID uint, viewerID *uint) (*ProfileView, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}

	followers, err := s.subs.CountFollowers(userID)
	if err != nil {
		return nil, err
	}
	following, err := s.subs.CountFollowing(userID)
	if err != nil {
		return nil, err
	}
	postCount, err := s.posts.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{
		ID:            user.ID,
		Login:         user.Login,
		Firstname:     user.Firstname,
		Secondname:    user.Secondname,
		Photo:         s.media.ResolveOrDefault(user.Photo),
		About:         user.About,
		Posts:         postCount,
		Subscribers:   followers,
		Subscriptions: following,
	}

	if viewerID != nil && *viewerID != userID {
		subscribed, err := s.subs.Exists(*viewerID, userID)
		if err != nil {
			return nil, err
		}
		view.Subscribed = subscribed
	}

	return view, nil
}

// EditUser applies the provided profile fields.
func (s *userService) EditUser(userID uint, input EditUserInput) (*model.User, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}

	if input.Firstname != nil {
		user.Firstname = *input.Firstname
	}
	if input.Login != nil {
		user.Login = *input.Login
	}
	if input.About != nil {
		user.About = *input.About
	}

	if err := s.repo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("credentials taken")
		}
		return nil, err
	}
	return user, nil
}
