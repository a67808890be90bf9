package application

import (
	"errors"
	"time"

	"github.com/devshare/devshare-go/internal/api/middleware"
	"github.com/devshare/devshare-go/internal/domain/user"
	"github.com/devshare/devshare-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const userSearchLimit = 50

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) RegisterUser(input user.CreateUserInput) (user.User, error) {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err == nil {
		return user.User{}, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	u := user.User{
		Username: input.Username,
		Password: string(hashed),
		FullName: input.FullName,
	}

	if err := s.Repos.User.CreateUser(&u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (s *UserService) LoginUser(username, password string) (user.User, string, error) {
	u, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(u.UID, u.Username, 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}

	return u, token, nil
}

func (s *UserService) SearchUsers(query string) ([]user.PreviewDTO, error) {
	users, err := s.Repos.User.SearchByUsername(query, userSearchLimit)
	if err != nil {
		return nil, err
	}
	out := make([]user.PreviewDTO, 0, len(users))
	for _, u := range users {
		out = append(out, user.Preview(u))
	}
	return out, nil
}

func (s *UserService) GetProfile(username string) (user.ProfileDTO, error) {
	u, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.ProfileDTO{}, ErrUserNotFound
		}
		return user.ProfileDTO{}, err
	}
	return user.Profile(u), nil
}

func (s *UserService) UpdateProfileImg(uid uint, url string) error {
	return s.Repos.User.UpdateProfileImg(uid, url)
}
