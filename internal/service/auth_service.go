package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Eursukkul/restaurant-service/internal/auth"
	"github.com/Eursukkul/restaurant-service/internal/models"
	"github.com/Eursukkul/restaurant-service/internal/repository"
	"github.com/Eursukkul/restaurant-service/internal/validation"
	"gorm.io/gorm"
)

type UserInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Staff     bool
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Authenticate(ctx context.Context, accessToken string) (auth.Identity, error)
	Profile(ctx context.Context, userID uint) (*models.User, error)
	CreateUser(ctx context.Context, in UserInput) (*models.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, username, password string) (auth.TokenPair, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auth.TokenPair{}, ErrInvalidCredentials
		}
		return auth.TokenPair{}, err
	}
	if !user.IsActive || !user.CheckPassword(password) {
		return auth.TokenPair{}, ErrInvalidCredentials
	}
	return s.tokens.IssuePair(user.ID)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.Parse(refreshToken, auth.RefreshToken)
	if err != nil {
		return "", err
	}
	if _, err := s.activeUser(ctx, claims.UserID); err != nil {
		return "", err
	}
	return s.tokens.Issue(claims.UserID, auth.AccessToken)
}

// Authenticate resolves an access token to the identity of a currently
// active user. The user row is re-read so staff changes apply immediately.
func (s *authService) Authenticate(ctx context.Context, accessToken string) (auth.Identity, error) {
	claims, err := s.tokens.Parse(accessToken, auth.AccessToken)
	if err != nil {
		return auth.Identity{}, err
	}
	user, err := s.activeUser(ctx, claims.UserID)
	if err != nil {
		return auth.Identity{}, err
	}
	return auth.Identity{UserID: user.ID, Username: user.Username, Staff: user.IsStaff}, nil
}

func (s *authService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) CreateUser(ctx context.Context, in UserInput) (*models.User, error) {
	errs := validation.Errors{}
	if strings.TrimSpace(in.Username) == "" {
		errs.Add("username", "This field is required.")
	}
	if in.Password == "" {
		errs.Add("password", "This field is required.")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  strings.TrimSpace(in.Username),
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		IsStaff:   in.Staff,
		IsActive:  true,
	}
	if err := user.SetPassword(in.Password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, validation.Field("username", msgUsernameTaken)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *authService) activeUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", auth.ErrInvalidToken)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: user is inactive", auth.ErrInvalidToken)
	}
	return user, nil
}
