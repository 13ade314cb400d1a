package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"kotoba/backend/internal/model"
	"kotoba/backend/internal/repository"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock

// TokenTTL is how long a login stays valid.
const TokenTTL = 30 * 24 * time.Hour

// Auth errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrUserIDRequired   = errors.New("user id is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)

// User is the public view of an account.
type User struct {
	ID    string
	Email string
}

// AuthResponse is returned after a successful login.
type AuthResponse struct {
	Token string
	User  *User
}

// AuthService provides authentication functionality.
type AuthService interface {
	// Login authenticates a user and returns a JWT token.
	Login(ctx context.Context, userID, password string) (*AuthResponse, error)
	// GetUser returns the user's public info.
	GetUser(ctx context.Context, userID string) (*User, error)
	// ValidateToken validates a JWT token and returns the user id it was issued for.
	ValidateToken(token string) (string, error)
	// SaveUser creates a user or resets its email and password.
	SaveUser(ctx context.Context, userID, email, password string) error
}

type authService struct {
	repo   repository.UserRepository
	secret []byte
}

// NewAuthService creates a new auth service signing tokens with secret.
func NewAuthService(repo repository.UserRepository, secret []byte) AuthService {
	return &authService{repo: repo, secret: secret}
}

func (s *authService) Login(ctx context.Context, userID, password string) (*AuthResponse, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		Token: token,
		User:  &User{ID: user.ID, Email: user.Email},
	}, nil
}

func (s *authService) GetUser(ctx context.Context, userID string) (*User, error) {
	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &User{ID: user.ID, Email: user.Email}, nil
}

func (s *authService) ValidateToken(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *authService) SaveUser(ctx context.Context, userID, email, password string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrUserIDRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < 6 {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.Save(ctx, model.User{
		ID:           userID,
		Email:        strings.TrimSpace(email),
		PasswordHash: string(hash),
	})
}

func (s *authService) issueToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
