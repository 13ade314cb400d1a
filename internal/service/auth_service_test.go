package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"kotoba/backend/internal/model"
	repomock "kotoba/backend/internal/repository/mock"
	"kotoba/backend/internal/service"
)

var testSecret = []byte("test-secret")

func TestAuthService_LoginAndValidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockUserRepository(ctrl)
	svc := service.NewAuthService(repo, testSecret)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.EXPECT().Get(ctx, "u1").Return(&model.User{ID: "u1", Email: "me@example.com", PasswordHash: string(hash)}, nil)

	resp, err := svc.Login(ctx, " u1 ", "hunter22")
	require.NoError(t, err)
	require.Equal(t, "me@example.com", resp.User.Email)

	userID, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, "u1", userID)
}

func TestAuthService_LoginFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockUserRepository(ctrl)
	svc := service.NewAuthService(repo, testSecret)
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "x")
	require.ErrorIs(t, err, service.ErrUserIDRequired)

	_, err = svc.Login(ctx, "u1", "")
	require.ErrorIs(t, err, service.ErrPasswordRequired)

	repo.EXPECT().Get(ctx, "ghost").Return(nil, nil)
	_, err = svc.Login(ctx, "ghost", "x")
	require.ErrorIs(t, err, service.ErrUserNotFound)

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.EXPECT().Get(ctx, "u1").Return(&model.User{ID: "u1", PasswordHash: string(hash)}, nil)
	_, err = svc.Login(ctx, "u1", "wrong")
	require.ErrorIs(t, err, service.ErrInvalidPassword)
}

func TestAuthService_ValidateToken_Rejects(t *testing.T) {
	svc := service.NewAuthService(nil, testSecret)

	_, err := svc.ValidateToken("garbage")
	require.ErrorIs(t, err, service.ErrInvalidToken)

	other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"}).SignedString([]byte("other"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(other)
	require.ErrorIs(t, err, service.ErrInvalidToken)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString(testSecret)
	require.NoError(t, err)
	_, err = svc.ValidateToken(expired)
	require.ErrorIs(t, err, service.ErrInvalidToken)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"}).SignedString(testSecret)
	require.NoError(t, err)
	_, err = svc.ValidateToken(noExpiry)
	require.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthService_SaveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockUserRepository(ctrl)
	svc := service.NewAuthService(repo, testSecret)
	ctx := context.Background()

	require.ErrorIs(t, svc.SaveUser(ctx, "u1", "", "123"), service.ErrPasswordTooShort)
	require.ErrorIs(t, svc.SaveUser(ctx, " ", "", "123456"), service.ErrUserIDRequired)

	repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u model.User) error {
		require.Equal(t, "u1", u.ID)
		require.Equal(t, "me@example.com", u.Email)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
		return nil
	})
	require.NoError(t, svc.SaveUser(ctx, "u1", " me@example.com ", "secret1"))
}
