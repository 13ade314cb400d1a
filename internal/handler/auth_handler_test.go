package handler_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kotoba/backend/internal/handler"
	"kotoba/backend/internal/service"
	"kotoba/backend/internal/service/mock"
)

type authRoutes struct{ h *handler.AuthHandler }

func (r authRoutes) RegisterRoutes(g *echo.Group) {
	r.h.RegisterPublicRoutes(g)
	r.h.RegisterProtectedRoutes(g)
}

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockAuthService(ctrl)
	e := newTestServer(authRoutes{handler.NewAuthHandler(svc)})

	svc.EXPECT().Login(gomock.Any(), "pra40109", "secret").Return(&service.AuthResponse{
		Token: "tok",
		User:  &service.User{ID: "pra40109", Email: "me@example.com"},
	}, nil)

	rec := doRequest(e, http.MethodPost, "/api/auth/login", `{"username":"pra40109","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"token":"tok","user":{"id":"pra40109","email":"me@example.com"}}`, rec.Body.String())
	require.Contains(t, rec.Header().Get("Set-Cookie"), handler.AuthCookieName+"=tok")
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockAuthService(ctrl)
	e := newTestServer(authRoutes{handler.NewAuthHandler(svc)})

	rec := doRequest(e, http.MethodPost, "/api/auth/login", `{"username":"pra40109"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	svc.EXPECT().Login(gomock.Any(), "pra40109", "wrong").Return(nil, service.ErrInvalidPassword)
	rec = doRequest(e, http.MethodPost, "/api/auth/login", `{"username":"pra40109","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"invalid credentials"}`, rec.Body.String())
}

func TestAuthHandler_CheckAndLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockAuthService(ctrl)
	e := newTestServer(authRoutes{handler.NewAuthHandler(svc)})

	svc.EXPECT().GetUser(gomock.Any(), testUserID).Return(&service.User{ID: testUserID}, nil)
	rec := doRequest(e, http.MethodGet, "/api/auth/check", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"authenticated":true,"user":{"id":"u1","email":""}}`, rec.Body.String())

	rec = doRequest(e, http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
}
