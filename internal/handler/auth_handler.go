package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"kotoba/backend/internal/logger"
	"kotoba/backend/internal/service"
)

// AuthCookieName carries the session token for browser requests.
const AuthCookieName = "kotoba_auth"

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string        `json:"token"`
	User  *userResponse `json:"user"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type authCheckResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *userResponse `json:"user,omitempty"`
}

// RegisterPublicRoutes mounts the routes reachable without a session.
func (h *AuthHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/auth/login", h.Login)
	g.POST("/auth/logout", h.Logout)
}

// RegisterProtectedRoutes mounts the routes behind the JWT middleware.
func (h *AuthHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/auth/check", h.Check)
}

// Login exchanges credentials for a session token.
// @Summary Login
// @Description Authenticate with user id and password; the token is also set as a cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "Login credentials"
// @Success 200 {object} authResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, "username and password are required")
	}

	resp, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeAuthError(c, err)
	}

	c.SetCookie(authCookie(c, resp.Token, int(service.TokenTTL.Seconds())))
	return c.JSON(http.StatusOK, authResponse{
		Token: resp.Token,
		User:  toUserResponse(resp.User),
	})
}

// Check returns the logged-in user.
// @Summary Check authentication
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} authCheckResponse
// @Failure 401 {object} errorResponse
// @Router /auth/check [get]
func (h *AuthHandler) Check(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), currentUserID(c))
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return c.JSON(http.StatusUnauthorized, authCheckResponse{})
	case err != nil:
		return writeAuthError(c, err)
	}
	return c.JSON(http.StatusOK, authCheckResponse{Authenticated: true, User: toUserResponse(user)})
}

// Logout drops the session cookie. Bearer tokens stay valid until they expire.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} messageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(authCookie(c, "", -1))
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

func writeAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidPassword):
		return Error(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrUserIDRequired), errors.Is(err, service.ErrPasswordRequired):
		return Error(c, http.StatusBadRequest, err.Error())
	}
	logger.Error("auth request failed", "module", "handler", "action", "request", "resource", "auth", "result", "failed", "error", err)
	return Error(c, http.StatusInternalServerError, "internal error")
}

func toUserResponse(user *service.User) *userResponse {
	if user == nil {
		return nil
	}
	return &userResponse{ID: user.ID, Email: user.Email}
}

// authCookie builds the session cookie; a negative maxAge deletes it.
func authCookie(c echo.Context, token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Request().TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}
