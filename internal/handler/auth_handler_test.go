package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stjohns-golfday/golfday-api/internal/dto"
	"github.com/stjohns-golfday/golfday-api/internal/models"
	"github.com/stjohns-golfday/golfday-api/internal/service"
)

// --- Mock AuthService ---

type mockAuthService struct {
	signupFn func(ctx context.Context, email, password string) (*models.User, string, error)
	loginFn  func(ctx context.Context, email, password string) (*models.User, string, error)
}

func (m *mockAuthService) Signup(ctx context.Context, email, password string) (*models.User, string, error) {
	return m.signupFn(ctx, email, password)
}
func (m *mockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	return m.loginFn(ctx, email, password)
}

// --- Tests ---

func TestSignup_Handler_Success(t *testing.T) {
	svc := &mockAuthService{
		signupFn: func(ctx context.Context, email, password string) (*models.User, string, error) {
			return &models.User{ID: uuid.New(), Email: email}, "token-123", nil
		},
	}

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/signup", `{"email":"jane@x.com","password":"correct-horse"}`)

	h := NewAuthHandler(svc)
	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "token-123", resp.AccessToken)
	assert.Equal(t, "jane@x.com", resp.User.Email)
	assert.NotEqual(t, uuid.Nil, resp.User.ID)
}

func TestSignup_Handler_ShortPassword(t *testing.T) {
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/signup", `{"email":"jane@x.com","password":"short"}`)

	h := NewAuthHandler(nil)
	err := h.Signup(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestSignup_Handler_EmailTaken(t *testing.T) {
	svc := &mockAuthService{
		signupFn: func(ctx context.Context, email, password string) (*models.User, string, error) {
			return nil, "", service.ErrEmailTaken
		},
	}

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/signup", `{"email":"jane@x.com","password":"correct-horse"}`)

	h := NewAuthHandler(svc)
	err := h.Signup(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestLogin_Handler_InvalidCredentials(t *testing.T) {
	svc := &mockAuthService{
		loginFn: func(ctx context.Context, email, password string) (*models.User, string, error) {
			return nil, "", service.ErrInvalidCredentials
		},
	}

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"jane@x.com","password":"wrong"}`)

	h := NewAuthHandler(svc)
	err := h.Login(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestLogin_Handler_Success(t *testing.T) {
	svc := &mockAuthService{
		loginFn: func(ctx context.Context, email, password string) (*models.User, string, error) {
			return &models.User{ID: uuid.New(), Email: email}, "token-456", nil
		},
	}

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"jane@x.com","password":"correct-horse"}`)

	h := NewAuthHandler(svc)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "token-456", resp.AccessToken)
}
