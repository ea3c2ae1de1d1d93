package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/stjohns-golfday/golfday-api/internal/models"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	users map[string]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if _, ok := m.users[user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	if err := user.BeforeCreate(nil); err != nil {
		return err
	}
	m.users[user.Email] = user
	return nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

// --- Tests ---

const testSecret = "test-secret"

func TestSignup_HashesPasswordAndIssuesToken(t *testing.T) {
	repo := newMockUserRepo()
	log := zerolog.Nop()
	svc := NewAuthService(repo, testSecret, &log)

	user, token, err := svc.Signup(context.Background(), "jane@x.com", "correct-horse")
	require.NoError(t, err)

	assert.Equal(t, "jane@x.com", user.Email)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct-horse")))

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, "jane@x.com", claims["email"])
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	log := zerolog.Nop()
	svc := NewAuthService(repo, testSecret, &log)

	_, _, err := svc.Signup(context.Background(), "jane@x.com", "correct-horse")
	require.NoError(t, err)

	_, _, err = svc.Signup(context.Background(), "jane@x.com", "other-password")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	repo := newMockUserRepo()
	log := zerolog.Nop()
	svc := NewAuthService(repo, testSecret, &log)

	created, _, err := svc.Signup(context.Background(), "jane@x.com", "correct-horse")
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "jane@x.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	log := zerolog.Nop()
	svc := NewAuthService(repo, testSecret, &log)

	_, _, err := svc.Signup(context.Background(), "jane@x.com", "correct-horse")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "jane@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	repo := newMockUserRepo()
	log := zerolog.Nop()
	svc := NewAuthService(repo, testSecret, &log)

	_, _, err := svc.Login(context.Background(), "nobody@x.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
