package auth

import (
	"context"
	"testing"

	"github.com/datasynergy/asistencia-backend-go/internal/domain/auth"
	"github.com/datasynergy/asistencia-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]auth.SystemUser
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (auth.SystemUser, error) {
	user, ok := f.users[username]
	if !ok {
		return auth.SystemUser{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (auth.SystemUser, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return auth.SystemUser{}, auth.ErrUserNotFound
}

func authTestInit(t *testing.T) auth.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	displayName := "Administrador"
	repo := &fakeUserRepo{users: map[string]auth.SystemUser{
		"admin": {ID: 1, Username: "admin", PasswordHash: string(hash), DisplayName: &displayName},
		"demo":  {ID: 2, Username: "demo", PasswordHash: string(hash)},
	}}

	return NewAuthService(repo, jwt.NewJWTService("test-secret-key-for-jwt", "15m", "168h"))
}

func TestLogin(t *testing.T) {
	service := authTestInit(t)
	ctx := context.Background()

	tokens, err := service.Login(ctx, auth.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "Administrador", tokens.DisplayName)
}

func TestLogin_DisplayNameFallsBackToUsername(t *testing.T) {
	service := authTestInit(t)

	tokens, err := service.Login(context.Background(), auth.LoginRequest{Username: "demo", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "demo", tokens.DisplayName)
}

func TestLogin_WrongPassword(t *testing.T) {
	service := authTestInit(t)

	_, err := service.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownUserGetsSameError(t *testing.T) {
	service := authTestInit(t)

	_, err := service.Login(context.Background(), auth.LoginRequest{Username: "nobody", Password: "admin123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh_RotatesToken(t *testing.T) {
	service := authTestInit(t)
	ctx := context.Background()

	tokens, err := service.Login(ctx, auth.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	rotated, err := service.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	// The exchanged token is dead
	_, err = service.Refresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_GarbageToken(t *testing.T) {
	service := authTestInit(t)

	_, err := service.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	service := authTestInit(t)
	ctx := context.Background()

	tokens, err := service.Login(ctx, auth.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, tokens.RefreshToken))

	_, err = service.Refresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, auth.LoginRequest{Username: "admin", Password: "x"}.Validate())
	assert.Error(t, auth.LoginRequest{Username: "", Password: "x"}.Validate())
	assert.Error(t, auth.LoginRequest{Username: "admin", Password: " "}.Validate())
}
