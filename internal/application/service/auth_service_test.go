package service

import (
	"testing"
	"time"

	"github.com/meditrack/pharmacy-pos-api/pkg/apperror"
	"github.com/meditrack/pharmacy-pos-api/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T) *AuthService {
	t.Helper()
	jwt := token.NewJWTManager("test-secret", "pharmacy-pos-api", time.Hour, 24*time.Hour)
	return NewAuthService(jwt)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuth(t)

	user, err := svc.Register("Priya", "priya@example.com", "secret123", "")
	require.NoError(t, err)
	assert.Equal(t, "cashier", user.Role)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")

	pair, err := svc.Login("PRIYA@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, user.ID, pair.User.ID)
}

func TestRegister_Validation(t *testing.T) {
	svc := newAuth(t)

	_, err := svc.Register("", "priya@example.com", "secret123", "")
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Register("Priya", "priya@example.com", "short", "")
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Register("Priya", "priya@example.com", "secret123", "")
	require.NoError(t, err)
	_, err = svc.Register("Priya", "Priya@Example.com", "secret123", "")
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := newAuth(t)
	_, err := svc.Register("Priya", "priya@example.com", "secret123", "")
	require.NoError(t, err)

	_, err = svc.Login("priya@example.com", "wrong-pass")
	require.Error(t, err)
	assert.Equal(t, 401, apperror.GetAppError(err).Code)

	_, err = svc.Login("nobody@example.com", "secret123")
	require.Error(t, err)
	assert.Equal(t, 401, apperror.GetAppError(err).Code)
}

func TestRefresh(t *testing.T) {
	svc := newAuth(t)
	_, err := svc.Register("Priya", "priya@example.com", "secret123", "")
	require.NoError(t, err)

	pair, err := svc.Login("priya@example.com", "secret123")
	require.NoError(t, err)

	fresh, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
	assert.Equal(t, pair.User.ID, fresh.User.ID)

	_, err = svc.Refresh("not-a-token")
	require.Error(t, err)
	assert.Equal(t, 401, apperror.GetAppError(err).Code)
}
