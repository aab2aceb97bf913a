package tests

import (
	"testing"
	"time"

	"menu-svc/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestAuthService_Login(t *testing.T) {
	auth := service.NewAuthService("admin", "secret-pass", []byte("test-secret"), time.Hour)

	tests := []struct {
		name          string
		username      string
		password      string
		expectedError error
	}{
		{"success", "admin", "secret-pass", nil},
		{"wrong_password", "admin", "nope", service.ErrInvalidCredentials},
		{"wrong_username", "root", "secret-pass", service.ErrInvalidCredentials},
		{"empty", "", "", service.ErrInvalidCredentials},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			token, err := auth.Login(testCase.username, testCase.password)
			assert.ErrorIs(t, err, testCase.expectedError)
			if testCase.expectedError == nil {
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestAuthService_Verify(t *testing.T) {
	auth := service.NewAuthService("admin", "secret-pass", []byte("test-secret"), time.Hour)

	token, err := auth.Login("admin", "secret-pass")
	assert.NoError(t, err)

	claims, err := auth.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestAuthService_Verify_Garbage(t *testing.T) {
	auth := service.NewAuthService("admin", "secret-pass", []byte("test-secret"), time.Hour)

	_, err := auth.Verify("not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthService_Verify_WrongSecret(t *testing.T) {
	issuer := service.NewAuthService("admin", "secret-pass", []byte("other-secret"), time.Hour)
	auth := service.NewAuthService("admin", "secret-pass", []byte("test-secret"), time.Hour)

	token, err := issuer.Login("admin", "secret-pass")
	assert.NoError(t, err)

	_, err = auth.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthService_Verify_Expired(t *testing.T) {
	auth := service.NewAuthService("admin", "secret-pass", []byte("test-secret"), -time.Minute)

	token, err := auth.Login("admin", "secret-pass")
	assert.NoError(t, err)

	_, err = auth.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthService_Verify_MissingRole(t *testing.T) {
	secret := []byte("test-secret")
	auth := service.NewAuthService("admin", "secret-pass", secret, time.Hour)

	// A token signed with the right secret but without the admin role is
	// rejected as forbidden, not invalid.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "someone",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := raw.SignedString(secret)
	assert.NoError(t, err)

	_, err = auth.Verify(token)
	assert.ErrorIs(t, err, service.ErrForbidden)
}
