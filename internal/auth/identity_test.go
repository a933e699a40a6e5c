package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestParseIdentity(t *testing.T) {
	v := NewVerifier(testSecret)

	token := signToken(t, jwt.MapClaims{"sub": "user-1", "role": "admin"}, testSecret)
	ident, err := v.ParseIdentity(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", ident.UserID)
	assert.Equal(t, RoleAdmin, ident.Role)
	assert.True(t, ident.IsAdmin())

	token = signToken(t, jwt.MapClaims{"sub": "user-2", "role": "coop"}, testSecret)
	ident, err = v.ParseIdentity(token)
	require.NoError(t, err)
	assert.Equal(t, RoleCoop, ident.Role)
	assert.False(t, ident.IsAdmin())
}

func TestParseIdentityUnrecognizedRole(t *testing.T) {
	v := NewVerifier(testSecret)

	token := signToken(t, jwt.MapClaims{"sub": "user-3", "role": "superuser"}, testSecret)
	ident, err := v.ParseIdentity(token)
	require.NoError(t, err)
	assert.Equal(t, RoleNone, ident.Role)

	token = signToken(t, jwt.MapClaims{"sub": "user-4"}, testSecret)
	ident, err = v.ParseIdentity(token)
	require.NoError(t, err)
	assert.Equal(t, RoleNone, ident.Role)
}

func TestParseIdentityFailures(t *testing.T) {
	v := NewVerifier(testSecret)

	// Wrong signing secret
	token := signToken(t, jwt.MapClaims{"sub": "user-5", "role": "admin"}, []byte("other"))
	_, err := v.ParseIdentity(token)
	assert.Error(t, err)

	// Garbage token
	_, err = v.ParseIdentity("not-a-token")
	assert.Error(t, err)

	// Missing subject
	token = signToken(t, jwt.MapClaims{"role": "admin"}, testSecret)
	_, err = v.ParseIdentity(token)
	assert.Error(t, err)
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleCoop, ParseRole("coop"))
	assert.Equal(t, RoleNone, ParseRole(""))
	assert.Equal(t, RoleNone, ParseRole("owner"))
}
