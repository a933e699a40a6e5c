// Package auth resolves the caller identity from the session token issued
// by the external identity provider.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Role represents the role carried in a caller's session claims
type Role int

// Role constants
const (
	// RoleNone represents an absent or unrecognized role
	RoleNone Role = iota
	// RoleCoop represents a verified cooperator
	RoleCoop
	// RoleAdmin represents a site administrator
	RoleAdmin
)

func (r Role) String() string {
	return []string{
		"none",
		"coop",
		"admin",
	}[r]
}

// ParseRole converts the string form of a role claim to a Role. Unrecognized
// values map to RoleNone; they are never treated as a grant.
func ParseRole(str string) Role {
	switch str {
	case "coop":
		return RoleCoop
	case "admin":
		return RoleAdmin
	default:
		return RoleNone
	}
}

// Identity is the per-request caller identity. It is passed explicitly to
// the guard and to every mutation rather than read ambiently.
type Identity struct {
	UserID string
	Role   Role
}

// Unresolved is the identity used when a session token is present but its
// claims cannot be resolved: authenticated with no role, so access
// decisions deny rather than allow.
var Unresolved = Identity{UserID: "unresolved"}

// Anonymous reports whether no authenticated identity is present.
func (i Identity) Anonymous() bool {
	return i.UserID == ""
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return !i.Anonymous() && i.Role == RoleAdmin
}

// Verifier verifies session tokens against the shared signing secret.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier for tokens signed with the given secret.
func NewVerifier(secret []byte) *Verifier {
	return &Verifier{secret: secret}
}

// ParseIdentity resolves an Identity from a signed session token. An error
// means the claims could not be resolved; callers must treat that the same
// as an identity with no role, never as a grant.
func (v *Verifier) ParseIdentity(token string) (Identity, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return Identity{}, fmt.Errorf("failed to verify session token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("unexpected session claims format")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Identity{}, fmt.Errorf("session claims missing subject")
	}

	role, _ := claims["role"].(string)
	return Identity{UserID: sub, Role: ParseRole(role)}, nil
}
