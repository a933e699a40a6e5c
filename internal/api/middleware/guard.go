// Package middleware provides request interception: access gating and
// request logging.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/coopfed/portal/internal/auth"
	"github.com/coopfed/portal/internal/logger"
	"github.com/coopfed/portal/internal/metrics"
)

// Route surface gated by the guard.
const (
	// AdminPrefix protects every path beneath it.
	AdminPrefix = "/admin"
	// CoopSubroute is the sole admin path reachable by the coop role.
	CoopSubroute = "/admin/verified-cooperators"
	// SignInPath is where unauthenticated admin requests are sent.
	SignInPath = "/sign-in"
	// NoPermissionPath is where authenticated requests without a
	// recognized role are sent.
	NoPermissionPath = "/no-permission"
)

// Decision is the outcome of a guard evaluation: either the request is
// allowed through unmodified, or it is redirected to RedirectTo.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide is the access decision for one request: a total function of the
// route path and the caller identity, evaluated fresh each time. Redirects
// are normal control flow, never errors.
func Decide(path string, ident auth.Identity) Decision {
	if !hasRoutePrefix(path, AdminPrefix) {
		return Decision{Allow: true}
	}
	if ident.Anonymous() {
		return Decision{RedirectTo: SignInPath}
	}
	switch ident.Role {
	case auth.RoleAdmin:
		return Decision{Allow: true}
	case auth.RoleCoop:
		if hasRoutePrefix(path, CoopSubroute) {
			return Decision{Allow: true}
		}
		return Decision{RedirectTo: CoopSubroute}
	default:
		return Decision{RedirectTo: NoPermissionPath}
	}
}

// hasRoutePrefix matches prefix as a whole path segment, so "/admin" gates
// "/admin" and "/admin/x" but not "/administration".
func hasRoutePrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// identityKey is the locals key the guard stores the caller identity under.
const identityKey = "identity"

// IdentityFrom returns the caller identity resolved by the guard for this
// request. Requests that never passed through the guard are anonymous.
func IdentityFrom(c *fiber.Ctx) auth.Identity {
	if ident, ok := c.Locals(identityKey).(auth.Identity); ok {
		return ident
	}
	return auth.Identity{}
}

// Guard gates every request before it reaches its handler.
type Guard struct {
	verifier *auth.Verifier
}

// NewGuard creates a Guard verifying session tokens with the given verifier.
func NewGuard(verifier *auth.Verifier) *Guard {
	return &Guard{verifier: verifier}
}

// Handler returns the request-interception hook. It resolves the caller
// identity once, stores it for downstream handlers, and either continues
// the chain or redirects to an absolute URL derived from the request origin.
func (g *Guard) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident := g.identity(c)
		c.Locals(identityKey, ident)

		decision := Decide(c.Path(), ident)
		metrics.GuardDecisions.WithLabelValues(outcomeLabel(decision)).Inc()
		if decision.Allow {
			return c.Next()
		}
		return c.Redirect(c.BaseURL()+decision.RedirectTo, fiber.StatusFound)
	}
}

// identity resolves the caller identity from the session token. A missing
// token is anonymous; a token whose claims cannot be resolved yields an
// authenticated identity with no role, so the decision denies rather than
// allows.
func (g *Guard) identity(c *fiber.Ctx) auth.Identity {
	token := sessionToken(c)
	if token == "" {
		return auth.Identity{}
	}
	ident, err := g.verifier.ParseIdentity(token)
	if err != nil {
		logger.WarnWithFields("failed to resolve session claims", map[string]interface{}{
			"path":  c.Path(),
			"error": err.Error(),
		})
		return auth.Unresolved
	}
	return ident
}

// sessionToken extracts the session token from the session cookie or the
// Authorization header.
func sessionToken(c *fiber.Ctx) string {
	if cookie := c.Cookies("session"); cookie != "" {
		return cookie
	}
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func outcomeLabel(d Decision) string {
	switch {
	case d.Allow:
		return "allow"
	case d.RedirectTo == SignInPath:
		return "sign_in_redirect"
	case d.RedirectTo == NoPermissionPath:
		return "no_permission_redirect"
	default:
		return "role_home_redirect"
	}
}
