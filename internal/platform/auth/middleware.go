package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type contextKey string

const identityKey contextKey = "identity"

// LoginPath is the unauthenticated entry point an unauthenticated request
// is redirected to. UnauthorizedPath is the fixed access-denied destination
// for an authenticated request whose role check fails; no return path is
// carried there.
const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
)

// Claims is the session token payload. The token carries the session id so
// logout can invalidate tokens server-side, plus the role for debugging.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
	Role      string `json:"role"`
}

// TokenConfig configures session token issuing and verification.
type TokenConfig struct {
	SigningKey []byte
	TTL        time.Duration
}

// IssueToken signs a session token for the identity.
func IssueToken(cfg TokenConfig, sessionID string, ident *Identity) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ident.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
		},
		SessionID: sessionID,
		Role:      string(ident.Role),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(cfg.SigningKey)
}

// redirect is the body of a guard denial. Unauthenticated denials carry the
// originally requested path so the client can resume after login.
type redirect struct {
	Redirect string `json:"redirect"`
	From     string `json:"from,omitempty"`
}

func unauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, redirect{Redirect: LoginPath, From: c.Request().URL.Path})
}

// Middleware verifies the bearer token, resolves the live session, and
// injects the identity into the request context. Requests without a valid
// token, or whose session has been logged out, are redirected to the login
// entry point with the requested path preserved.
func Middleware(cfg TokenConfig, sessions *SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return unauthenticated(c)
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthenticated(c)
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				return cfg.SigningKey, nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				return unauthenticated(c)
			}

			ident, ok := sessions.Identity(claims.SessionID)
			if !ok {
				// Logged-out or expired session.
				return unauthenticated(c)
			}

			c.Set("claims", claims)
			c.SetRequest(c.Request().WithContext(withIdentity(c.Request().Context(), ident)))
			return next(c)
		}
	}
}

// DemoAuthMiddleware backs the demo build variant: requests without a token
// run as the given default identity. Requests carrying a token fall through
// to the real middleware chain untouched.
func DemoAuthMiddleware(def *Identity) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				c.SetRequest(c.Request().WithContext(withIdentity(c.Request().Context(), def)))
			}
			return next(c)
		}
	}
}

func withIdentity(ctx context.Context, ident *Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// IdentityFromContext returns the identity injected by the auth middleware,
// or nil for an unauthenticated request.
func IdentityFromContext(ctx context.Context) *Identity {
	ident, _ := ctx.Value(identityKey).(*Identity)
	return ident
}
