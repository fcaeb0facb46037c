package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/bandstand/bandstand/internal/pkg/auth"
)

const (
	// IdentityContextKey is a gin context key for the authenticated identity.
	IdentityContextKey = "identity"
	authCookieName     = "bandstand_token"
	loginPath          = "/admin/login"
)

// TokenParser validates session tokens for middleware.
type TokenParser interface {
	ParseToken(token string) (*pkgAuth.Identity, error)
}

// AuthRequired ensures the request carries a valid admin token before
// reaching the handler. API clients get a plain 401.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := parseRequestToken(c, parser)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

// DashboardGuard protects browser-facing admin pages. Unauthenticated
// requests are redirected to the login page instead of receiving 401.
func DashboardGuard(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := parseRequestToken(c, parser)
		if err != nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

func parseRequestToken(c *gin.Context, parser TokenParser) (*pkgAuth.Identity, error) {
	token := extractToken(c)
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return parser.ParseToken(token)
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the session token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the session token cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}

// CurrentIdentity extracts the authenticated identity from context.
func CurrentIdentity(c *gin.Context) *pkgAuth.Identity {
	val, ok := c.Get(IdentityContextKey)
	if !ok {
		return nil
	}
	identity, _ := val.(*pkgAuth.Identity)
	return identity
}
