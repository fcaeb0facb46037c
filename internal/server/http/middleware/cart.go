package middleware

import "github.com/gin-gonic/gin"

const (
	cartCookieName = "bandstand_cart"
	cartHeaderName = "X-Cart-ID"

	// Cart cookies outlive the server-side TTL slightly so the purge,
	// not the browser, decides when a cart disappears.
	cartCookieMaxAge = 7 * 24 * 60 * 60
)

// CartOwnerID extracts the cart owner token from the request. The header
// takes precedence so non-browser clients can carry the token explicitly.
func CartOwnerID(c *gin.Context) string {
	if id := c.GetHeader(cartHeaderName); id != "" {
		return id
	}
	if cookie, err := c.Cookie(cartCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetCartCookie writes the cart owner token to the response.
func SetCartCookie(c *gin.Context, ownerID string) {
	c.SetCookie(cartCookieName, ownerID, cartCookieMaxAge, "/", "", false, true)
	c.Header(cartHeaderName, ownerID)
}

// ClearCartCookie expires the cart owner cookie.
func ClearCartCookie(c *gin.Context) {
	c.SetCookie(cartCookieName, "", -1, "/", "", false, true)
}
