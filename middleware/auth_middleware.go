package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"api-holiday-a99/model"
)

// Cookie and context keys for the session role marker. The cookie is the
// only session state; when it expires the session is over (there is no
// sign-out endpoint).
const (
	RoleCookieName = "auth_role"
	RoleContextKey = "role"
)

// AuthMiddleware is the route guard. Requests without a valid auth_role
// cookie are turned away towards the sign-in page. The role travels on the
// request context for handlers downstream; no global session state.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := c.Cookie(RoleCookieName)
		if err != nil || (role != model.RoleAdmin && role != model.RoleUser) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "Sesi tidak ditemukan, silakan login ulang.",
				"redirect": "/signin",
			})
			return
		}

		c.Set(RoleContextKey, role)
		c.Next()
	}
}

// AdminOnly guards the cities and manage pages. Non-admins are sent home.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(RoleContextKey) != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Halaman ini khusus admin.",
				"redirect": "/",
			})
			return
		}
		c.Next()
	}
}
