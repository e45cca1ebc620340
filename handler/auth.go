package handler

import (
	"log"
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"api-holiday-a99/config"
	"api-holiday-a99/middleware"
	"api-holiday-a99/model"
)

// AuthHandler performs the shared-password sign in. There are no accounts:
// one password maps to the admin role, the other to the user role.
type AuthHandler struct {
	Config     *config.Config
	AuthClient *auth.Client
}

type LoginPayload struct {
	Password string `json:"password" binding:"required"`
}

// LoginHandler checks the supplied password against the two shared secrets.
// On success it sets the auth_role cookie for SessionDays days and mints an
// anonymous backend session token so the client can open its own live
// queries. The token UID is random; it carries no user identity.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var role string
	switch payload.Password {
	case h.Config.AdminSecret:
		role = model.RoleAdmin
	case h.Config.UserSecret:
		role = model.RoleUser
	default:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Password salah! Silakan coba lagi."})
		return
	}

	backendToken := ""
	if h.AuthClient != nil {
		token, err := h.AuthClient.CustomToken(c.Request.Context(), "session-"+uuid.NewString())
		if err != nil {
			log.Printf("Error minting backend token: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal login ke database. Cek koneksi internet."})
			return
		}
		backendToken = token
	}

	maxAge := h.Config.SessionDays * 24 * 60 * 60
	c.SetCookie(middleware.RoleCookieName, role, maxAge, "/", "", false, false)

	c.JSON(http.StatusOK, gin.H{
		"role":          role,
		"backend_token": backendToken,
		"redirect":      "/",
	})
}
