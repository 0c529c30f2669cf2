package controllers

import (
	"net/http"
	"strings"
	"time"

	"xplore-backend/config"
	"xplore-backend/middleware"
	"xplore-backend/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	Secret     string
	SessionTTL time.Duration
}

func NewAuthController(secret string) *AuthController {
	return &AuthController{Secret: secret, SessionTTL: 12 * time.Hour}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	email := strings.TrimSpace(strings.ToLower(payload.Email))
	if email == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}

	var admin models.Admin
	if err := config.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(payload.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := middleware.IssueAdminToken(ctrl.Secret, admin.ID, ctrl.SessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(ctrl.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{"id": admin.ID, "fullName": admin.FullName, "email": admin.Email},
	})
}

// GET /api/admin/me
func (ctrl *AuthController) Me(c *gin.Context) {
	adminID := c.GetUint("adminID")

	var admin models.Admin
	if err := config.DB.First(&admin, adminID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session admin no longer exists"})
		return
	}
	c.JSON(http.StatusOK, admin)
}

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
