package admin

import (
	"net/http"
	"time"

	"artstore-backend/config"
	"artstore-backend/database"
	"artstore-backend/internal/domain/admins"
	"artstore-backend/internal/domain/catalog"
	"artstore-backend/internal/domain/feedback"
	"artstore-backend/internal/domain/orders"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Expiry is the only session boundary: no refresh flow, no revocation.
const tokenTTL = 7 * 24 * time.Hour

func issuePasswordJWT(admin admins.Admin) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": admin.ID,
		"username": admin.Username,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	})
	return t.SignedString([]byte(config.JWT_SECRET))
}

func issueGoogleJWT(email string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": 0,
		"email":    email,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	})
	return t.SignedString([]byte(config.JWT_SECRET))
}

// POST /api/admin/login
func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	var admin admins.Admin
	if err := database.DB.Where("username = ?", input.Username).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	tokenString, err := issuePasswordJWT(admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"admin": gin.H{"id": admin.ID, "username": admin.Username},
	})
}

// GET /api/admin/verify
// Session check for the dashboard: a valid Bearer token echoes its claims.
func Verify(c *gin.Context) {
	out := gin.H{"valid": true}
	if v, ok := c.Get("admin_id"); ok {
		out["id"] = v
	}
	if v, ok := c.Get("username"); ok {
		out["username"] = v
	}
	if v, ok := c.Get("email"); ok {
		out["email"] = v
	}
	c.JSON(http.StatusOK, out)
}

type DashboardStats struct {
	Artworks        int64 `json:"artworks"`
	Artists         int64 `json:"artists"`
	Categories      int64 `json:"categories"`
	Orders          int64 `json:"orders"`
	PendingOrders   int64 `json:"pending_orders"`
	Feedback        int64 `json:"feedback"`
	PendingFeedback int64 `json:"pending_feedback"`
}

// GET /api/admin/stats
func GetDashboardStats(c *gin.Context) {
	var stats DashboardStats

	database.DB.Model(&catalog.Artwork{}).Count(&stats.Artworks)
	database.DB.Model(&catalog.Artist{}).Count(&stats.Artists)
	database.DB.Model(&catalog.Category{}).Count(&stats.Categories)
	database.DB.Model(&orders.Order{}).Count(&stats.Orders)
	database.DB.Model(&orders.Order{}).Where("status = ?", orders.StatusPending).Count(&stats.PendingOrders)
	database.DB.Model(&feedback.Feedback{}).Count(&stats.Feedback)
	database.DB.Model(&feedback.Feedback{}).Where("status = ?", feedback.StatusPending).Count(&stats.PendingFeedback)

	c.JSON(http.StatusOK, stats)
}
