package feedback

import (
	"net/http"
	"strings"

	"artstore-backend/database"
	"artstore-backend/internal/domain/feedback"
	"artstore-backend/internal/infra/mailer"

	"github.com/gin-gonic/gin"
)

func isGmail(email string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(email)), "@gmail.com")
}

// POST /api/feedback
func CreateFeedback(c *gin.Context) {
	var input struct {
		CustomerName  string `json:"customer_name" binding:"required"`
		CustomerEmail string `json:"customer_email" binding:"required,email"`
		Subject       string `json:"subject"`
		Message       string `json:"message" binding:"required"`
		Rating        int    `json:"rating" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback payload", "details": err.Error()})
		return
	}

	if input.Rating < 1 || input.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	if !isGmail(input.CustomerEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only Gmail addresses are accepted"})
		return
	}

	fb := feedback.Feedback{
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		Subject:       input.Subject,
		Message:       input.Message,
		Rating:        input.Rating,
		Status:        feedback.StatusPending,
	}
	if err := database.DB.Create(&fb).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback", "details": err.Error()})
		return
	}

	go mailer.NotifyNewFeedback(fb.ID, fb.Rating, fb.CustomerName)

	c.JSON(http.StatusCreated, fb)
}

// GET /api/feedback?status=
func ListFeedback(c *gin.Context) {
	q := database.DB.Order("created_at DESC")
	if v := c.Query("status"); v != "" {
		q = q.Where("status = ?", v)
	}

	var list []feedback.Feedback
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feedback"})
		return
	}

	if list == nil {
		list = []feedback.Feedback{}
	}
	c.JSON(http.StatusOK, list)
}

// PATCH /api/feedback/:id/status
func UpdateFeedbackStatus(c *gin.Context) {
	var fb feedback.Feedback
	if err := database.DB.First(&fb, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}
	if !feedback.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be Pending, Reviewed or Resolved"})
		return
	}

	if err := database.DB.Model(&fb).Update("status", input.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update feedback"})
		return
	}

	c.JSON(http.StatusOK, fb)
}

// DELETE /api/feedback/:id
func DeleteFeedback(c *gin.Context) {
	var fb feedback.Feedback
	if err := database.DB.First(&fb, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
		return
	}

	if err := database.DB.Delete(&fb).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted"})
}
