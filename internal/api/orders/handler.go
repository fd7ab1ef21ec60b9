package orders

import (
	"encoding/json"
	"net/http"
	"strings"

	"artstore-backend/database"
	"artstore-backend/internal/domain/catalog"
	"artstore-backend/internal/domain/orders"
	"artstore-backend/internal/infra/mailer"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// Customer emails must be Gmail addresses; the store's mailbox only
// whitelists gmail.com senders for reply threads.
func isGmail(email string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(email)), "@gmail.com")
}

// POST /api/orders
func CreateOrder(c *gin.Context) {
	var input struct {
		OrderType       string          `json:"order_type" binding:"required"`
		ArtworkID       *uint           `json:"artwork_id"`
		CustomerName    string          `json:"customer_name" binding:"required"`
		CustomerEmail   string          `json:"customer_email" binding:"required,email"`
		CustomerPhone   string          `json:"customer_phone"`
		DeliveryAddress string          `json:"delivery_address"`
		OrderDetails    json.RawMessage `json:"order_details" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload", "details": err.Error()})
		return
	}

	if !orders.ValidType(input.OrderType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_type must be regular, custom or bulk"})
		return
	}

	if !isGmail(input.CustomerEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only Gmail addresses are accepted"})
		return
	}

	details, err := orders.ParseDetails(input.OrderType, input.OrderDetails)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ArtworkID != nil {
		var artwork catalog.Artwork
		if err := database.DB.First(&artwork, *input.ArtworkID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Artwork does not exist"})
			return
		}
	}

	order := orders.Order{
		OrderType:       input.OrderType,
		ArtworkID:       input.ArtworkID,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		DeliveryAddress: input.DeliveryAddress,
		Details:         datatypes.JSON(details),
		Status:          orders.StatusPending,
	}
	if err := database.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order", "details": err.Error()})
		return
	}

	go mailer.NotifyNewOrder(order.ID, order.OrderType, order.CustomerName, order.CustomerEmail)

	c.JSON(http.StatusCreated, order)
}

// GET /api/orders?order_type=&status=
func ListOrders(c *gin.Context) {
	q := database.DB.Preload("Artwork").Order("created_at DESC")
	if v := c.Query("order_type"); v != "" {
		q = q.Where("order_type = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("status = ?", v)
	}

	var list []orders.Order
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	if list == nil {
		list = []orders.Order{}
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/orders/:id
func GetOrder(c *gin.Context) {
	var order orders.Order
	if err := database.DB.Preload("Artwork").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// PATCH /api/orders/:id/status
// Any status may move to any other; the storefront has no order workflow.
func UpdateOrderStatus(c *gin.Context) {
	var order orders.Order
	if err := database.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}
	if !orders.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be Pending, Completed or Cancelled"})
		return
	}

	if err := database.DB.Model(&order).Update("status", input.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// DELETE /api/orders/:id
func DeleteOrder(c *gin.Context) {
	var order orders.Order
	if err := database.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := database.DB.Delete(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

type OrderStats struct {
	Total    int64            `json:"total"`
	ByType   map[string]int64 `json:"by_type"`
	ByStatus map[string]int64 `json:"by_status"`
}

// GET /api/orders/stats
// One aggregate pass; recomputed per request, nothing cached.
func GetOrderStats(c *gin.Context) {
	type bucket struct {
		OrderType string
		Status    string
		Count     int64
	}
	var buckets []bucket

	err := database.DB.
		Table("orders").
		Select("order_type, status, COUNT(*) as count").
		Group("order_type, status").
		Scan(&buckets).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	stats := OrderStats{
		ByType:   map[string]int64{},
		ByStatus: map[string]int64{},
	}
	for _, b := range buckets {
		stats.Total += b.Count
		stats.ByType[b.OrderType] += b.Count
		stats.ByStatus[b.Status] += b.Count
	}

	c.JSON(http.StatusOK, stats)
}
