package admin

import (
	"fmt"
	"net/http"
	"time"

	"artstore-backend/database"
	"artstore-backend/internal/domain/catalog"
	"artstore-backend/internal/domain/feedback"
	"artstore-backend/internal/domain/orders"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// sendWorkbook builds a single-sheet workbook in memory and streams it as
// an attachment. The whole table is buffered; exports are an admin-only,
// low-volume path.
func sendWorkbook(c *gin.Context, name string, headers []string, rows [][]interface{}) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for r, row := range rows {
		for i, v := range row {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build spreadsheet"})
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// GET /api/admin/export/orders
func ExportOrders(c *gin.Context) {
	var list []orders.Order
	if err := database.DB.Preload("Artwork").Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	if len(list) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No orders to export"})
		return
	}

	headers := []string{"ID", "Type", "Artwork", "Customer", "Email", "Phone", "Address", "Details", "Status", "Created"}
	rows := make([][]interface{}, 0, len(list))
	for _, o := range list {
		artworkTitle := ""
		if o.Artwork != nil {
			artworkTitle = o.Artwork.Title
		}
		rows = append(rows, []interface{}{
			o.ID, o.OrderType, artworkTitle,
			o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.DeliveryAddress,
			string(o.Details), o.Status,
			o.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	sendWorkbook(c, "orders", headers, rows)
}

// GET /api/admin/export/artworks
func ExportArtworks(c *gin.Context) {
	var list []catalog.Artwork
	if err := database.DB.Preload("Category").Preload("Artist").Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}
	if len(list) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No artworks to export"})
		return
	}

	headers := []string{"ID", "Title", "Category", "Artist", "Medium", "Dimensions", "Year", "Price", "Available", "Photos", "Created"}
	rows := make([][]interface{}, 0, len(list))
	for _, a := range list {
		categoryName := ""
		if a.Category != nil {
			categoryName = a.Category.Name
		}
		artistName := ""
		if a.Artist != nil {
			artistName = a.Artist.Name
		}
		photoCount := 0
		if photos, err := a.PhotoList(); err == nil {
			photoCount = len(photos)
		}
		rows = append(rows, []interface{}{
			a.ID, a.Title, categoryName, artistName,
			a.Medium, a.Dimensions, a.Year, a.Price, a.Available, photoCount,
			a.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	sendWorkbook(c, "artworks", headers, rows)
}

// GET /api/admin/export/artists
func ExportArtists(c *gin.Context) {
	var list []catalog.Artist
	if err := database.DB.Order("name ASC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}
	if len(list) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No artists to export"})
		return
	}

	headers := []string{"ID", "Name", "Email", "Phone", "Instagram", "Website", "Created"}
	rows := make([][]interface{}, 0, len(list))
	for _, a := range list {
		rows = append(rows, []interface{}{
			a.ID, a.Name, a.Email, a.Phone, a.Instagram, a.Website,
			a.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	sendWorkbook(c, "artists", headers, rows)
}

// GET /api/admin/export/feedback
func ExportFeedback(c *gin.Context) {
	var list []feedback.Feedback
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feedback"})
		return
	}
	if len(list) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No feedback to export"})
		return
	}

	headers := []string{"ID", "Customer", "Email", "Subject", "Message", "Rating", "Status", "Created"}
	rows := make([][]interface{}, 0, len(list))
	for _, fb := range list {
		rows = append(rows, []interface{}{
			fb.ID, fb.CustomerName, fb.CustomerEmail, fb.Subject, fb.Message,
			fb.Rating, fb.Status,
			fb.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	sendWorkbook(c, "feedback", headers, rows)
}
