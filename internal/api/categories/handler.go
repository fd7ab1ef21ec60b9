package categories

import (
	"net/http"
	"strings"

	"artstore-backend/database"
	"artstore-backend/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

type CategoryWithCount struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	ArtworkCount int    `json:"artwork_count"`
}

// GET /api/categories
func ListCategories(c *gin.Context) {
	var rows []CategoryWithCount
	err := database.DB.
		Table("categories").
		Select("categories.id, categories.name, COUNT(artworks.id) as artwork_count").
		Joins("LEFT JOIN artworks ON artworks.category_id = categories.id").
		Group("categories.id, categories.name").
		Order("categories.name ASC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}

	if rows == nil {
		rows = []CategoryWithCount{}
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/categories/:id
func GetCategory(c *gin.Context) {
	var category catalog.Category
	if err := database.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// POST /api/categories
func CreateCategory(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	var existing catalog.Category
	if err := database.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category already exists"})
		return
	}

	category := catalog.Category{Name: name}
	if err := database.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// PUT /api/categories/:id
func UpdateCategory(c *gin.Context) {
	var category catalog.Category
	if err := database.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	var existing catalog.Category
	if err := database.DB.Where("name = ? AND id <> ?", name, category.ID).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category already exists"})
		return
	}

	if err := database.DB.Model(&category).Update("name", name).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, category)
}

// DELETE /api/categories/:id
// Blocked while any artwork still references the category.
func DeleteCategory(c *gin.Context) {
	var category catalog.Category
	if err := database.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var count int64
	database.DB.Model(&catalog.Artwork{}).Where("category_id = ?", category.ID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete category with existing artworks"})
		return
	}

	if err := database.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
