package artworks

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"artstore-backend/database"
	"artstore-backend/internal/domain/catalog"
	"artstore-backend/internal/infra/imagehost"

	"github.com/gin-gonic/gin"
)

// GET /api/artworks?category_id=&artist_id=&available=
func ListArtworks(c *gin.Context) {
	q := database.DB.Preload("Category").Preload("Artist").Order("created_at DESC")

	if v := c.Query("category_id"); v != "" {
		q = q.Where("category_id = ?", v)
	}
	if v := c.Query("artist_id"); v != "" {
		q = q.Where("artist_id = ?", v)
	}
	if v := c.Query("available"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "available must be true or false"})
			return
		}
		q = q.Where("available = ?", available)
	}

	var artworks []catalog.Artwork
	if err := q.Find(&artworks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	if artworks == nil {
		artworks = []catalog.Artwork{}
	}
	c.JSON(http.StatusOK, artworks)
}

// GET /api/artworks/:id
func GetArtwork(c *gin.Context) {
	var artwork catalog.Artwork
	err := database.DB.Preload("Category").Preload("Artist").First(&artwork, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	c.JSON(http.StatusOK, artwork)
}

// uploadPhotos pushes every file part named "photos" to the image host,
// pairing each with its "photo_labels" entry by position. No retry and no
// cleanup of earlier uploads when a later one fails; the create as a whole
// fails and any already-uploaded files stay orphaned on the host.
func uploadPhotos(c *gin.Context) ([]catalog.Photo, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expected multipart form"})
		return nil, false
	}

	files := form.File["photos"]
	labels := form.Value["photo_labels"]

	photos := make([]catalog.Photo, 0, len(files))
	for i, fh := range files {
		file, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read photo", "details": fh.Filename})
			return nil, false
		}

		up, err := imagehost.UploadFile(c.Request.Context(), file)
		file.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo", "details": err.Error()})
			return nil, false
		}

		photo := catalog.Photo{URL: up.URL, PublicID: up.PublicID}
		if i < len(labels) {
			photo.Label = labels[i]
		}
		photos = append(photos, photo)
	}

	return photos, true
}

func lookupCategory(c *gin.Context, raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category_id must be a number"})
		return 0, false
	}
	var category catalog.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
		return 0, false
	}
	return uint(id), true
}

func lookupArtist(c *gin.Context, raw string) (*uint, bool) {
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "artist_id must be a number"})
		return nil, false
	}
	var artist catalog.Artist
	if err := database.DB.First(&artist, id).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Artist does not exist"})
		return nil, false
	}
	uid := uint(id)
	return &uid, true
}

// POST /api/artworks  (multipart)
func CreateArtwork(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	categoryID, ok := lookupCategory(c, c.PostForm("category_id"))
	if !ok {
		return
	}
	artistID, ok := lookupArtist(c, c.PostForm("artist_id"))
	if !ok {
		return
	}

	photos, ok := uploadPhotos(c)
	if !ok {
		return
	}
	if len(photos) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one photo is required"})
		return
	}

	artwork := catalog.Artwork{
		Title:       title,
		Description: c.PostForm("description"),
		CategoryID:  categoryID,
		ArtistID:    artistID,
		Medium:      c.PostForm("medium"),
		Dimensions:  c.PostForm("dimensions"),
		Year:        c.PostForm("year"),
		Price:       c.PostForm("price"),
		Available:   true,
	}
	if err := artwork.SetPhotos(photos); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode photos"})
		return
	}

	if err := database.DB.Create(&artwork).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, artwork)
}

// PUT /api/artworks/:id  (multipart; all fields optional, new photos append)
func UpdateArtwork(c *gin.Context) {
	var artwork catalog.Artwork
	if err := database.DB.First(&artwork, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	if v, ok := c.GetPostForm("title"); ok {
		if strings.TrimSpace(v) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		artwork.Title = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("description"); ok {
		artwork.Description = v
	}
	if v, ok := c.GetPostForm("category_id"); ok {
		categoryID, valid := lookupCategory(c, v)
		if !valid {
			return
		}
		artwork.CategoryID = categoryID
	}
	if v, ok := c.GetPostForm("artist_id"); ok {
		artistID, valid := lookupArtist(c, v)
		if !valid {
			return
		}
		artwork.ArtistID = artistID
	}
	if v, ok := c.GetPostForm("medium"); ok {
		artwork.Medium = v
	}
	if v, ok := c.GetPostForm("dimensions"); ok {
		artwork.Dimensions = v
	}
	if v, ok := c.GetPostForm("year"); ok {
		artwork.Year = v
	}
	if v, ok := c.GetPostForm("price"); ok {
		artwork.Price = v
	}
	if v, ok := c.GetPostForm("available"); ok {
		available, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "available must be true or false"})
			return
		}
		artwork.Available = available
	}

	if form, err := c.MultipartForm(); err == nil && len(form.File["photos"]) > 0 {
		added, ok := uploadPhotos(c)
		if !ok {
			return
		}
		existing, err := artwork.PhotoList()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored photos are corrupt"})
			return
		}
		if err := artwork.SetPhotos(append(existing, added...)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode photos"})
			return
		}
	}

	if err := database.DB.Save(&artwork).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork"})
		return
	}

	c.JSON(http.StatusOK, artwork)
}

// DELETE /api/artworks/:id
// The row goes first; remote images are destroyed best-effort afterwards,
// never transactionally with the delete.
func DeleteArtwork(c *gin.Context) {
	var artwork catalog.Artwork
	if err := database.DB.First(&artwork, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	photos, _ := artwork.PhotoList()

	if err := database.DB.Delete(&artwork).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
		return
	}

	for _, p := range photos {
		if err := imagehost.DestroyFile(c.Request.Context(), p.PublicID); err != nil {
			log.Printf("failed to delete remote image %s: %v", p.PublicID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artwork deleted"})
}
