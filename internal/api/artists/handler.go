package artists

import (
	"log"
	"net/http"
	"strings"

	"artstore-backend/database"
	"artstore-backend/internal/domain/catalog"
	"artstore-backend/internal/infra/imagehost"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ArtistWithCount struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Bio             string `json:"bio,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Instagram       string `json:"instagram,omitempty"`
	Website         string `json:"website,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	ArtworkCount    int    `json:"artwork_count"`
}

// GET /api/artists
func ListArtists(c *gin.Context) {
	var rows []ArtistWithCount
	err := database.DB.
		Table("artists").
		Select("artists.id, artists.name, artists.bio, artists.email, artists.phone, artists.instagram, artists.website, artists.profile_image_url, COUNT(artworks.id) as artwork_count").
		Joins("LEFT JOIN artworks ON artworks.artist_id = artists.id").
		Group("artists.id").
		Order("artists.name ASC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}

	if rows == nil {
		rows = []ArtistWithCount{}
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/artists/:id
func GetArtist(c *gin.Context) {
	var artist catalog.Artist
	if err := database.DB.First(&artist, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	c.JSON(http.StatusOK, artist)
}

func bindArtistForm(c *gin.Context, artist *catalog.Artist) {
	artist.Name = strings.TrimSpace(c.PostForm("name"))
	artist.Bio = c.PostForm("bio")
	artist.Email = c.PostForm("email")
	artist.Phone = c.PostForm("phone")
	artist.Instagram = c.PostForm("instagram")
	artist.Website = c.PostForm("website")
}

// attachProfileImage uploads the optional "profile_image" part and sets the
// URL. A missing part is fine; a failed upload aborts the request.
func attachProfileImage(c *gin.Context, artist *catalog.Artist) bool {
	fileHeader, err := c.FormFile("profile_image")
	if err != nil {
		return true
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read profile image"})
		return false
	}
	defer file.Close()

	up, err := imagehost.UploadFile(c.Request.Context(), file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload profile image", "details": err.Error()})
		return false
	}

	artist.ProfileImageURL = up.URL
	return true
}

// POST /api/artists  (multipart)
func CreateArtist(c *gin.Context) {
	var artist catalog.Artist
	bindArtistForm(c, &artist)
	if artist.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Artist name is required"})
		return
	}

	var existing catalog.Artist
	if err := database.DB.Where("name = ?", artist.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Artist already exists"})
		return
	}

	if !attachProfileImage(c, &artist) {
		return
	}

	if err := database.DB.Create(&artist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artist", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, artist)
}

// PUT /api/artists/:id  (multipart)
func UpdateArtist(c *gin.Context) {
	var artist catalog.Artist
	if err := database.DB.First(&artist, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	if v, ok := c.GetPostForm("name"); ok {
		name := strings.TrimSpace(v)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Artist name cannot be empty"})
			return
		}
		var existing catalog.Artist
		if err := database.DB.Where("name = ? AND id <> ?", name, artist.ID).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Artist already exists"})
			return
		}
		artist.Name = name
	}
	if v, ok := c.GetPostForm("bio"); ok {
		artist.Bio = v
	}
	if v, ok := c.GetPostForm("email"); ok {
		artist.Email = v
	}
	if v, ok := c.GetPostForm("phone"); ok {
		artist.Phone = v
	}
	if v, ok := c.GetPostForm("instagram"); ok {
		artist.Instagram = v
	}
	if v, ok := c.GetPostForm("website"); ok {
		artist.Website = v
	}

	if !attachProfileImage(c, &artist) {
		return
	}

	if err := database.DB.Save(&artist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artist"})
		return
	}

	c.JSON(http.StatusOK, artist)
}

// DELETE /api/artists/:id
// Artworks survive: their artist_id is nulled before the row goes.
func DeleteArtist(c *gin.Context) {
	var artist catalog.Artist
	if err := database.DB.First(&artist, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&catalog.Artwork{}).
			Where("artist_id = ?", artist.ID).
			Update("artist_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&artist).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artist", "details": err.Error()})
		return
	}

	if artist.ProfileImageURL != "" {
		log.Printf("artist %d deleted, profile image left on host: %s", artist.ID, artist.ProfileImageURL)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artist deleted"})
}
