package artists

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"artstore-backend/database"
	"artstore-backend/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalog.Category{}, &catalog.Artist{}, &catalog.Artwork{}))
	database.DB = db

	r := gin.New()
	r.GET("/api/artists", ListArtists)
	r.GET("/api/artists/:id", GetArtist)
	r.POST("/api/artists", CreateArtist)
	r.PUT("/api/artists/:id", UpdateArtist)
	r.DELETE("/api/artists/:id", DeleteArtist)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateArtist(t *testing.T) {
	r := setupTest(t)

	w := postForm(r, "/api/artists", url.Values{
		"name":      {"Priya Sharma"},
		"bio":       {"Watercolor artist"},
		"instagram": {"@priyapaints"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var artist catalog.Artist
	require.NoError(t, database.DB.Where("name = ?", "Priya Sharma").First(&artist).Error)
	assert.Equal(t, "@priyapaints", artist.Instagram)
}

func TestCreateArtist_DuplicateName(t *testing.T) {
	r := setupTest(t)

	require.NoError(t, database.DB.Create(&catalog.Artist{Name: "Priya Sharma"}).Error)

	w := postForm(r, "/api/artists", url.Values{"name": {"Priya Sharma"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateArtist_MissingName(t *testing.T) {
	r := setupTest(t)

	w := postForm(r, "/api/artists", url.Values{"bio": {"no name"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteArtist_NullsArtworkArtist(t *testing.T) {
	r := setupTest(t)

	category := catalog.Category{Name: "Paintings"}
	require.NoError(t, database.DB.Create(&category).Error)
	artist := catalog.Artist{Name: "Priya Sharma"}
	require.NoError(t, database.DB.Create(&artist).Error)

	artwork := catalog.Artwork{Title: "Monsoon", CategoryID: category.ID, ArtistID: &artist.ID}
	require.NoError(t, artwork.SetPhotos([]catalog.Photo{{URL: "https://img.test/m.jpg"}}))
	require.NoError(t, database.DB.Create(&artwork).Error)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/artists/%d", artist.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var artists int64
	database.DB.Model(&catalog.Artist{}).Count(&artists)
	assert.Equal(t, int64(0), artists, "artist row must be removed")

	var kept catalog.Artwork
	require.NoError(t, database.DB.First(&kept, artwork.ID).Error, "artwork must survive")
	assert.Nil(t, kept.ArtistID, "artist reference must be nulled")
}

func TestListArtists_CarriesArtworkCount(t *testing.T) {
	r := setupTest(t)

	category := catalog.Category{Name: "Paintings"}
	require.NoError(t, database.DB.Create(&category).Error)
	artist := catalog.Artist{Name: "Priya Sharma"}
	require.NoError(t, database.DB.Create(&artist).Error)

	for i := 0; i < 2; i++ {
		artwork := catalog.Artwork{
			Title:      fmt.Sprintf("Piece %d", i+1),
			CategoryID: category.ID,
			ArtistID:   &artist.ID,
		}
		require.NoError(t, artwork.SetPhotos([]catalog.Photo{{URL: "https://img.test/p.jpg"}}))
		require.NoError(t, database.DB.Create(&artwork).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/artists", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"artwork_count":2`)
}
