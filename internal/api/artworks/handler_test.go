package artworks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"artstore-backend/database"
	"artstore-backend/internal/domain/catalog"
	"artstore-backend/internal/infra/imagehost"

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
	r.GET("/api/artworks", ListArtworks)
	r.GET("/api/artworks/:id", GetArtwork)
	r.POST("/api/artworks", CreateArtwork)
	r.PUT("/api/artworks/:id", UpdateArtwork)
	r.DELETE("/api/artworks/:id", DeleteArtwork)
	return r
}

// stubUploads replaces the image host with an in-memory fake that hands
// out sequential URLs, restoring the real one when the test ends.
func stubUploads(t *testing.T) *[]string {
	t.Helper()

	var uploaded []string
	realUpload := imagehost.UploadFile
	realDestroy := imagehost.DestroyFile

	n := 0
	imagehost.UploadFile = func(ctx context.Context, file io.Reader) (imagehost.Upload, error) {
		n++
		up := imagehost.Upload{
			URL:      fmt.Sprintf("https://img.test/photo-%d.jpg", n),
			PublicID: fmt.Sprintf("artworks/photo-%d", n),
		}
		uploaded = append(uploaded, up.PublicID)
		return up, nil
	}
	imagehost.DestroyFile = func(ctx context.Context, publicID string) error {
		for i, id := range uploaded {
			if id == publicID {
				uploaded = append(uploaded[:i], uploaded[i+1:]...)
				break
			}
		}
		return nil
	}
	t.Cleanup(func() {
		imagehost.UploadFile = realUpload
		imagehost.DestroyFile = realDestroy
	})

	return &uploaded
}

func multipartArtwork(t *testing.T, fields map[string]string, photos []string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for i, label := range photos {
		part, err := w.CreateFormFile("photos", fmt.Sprintf("photo%d.jpg", i))
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
		require.NoError(t, w.WriteField("photo_labels", label))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestCreateArtwork_PhotosRoundTrip(t *testing.T) {
	r := setupTest(t)
	stubUploads(t)

	category := catalog.Category{Name: "Paintings"}
	require.NoError(t, database.DB.Create(&category).Error)

	body, contentType := multipartArtwork(t, map[string]string{
		"title":       "Monsoon Sky",
		"category_id": fmt.Sprint(category.ID),
		"price":       "Rs. 15,000",
	}, []string{"front", "detail"})

	req := httptest.NewRequest(http.MethodPost, "/api/artworks", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	getReq := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/artworks/%d", created.ID), nil)
	getW := httptest.NewRecorder()
	r.ServeHTTP(getW, getReq)
	require.Equal(t, http.StatusOK, getW.Code)

	var fetched struct {
		Price  string          `json:"price"`
		Photos []catalog.Photo `json:"photos"`
	}
	require.NoError(t, json.Unmarshal(getW.Body.Bytes(), &fetched))

	require.Len(t, fetched.Photos, 2)
	assert.Equal(t, "https://img.test/photo-1.jpg", fetched.Photos[0].URL)
	assert.Equal(t, "front", fetched.Photos[0].Label)
	assert.Equal(t, "https://img.test/photo-2.jpg", fetched.Photos[1].URL)
	assert.Equal(t, "detail", fetched.Photos[1].Label)
	assert.Equal(t, "Rs. 15,000", fetched.Price, "price stays a display string")
}

func TestCreateArtwork_RequiresPhoto(t *testing.T) {
	r := setupTest(t)
	stubUploads(t)

	category := catalog.Category{Name: "Paintings"}
	require.NoError(t, database.DB.Create(&category).Error)

	body, contentType := multipartArtwork(t, map[string]string{
		"title":       "No Photos",
		"category_id": fmt.Sprint(category.ID),
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/artworks", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateArtwork_UnknownCategory(t *testing.T) {
	r := setupTest(t)
	stubUploads(t)

	body, contentType := multipartArtwork(t, map[string]string{
		"title":       "Orphan",
		"category_id": "999",
	}, []string{"front"})

	req := httptest.NewRequest(http.MethodPost, "/api/artworks", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListArtworks_FilterByCategory(t *testing.T) {
	r := setupTest(t)

	paintings := catalog.Category{Name: "Paintings"}
	prints := catalog.Category{Name: "Prints"}
	require.NoError(t, database.DB.Create(&paintings).Error)
	require.NoError(t, database.DB.Create(&prints).Error)

	for _, c := range []catalog.Category{paintings, prints} {
		artwork := catalog.Artwork{Title: "In " + c.Name, CategoryID: c.ID}
		require.NoError(t, artwork.SetPhotos([]catalog.Photo{{URL: "https://img.test/x.jpg"}}))
		require.NoError(t, database.DB.Create(&artwork).Error)
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/artworks?category_id=%d", prints.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list []catalog.Artwork
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "In Prints", list[0].Title)
}

func TestDeleteArtwork_DestroysRemotePhotos(t *testing.T) {
	r := setupTest(t)
	uploaded := stubUploads(t)

	category := catalog.Category{Name: "Paintings"}
	require.NoError(t, database.DB.Create(&category).Error)

	body, contentType := multipartArtwork(t, map[string]string{
		"title":       "Short Lived",
		"category_id": fmt.Sprint(category.ID),
	}, []string{"front", "back"})

	req := httptest.NewRequest(http.MethodPost, "/api/artworks", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, *uploaded, 2)

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	delReq := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/artworks/%d", created.ID), nil)
	delW := httptest.NewRecorder()
	r.ServeHTTP(delW, delReq)
	require.Equal(t, http.StatusOK, delW.Code)

	var count int64
	database.DB.Model(&catalog.Artwork{}).Count(&count)
	assert.Equal(t, int64(0), count)
	assert.Empty(t, *uploaded, "remote photos are destroyed after the row")
}
