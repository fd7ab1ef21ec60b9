package imagehost

import (
	"context"
	"fmt"
	"io"
	"log"

	"artstore-backend/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Upload is one stored remote image.
type Upload struct {
	URL      string
	PublicID string
}

var cld *cloudinary.Cloudinary

func Init() error {
	if config.CLOUDINARY_CLOUD_NAME == "" {
		log.Println("Cloudinary not configured, artwork image upload disabled")
		return nil
	}

	c, err := cloudinary.NewFromParams(
		config.CLOUDINARY_CLOUD_NAME,
		config.CLOUDINARY_API_KEY,
		config.CLOUDINARY_API_SECRET,
	)
	if err != nil {
		return err
	}
	cld = c
	return nil
}

// UploadFile pushes one image to the host. Declared as a variable so
// handler tests can swap in a stub.
var UploadFile = func(ctx context.Context, file io.Reader) (Upload, error) {
	if cld == nil {
		return Upload{}, fmt.Errorf("image host not configured")
	}

	resp, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: "artworks/" + uuid.NewString(),
	})
	if err != nil {
		return Upload{}, err
	}
	return Upload{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

// DestroyFile removes a remote image. Callers treat failures as
// best-effort: log and move on, the database row is already gone.
var DestroyFile = func(ctx context.Context, publicID string) error {
	if cld == nil || publicID == "" {
		return nil
	}
	_, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
