package catalog

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Photo is one entry of the artwork's photos JSON column. Order matters:
// the first photo is the cover image on the storefront.
type Photo struct {
	URL      string `json:"url"`
	Label    string `json:"label,omitempty"`
	PublicID string `json:"public_id,omitempty"`
}

type Artwork struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE;" json:"category,omitempty"`

	ArtistID *uint   `gorm:"index" json:"artist_id,omitempty"`
	Artist   *Artist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"artist,omitempty"`

	Medium     string `gorm:"size:100" json:"medium,omitempty"`
	Dimensions string `gorm:"size:100" json:"dimensions,omitempty"`
	Year       string `gorm:"size:10" json:"year,omitempty"`

	// Display string ("Rs. 15,000", "on request"), never parsed as a number.
	Price string `gorm:"size:100" json:"price,omitempty"`

	Available bool `gorm:"not null;default:true" json:"available"`

	Photos datatypes.JSON `gorm:"not null" json:"photos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Artwork) PhotoList() ([]Photo, error) {
	var photos []Photo
	if len(a.Photos) == 0 {
		return photos, nil
	}
	if err := json.Unmarshal(a.Photos, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

func (a *Artwork) SetPhotos(photos []Photo) error {
	raw, err := json.Marshal(photos)
	if err != nil {
		return err
	}
	a.Photos = datatypes.JSON(raw)
	return nil
}
