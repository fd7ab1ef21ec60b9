package catalog

import "time"

type Artist struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex:idx_artists_name" json:"name"`

	Bio       string `gorm:"type:text" json:"bio,omitempty"`
	Email     string `gorm:"size:255" json:"email,omitempty"`
	Phone     string `gorm:"size:50" json:"phone,omitempty"`
	Instagram string `gorm:"size:255" json:"instagram,omitempty"`
	Website   string `gorm:"size:255" json:"website,omitempty"`

	ProfileImageURL string `gorm:"size:512" json:"profile_image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
