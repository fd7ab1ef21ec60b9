package orders

import (
	"time"

	"artstore-backend/internal/domain/catalog"

	"gorm.io/datatypes"
)

const (
	TypeRegular = "regular"
	TypeCustom  = "custom"
	TypeBulk    = "bulk"
)

const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

func ValidType(t string) bool {
	return t == TypeRegular || t == TypeCustom || t == TypeBulk
}

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted || s == StatusCancelled
}

type Order struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	OrderType string `gorm:"size:20;not null;index" json:"order_type"`

	ArtworkID *uint            `gorm:"index" json:"artwork_id,omitempty"`
	Artwork   *catalog.Artwork `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"artwork,omitempty"`

	CustomerName    string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail   string `gorm:"size:255;not null" json:"customer_email"`
	CustomerPhone   string `gorm:"size:50" json:"customer_phone,omitempty"`
	DeliveryAddress string `gorm:"type:text" json:"delivery_address,omitempty"`

	// Shape depends on OrderType; decoded with ParseDetails before insert.
	Details datatypes.JSON `gorm:"column:order_details" json:"order_details"`

	Status string `gorm:"size:20;not null;default:'Pending';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
