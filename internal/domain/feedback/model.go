package feedback

import "time"

const (
	StatusPending  = "Pending"
	StatusReviewed = "Reviewed"
	StatusResolved = "Resolved"
)

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusReviewed || s == StatusResolved
}

type Feedback struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:255;not null" json:"customer_email"`

	Subject string `gorm:"size:255" json:"subject,omitempty"`
	Message string `gorm:"type:text;not null" json:"message"`

	Rating int `gorm:"not null" json:"rating"`

	Status string `gorm:"size:20;not null;default:'Pending';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
