package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentPending   = "Pending"
	PaymentCompleted = "Completed"
	PaymentFailed    = "Failed"
)

type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TransactionID string    `gorm:"size:100;uniqueIndex;not null" json:"transaction_id"`
	BookingID     uuid.UUID `gorm:"type:uuid;not null" json:"booking_id"`
	Amount        float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status        string    `gorm:"size:20;not null" json:"status"`
	PaymentDate   time.Time `gorm:"not null" json:"payment_date"`

	Booking *Booking `gorm:"foreignkey:BookingID;constraint:OnDelete:CASCADE" json:"booking,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
