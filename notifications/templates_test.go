package notifications_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kipkoech12/travelnest/models"
	"github.com/kipkoech12/travelnest/notifications"
	"github.com/stretchr/testify/assert"
)

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:        uuid.New(),
		User:      "alice",
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		Listing: &models.Listing{
			Title: "Test Property",
			Price: 150.00,
		},
	}
}

func TestBookingConfirmation(t *testing.T) {
	msg := notifications.BookingConfirmation(sampleBooking())

	assert.Equal(t, "Booking Confirmation - Test Property", msg.Subject)

	for _, body := range []string{msg.HTML, msg.Text} {
		assert.Contains(t, body, "Dear alice")
		assert.Contains(t, body, "Test Property")
		assert.Contains(t, body, "2024-06-01")
		assert.Contains(t, body, "2024-06-04")
		assert.Contains(t, body, "$150.00")
	}

	assert.Contains(t, msg.HTML, "<h2>Booking Confirmation</h2>")
	assert.NotContains(t, msg.Text, "<")
}

func TestPaymentConfirmation(t *testing.T) {
	booking := sampleBooking()
	payment := &models.Payment{
		ID:            uuid.New(),
		TransactionID: "TX123",
		BookingID:     booking.ID,
		Amount:        450.00,
		Status:        models.PaymentPending,
		PaymentDate:   time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
		Booking:       booking,
	}

	msg := notifications.PaymentConfirmation(payment)

	assert.Equal(t, "Payment Confirmation - Test Property", msg.Subject)

	for _, body := range []string{msg.HTML, msg.Text} {
		assert.Contains(t, body, "TX123")
		assert.Contains(t, body, "$450.00")
		assert.Contains(t, body, "Pending")
		assert.Contains(t, body, "2024-06-01 12:30:00")
		assert.Contains(t, body, "Test Property")
	}

	assert.Contains(t, msg.HTML, "<h2>Payment Confirmation</h2>")
	assert.NotContains(t, msg.Text, "<")
}
