package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/kipkoech12/travelnest/models"
	"github.com/kipkoech12/travelnest/payments"
	"github.com/kipkoech12/travelnest/utils"
	"gorm.io/gorm"
)

const bookingDateLayout = "2006-01-02"

// BookingStore is the slice of the persistence layer the payment workflow
// needs. *database.Store satisfies it.
type BookingStore interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	CreatePayment(ctx context.Context, payment *models.Payment) error
}

type PaymentService struct {
	store    BookingStore
	gateway  payments.Initiator
	currency string
	phone    string
}

func NewPaymentService(store BookingStore, gateway payments.Initiator, currency, phone string) *PaymentService {
	return &PaymentService{
		store:    store,
		gateway:  gateway,
		currency: currency,
		phone:    phone,
	}
}

// InitiatePayment validates the request, initializes a transaction with the
// payment gateway, and records the resulting Payment as Pending. The
// gateway call carries no idempotency key, so a caller retry after a
// network failure can create a duplicate pending transaction upstream.
func (s *PaymentService) InitiatePayment(ctx context.Context, bookingID uuid.UUID, amount float64) (*models.Payment, error) {
	fields := map[string]string{}
	if bookingID == uuid.Nil {
		fields["booking_id"] = "is required"
	}
	if amount <= 0 {
		fields["amount"] = "must be greater than zero"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	booking, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "booking", ID: bookingID.String()}
		}
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}

	initReq := payments.InitializeRequest{
		Amount:      strconv.FormatFloat(amount, 'f', 2, 64),
		Currency:    s.currency,
		Email:       utils.CustomerEmail(booking.User),
		PhoneNumber: s.phone,
		Customization: payments.Customization{
			Title: fmt.Sprintf("Payment for %s", booking.Listing.Title),
			Description: fmt.Sprintf("Booking from %s to %s",
				booking.StartDate.Format(bookingDateLayout),
				booking.EndDate.Format(bookingDateLayout)),
		},
	}

	initResp, err := s.gateway.Initialize(ctx, initReq)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		TransactionID: initResp.Data.Reference,
		BookingID:     booking.ID,
		Amount:        amount,
		Status:        models.PaymentPending,
		PaymentDate:   time.Now(),
	}

	if err := s.store.CreatePayment(ctx, payment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ValidationError{Fields: map[string]string{
				"transaction_id": "a payment with this transaction id already exists",
			}}
		}
		return nil, fmt.Errorf("failed to persist payment: %w", err)
	}

	log.Printf("✅ Payment %s initiated for booking %s (reference %s)", payment.ID, booking.ID, payment.TransactionID)
	return payment, nil
}
