package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kipkoech12/travelnest/jobs"
	"github.com/kipkoech12/travelnest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockConfirmationStore struct {
	mock.Mock
}

func (m *mockConfirmationStore) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConfirmationStore) GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*models.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

type sentEmail struct {
	to      string
	subject string
	html    string
	text    string
}

type fakeMailer struct {
	sent []sentEmail
	err  error
}

func (f *fakeMailer) Send(toEmail, subject, htmlContent, textContent string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentEmail{to: toEmail, subject: subject, html: htmlContent, text: textContent})
	return nil
}

func confirmedBooking() *models.Booking {
	return &models.Booking{
		ID:        uuid.New(),
		User:      "alice",
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		Listing: &models.Listing{
			ID:    uuid.New(),
			Title: "Test Property",
			Price: 150.00,
		},
	}
}

func pendingPayment() *models.Payment {
	booking := confirmedBooking()
	return &models.Payment{
		ID:            uuid.New(),
		TransactionID: "TX123",
		BookingID:     booking.ID,
		Amount:        450.00,
		Status:        models.PaymentPending,
		PaymentDate:   time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
		Booking:       booking,
	}
}

func TestSendBookingConfirmation_Success(t *testing.T) {
	store := new(mockConfirmationStore)
	mailer := &fakeMailer{}
	notifier := jobs.NewNotifier(store, mailer, jobs.NewDispatcher(1, 1, nil))

	booking := confirmedBooking()
	ctx := context.Background()
	store.On("GetBooking", ctx, booking.ID).Return(booking, nil)

	err := notifier.SendBookingConfirmation(ctx, booking.ID)

	assert.NoError(t, err)
	if assert.Len(t, mailer.sent, 1) {
		email := mailer.sent[0]
		assert.Equal(t, "alice@example.com", email.to)
		assert.Equal(t, "Booking Confirmation - Test Property", email.subject)
		assert.Contains(t, email.html, "Test Property")
		assert.Contains(t, email.html, "2024-06-01")
		assert.Contains(t, email.html, "2024-06-04")
		assert.Contains(t, email.text, "150.00")
	}
}

func TestSendBookingConfirmation_MissingBooking(t *testing.T) {
	store := new(mockConfirmationStore)
	mailer := &fakeMailer{}
	notifier := jobs.NewNotifier(store, mailer, jobs.NewDispatcher(1, 1, nil))

	ctx := context.Background()
	bookingID := uuid.New()
	store.On("GetBooking", ctx, bookingID).Return(nil, gorm.ErrRecordNotFound)

	err := notifier.SendBookingConfirmation(ctx, bookingID)

	assert.NoError(t, err)
	assert.Empty(t, mailer.sent)
}

func TestSendBookingConfirmation_MailerFailure(t *testing.T) {
	store := new(mockConfirmationStore)
	mailer := &fakeMailer{err: errors.New("smtp unavailable")}
	notifier := jobs.NewNotifier(store, mailer, jobs.NewDispatcher(1, 1, nil))

	booking := confirmedBooking()
	ctx := context.Background()
	store.On("GetBooking", ctx, booking.ID).Return(booking, nil)

	err := notifier.SendBookingConfirmation(ctx, booking.ID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "smtp unavailable")
}

func TestSendPaymentConfirmation_Success(t *testing.T) {
	store := new(mockConfirmationStore)
	mailer := &fakeMailer{}
	notifier := jobs.NewNotifier(store, mailer, jobs.NewDispatcher(1, 1, nil))

	payment := pendingPayment()
	ctx := context.Background()
	store.On("GetPayment", ctx, payment.ID).Return(payment, nil)

	err := notifier.SendPaymentConfirmation(ctx, payment.ID)

	assert.NoError(t, err)
	if assert.Len(t, mailer.sent, 1) {
		email := mailer.sent[0]
		assert.Contains(t, email.to, "alice")
		assert.Equal(t, "Payment Confirmation - Test Property", email.subject)
		assert.Contains(t, email.html, "TX123")
		assert.Contains(t, email.html, "450.00")
		assert.Contains(t, email.html, models.PaymentPending)
		assert.Contains(t, email.text, "2024-06-01")
		assert.Contains(t, email.text, "2024-06-04")
	}
}

func TestSendPaymentConfirmation_MissingPayment(t *testing.T) {
	store := new(mockConfirmationStore)
	mailer := &fakeMailer{}
	notifier := jobs.NewNotifier(store, mailer, jobs.NewDispatcher(1, 1, nil))

	ctx := context.Background()
	paymentID := uuid.New()
	store.On("GetPayment", ctx, paymentID).Return(nil, gorm.ErrRecordNotFound)

	err := notifier.SendPaymentConfirmation(ctx, paymentID)

	assert.NoError(t, err)
	assert.Empty(t, mailer.sent)
}

func TestEnqueuePaymentConfirmation_RunsOnWorker(t *testing.T) {
	store := new(mockConfirmationStore)
	mailer := &fakeMailer{}

	dispatcher := jobs.NewDispatcher(1, 4, jobs.NoRetry{})
	dispatcher.Start(context.Background())
	defer dispatcher.Stop()

	notifier := jobs.NewNotifier(store, mailer, dispatcher)

	payment := pendingPayment()
	store.On("GetPayment", mock.Anything, payment.ID).Return(payment, nil)

	jobID, err := notifier.EnqueuePaymentConfirmation(payment.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, jobID)

	res := waitForResult(t, dispatcher)
	assert.Equal(t, jobID, res.JobID)
	assert.Equal(t, "send_payment_confirmation", res.Name)
	assert.NoError(t, res.Err)
	assert.Len(t, mailer.sent, 1)
}
