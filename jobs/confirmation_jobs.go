package jobs

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/kipkoech12/travelnest/models"
	"github.com/kipkoech12/travelnest/notifications"
	"github.com/kipkoech12/travelnest/utils"
	"gorm.io/gorm"
)

// ConfirmationStore is the slice of the persistence layer the confirmation
// jobs need. *database.Store satisfies it.
type ConfirmationStore interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error)
}

// Notifier submits confirmation emails to the dispatcher and executes them
// on its workers.
type Notifier struct {
	store      ConfirmationStore
	mailer     notifications.Mailer
	dispatcher *Dispatcher
}

func NewNotifier(store ConfirmationStore, mailer notifications.Mailer, dispatcher *Dispatcher) *Notifier {
	return &Notifier{
		store:      store,
		mailer:     mailer,
		dispatcher: dispatcher,
	}
}

func (n *Notifier) EnqueueBookingConfirmation(bookingID uuid.UUID) (uuid.UUID, error) {
	return n.dispatcher.Enqueue("send_booking_confirmation", func(ctx context.Context) error {
		return n.SendBookingConfirmation(ctx, bookingID)
	})
}

func (n *Notifier) EnqueuePaymentConfirmation(paymentID uuid.UUID) (uuid.UUID, error) {
	return n.dispatcher.Enqueue("send_payment_confirmation", func(ctx context.Context) error {
		return n.SendPaymentConfirmation(ctx, paymentID)
	})
}

// SendBookingConfirmation emails the booking's user. A booking deleted
// between enqueue and execution is a soft failure: logged, no email, no
// error.
func (n *Notifier) SendBookingConfirmation(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := n.store.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Booking %s does not exist, skipping confirmation email", bookingID)
			return nil
		}
		return fmt.Errorf("failed to load booking %s: %w", bookingID, err)
	}

	if n.mailer == nil {
		log.Println("Email client not initialized, skipping email send.")
		return nil
	}

	msg := notifications.BookingConfirmation(booking)
	recipient := utils.CustomerEmail(booking.User)
	if err := n.mailer.Send(recipient, msg.Subject, msg.HTML, msg.Text); err != nil {
		return fmt.Errorf("failed to send booking confirmation to %s: %w", recipient, err)
	}

	log.Printf("✅ Booking confirmation email sent for booking %s", bookingID)
	return nil
}

// SendPaymentConfirmation emails the payer with transaction details and
// the stay window. Same soft-failure handling as bookings.
func (n *Notifier) SendPaymentConfirmation(ctx context.Context, paymentID uuid.UUID) error {
	payment, err := n.store.GetPayment(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Payment %s does not exist, skipping confirmation email", paymentID)
			return nil
		}
		return fmt.Errorf("failed to load payment %s: %w", paymentID, err)
	}

	if n.mailer == nil {
		log.Println("Email client not initialized, skipping email send.")
		return nil
	}

	msg := notifications.PaymentConfirmation(payment)
	recipient := utils.CustomerEmail(payment.Booking.User)
	if err := n.mailer.Send(recipient, msg.Subject, msg.HTML, msg.Text); err != nil {
		return fmt.Errorf("failed to send payment confirmation to %s: %w", recipient, err)
	}

	log.Printf("✅ Payment confirmation email sent for payment %s", paymentID)
	return nil
}
