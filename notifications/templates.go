package notifications

import (
	"fmt"

	"github.com/kipkoech12/travelnest/models"
)

const dateLayout = "2006-01-02"

// Message is a rendered email: subject plus HTML and plain-text bodies.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

func BookingConfirmation(booking *models.Booking) Message {
	checkIn := booking.StartDate.Format(dateLayout)
	checkOut := booking.EndDate.Format(dateLayout)

	html := fmt.Sprintf(`<html>
<body>
	<h2>Booking Confirmation</h2>
	<p>Dear %s,</p>
	<p>Your booking has been confirmed successfully!</p>
	<h3>Booking Details:</h3>
	<ul>
		<li><strong>Property:</strong> %s</li>
		<li><strong>Check-in:</strong> %s</li>
		<li><strong>Check-out:</strong> %s</li>
		<li><strong>Price:</strong> $%.2f</li>
	</ul>
	<p>Thank you for choosing our service!</p>
	<p>Best regards,<br>TravelNest Team</p>
</body>
</html>`, booking.User, booking.Listing.Title, checkIn, checkOut, booking.Listing.Price)

	text := fmt.Sprintf(`Dear %s,

Your booking has been confirmed successfully!

Booking Details:
- Property: %s
- Check-in: %s
- Check-out: %s
- Price: $%.2f

Thank you for choosing our service!
TravelNest Team`, booking.User, booking.Listing.Title, checkIn, checkOut, booking.Listing.Price)

	return Message{
		Subject: fmt.Sprintf("Booking Confirmation - %s", booking.Listing.Title),
		HTML:    html,
		Text:    text,
	}
}

func PaymentConfirmation(payment *models.Payment) Message {
	booking := payment.Booking
	checkIn := booking.StartDate.Format(dateLayout)
	checkOut := booking.EndDate.Format(dateLayout)
	paidAt := payment.PaymentDate.Format("2006-01-02 15:04:05")

	html := fmt.Sprintf(`<html>
<body>
	<h2>Payment Confirmation</h2>
	<p>Dear %s,</p>
	<p>Your payment has been processed successfully!</p>
	<h3>Payment Details:</h3>
	<ul>
		<li><strong>Transaction ID:</strong> %s</li>
		<li><strong>Amount:</strong> $%.2f</li>
		<li><strong>Status:</strong> %s</li>
		<li><strong>Date:</strong> %s</li>
	</ul>
	<h3>Booking Details:</h3>
	<ul>
		<li><strong>Property:</strong> %s</li>
		<li><strong>Check-in:</strong> %s</li>
		<li><strong>Check-out:</strong> %s</li>
	</ul>
	<p>Thank you for your payment!</p>
	<p>Best regards,<br>TravelNest Team</p>
</body>
</html>`, booking.User, payment.TransactionID, payment.Amount, payment.Status, paidAt,
		booking.Listing.Title, checkIn, checkOut)

	text := fmt.Sprintf(`Dear %s,

Your payment has been processed successfully!

Payment Details:
- Transaction ID: %s
- Amount: $%.2f
- Status: %s
- Date: %s

Booking Details:
- Property: %s
- Check-in: %s
- Check-out: %s

Thank you for your payment!
TravelNest Team`, booking.User, payment.TransactionID, payment.Amount, payment.Status, paidAt,
		booking.Listing.Title, checkIn, checkOut)

	return Message{
		Subject: fmt.Sprintf("Payment Confirmation - %s", booking.Listing.Title),
		HTML:    html,
		Text:    text,
	}
}
