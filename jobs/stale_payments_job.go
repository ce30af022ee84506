package jobs

import (
	"log"
	"time"

	"github.com/kipkoech12/travelnest/database"
	"github.com/kipkoech12/travelnest/models"
)

// LogStalePendingPayments flags payments still Pending after a day. Nothing
// in this service moves a payment off Pending (gateway callbacks are not
// reconciled here), so this sweep only surfaces them in the logs.
func LogStalePendingPayments() {
	cutoff := time.Now().Add(-24 * time.Hour)

	var stale []models.Payment
	err := database.DB.
		Where("status = ? AND payment_date < ?", models.PaymentPending, cutoff).
		Find(&stale).Error
	if err != nil {
		log.Printf("Error checking for stale pending payments: %v", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	log.Printf("⚠️ %d payment(s) pending for more than 24h", len(stale))
	for _, payment := range stale {
		log.Printf("  payment %s (reference %s) pending since %s", payment.ID, payment.TransactionID, payment.PaymentDate.Format(time.RFC3339))
	}
}
