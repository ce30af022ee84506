package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kipkoech12/travelnest/database"
	"github.com/kipkoech12/travelnest/jobs"
	"github.com/kipkoech12/travelnest/models"
	"gorm.io/gorm"
)

// CreatePaymentRequest deliberately has no status or transaction_id field:
// both are owned by the workflow, so client-supplied values are ignored.
type CreatePaymentRequest struct {
	BookingID string   `json:"booking_id" validate:"required,uuid"`
	Amount    *float64 `json:"amount" validate:"required"`
}

type UpdatePaymentRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Completed Failed"`
}

// CreatePayment runs the payment-initiation workflow instead of persisting
// client-supplied fields directly.
func CreatePayment(c *fiber.Ctx) error {
	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Booking ID and amount are required", "details": err.Error()})
	}

	bookingID, _ := uuid.Parse(req.BookingID)

	payment, err := paymentService.InitiatePayment(c.Context(), bookingID, *req.Amount)
	if err != nil {
		return respondWorkflowError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

func GetPayments(c *fiber.Ctx) error {
	var payments []models.Payment
	if err := database.DB.Order("created_at").Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(payments)
}

func GetPayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("paymentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID format"})
	}

	var payment models.Payment
	if err := database.DB.Preload("Booking").First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(payment)
}

// UpdatePayment only touches status. It is an operator surface for marking
// payments Completed or Failed until gateway callbacks are reconciled.
func UpdatePayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("paymentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID format"})
	}

	var req UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var payment models.Payment
	if err := database.DB.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	payment.Status = req.Status
	if err := database.DB.Save(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment"})
	}
	return c.JSON(payment)
}

func DeletePayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("paymentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID format"})
	}

	var payment models.Payment
	if err := database.DB.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if err := database.DB.Delete(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete payment"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SendPaymentConfirmation queues the confirmation email for an existing
// payment. Payment creation does not auto-chain this; the trigger is
// explicit.
func SendPaymentConfirmation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("paymentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID format"})
	}

	var payment models.Payment
	if err := database.DB.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	jobID, err := notifier.EnqueuePaymentConfirmation(payment.ID)
	if err != nil {
		if errors.Is(err, jobs.ErrQueueFull) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Notification queue is full, try again later"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to enqueue notification"})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Payment confirmation email queued",
		"job_id":  jobID,
	})
}
