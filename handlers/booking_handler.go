package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kipkoech12/travelnest/database"
	"github.com/kipkoech12/travelnest/jobs"
	"github.com/kipkoech12/travelnest/models"
	"gorm.io/gorm"
)

const bookingDateLayout = "2006-01-02"

type CreateBookingRequest struct {
	ListingID string `json:"listing_id" validate:"required,uuid"`
	User      string `json:"user" validate:"required,max=100"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

type UpdateBookingRequest struct {
	User      *string `json:"user" validate:"omitempty,max=100"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

func parseBookingDate(field, value string) (time.Time, *fiber.Map) {
	t, err := time.Parse(bookingDateLayout, value)
	if err != nil {
		return time.Time{}, &fiber.Map{
			"error":  "Validation failed",
			"fields": map[string]string{field: "must be a date in YYYY-MM-DD format"},
		}
	}
	return t, nil
}

func GetBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := database.DB.Preload("Listing").Order("created_at").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(bookings)
}

func CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	listingID, _ := uuid.Parse(req.ListingID)

	startDate, badReq := parseBookingDate("start_date", req.StartDate)
	if badReq != nil {
		return c.Status(fiber.StatusBadRequest).JSON(badReq)
	}
	endDate, badReq := parseBookingDate("end_date", req.EndDate)
	if badReq != nil {
		return c.Status(fiber.StatusBadRequest).JSON(badReq)
	}
	if !startDate.Before(endDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": map[string]string{"end_date": "must be after start_date"},
		})
	}

	var listing models.Listing
	if err := database.DB.First(&listing, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	booking := models.Booking{
		ListingID: listing.ID,
		User:      req.User,
		StartDate: startDate,
		EndDate:   endDate,
	}
	if err := database.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}
	booking.Listing = &listing

	if notifier != nil {
		if _, err := notifier.EnqueueBookingConfirmation(booking.ID); err != nil {
			if errors.Is(err, jobs.ErrQueueFull) {
				log.Printf("⚠️ Notification queue full, booking confirmation for %s not enqueued", booking.ID)
			} else {
				log.Printf("⚠️ Failed to enqueue booking confirmation for %s: %v", booking.ID, err)
			}
		}
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func GetBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID format"})
	}

	var booking models.Booking
	if err := database.DB.Preload("Listing").First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(booking)
}

func UpdateBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID format"})
	}

	var req UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if req.User != nil {
		booking.User = *req.User
	}
	if req.StartDate != nil {
		startDate, badReq := parseBookingDate("start_date", *req.StartDate)
		if badReq != nil {
			return c.Status(fiber.StatusBadRequest).JSON(badReq)
		}
		booking.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, badReq := parseBookingDate("end_date", *req.EndDate)
		if badReq != nil {
			return c.Status(fiber.StatusBadRequest).JSON(badReq)
		}
		booking.EndDate = endDate
	}
	if !booking.StartDate.Before(booking.EndDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": map[string]string{"end_date": "must be after start_date"},
		})
	}

	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}
	return c.JSON(booking)
}

func DeleteBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID format"})
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if err := database.DB.Delete(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete booking"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SendBookingConfirmation re-enqueues the confirmation email for an
// existing booking.
func SendBookingConfirmation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID format"})
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	jobID, err := notifier.EnqueueBookingConfirmation(booking.ID)
	if err != nil {
		if errors.Is(err, jobs.ErrQueueFull) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Notification queue is full, try again later"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to enqueue notification"})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Booking confirmation email queued",
		"job_id":  jobID,
	})
}
