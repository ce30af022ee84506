package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kipkoech12/travelnest/handlers"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	bookings := api.Group("/bookings")
	bookings.Get("", handlers.GetBookings)
	bookings.Post("", handlers.CreateBooking)
	bookings.Get("/:bookingId", handlers.GetBooking)
	bookings.Put("/:bookingId", handlers.UpdateBooking)
	bookings.Delete("/:bookingId", handlers.DeleteBooking)

	bookings.Post("/:bookingId/send-confirmation", handlers.SendBookingConfirmation)
}
