package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kipkoech12/travelnest/handlers"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	payments := api.Group("/payments")
	payments.Get("", handlers.GetPayments)
	payments.Post("", handlers.CreatePayment)
	payments.Get("/:paymentId", handlers.GetPayment)
	payments.Put("/:paymentId", handlers.UpdatePayment)
	payments.Delete("/:paymentId", handlers.DeletePayment)

	payments.Post("/:paymentId/send-confirmation", handlers.SendPaymentConfirmation)
}
