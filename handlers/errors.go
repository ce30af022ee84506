package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/kipkoech12/travelnest/payments"
	"github.com/kipkoech12/travelnest/services"
)

// workflowErrorResponse maps payment-workflow errors to an HTTP status and
// JSON body. Unrecognized errors become a 500; nothing propagates to the
// caller unhandled.
func workflowErrorResponse(err error) (int, fiber.Map) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var gatewayErr *payments.GatewayError

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, fiber.Map{
			"error":  "Validation failed",
			"fields": validationErr.Fields,
		}
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound, fiber.Map{
			"error": notFoundErr.Error(),
		}
	case errors.As(err, &gatewayErr):
		return fiber.StatusBadGateway, fiber.Map{
			"error":           "Payment gateway error",
			"upstream_status": gatewayErr.StatusCode,
			"details":         gatewayErr.Body,
		}
	default:
		return fiber.StatusInternalServerError, fiber.Map{
			"error":   "Internal server error",
			"details": err.Error(),
		}
	}
}

func respondWorkflowError(c *fiber.Ctx, err error) error {
	status, body := workflowErrorResponse(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("🔥 Payment workflow failed: %v", err)
	}
	return c.Status(status).JSON(body)
}
