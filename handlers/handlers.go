package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/kipkoech12/travelnest/jobs"
	"github.com/kipkoech12/travelnest/services"
)

var validate = validator.New()

var (
	paymentService *services.PaymentService
	notifier       *jobs.Notifier
	cloudinaryURL  string
)

// Init wires the handler package to its collaborators. Called once from
// main before routes are registered.
func Init(ps *services.PaymentService, n *jobs.Notifier, cldURL string) {
	paymentService = ps
	notifier = n
	cloudinaryURL = cldURL
}
