package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kipkoech12/travelnest/handlers"
)

func ListingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	listings := api.Group("/listings")
	listings.Get("", handlers.GetListings)
	listings.Post("", handlers.CreateListing)
	listings.Get("/:listingId", handlers.GetListing)
	listings.Put("/:listingId", handlers.UpdateListing)
	listings.Delete("/:listingId", handlers.DeleteListing)

	listings.Get("/:listingId/photos", handlers.GetListingPhotos)
	listings.Post("/:listingId/photos", handlers.UploadListingPhoto)
}
