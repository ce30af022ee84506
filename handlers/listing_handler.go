package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kipkoech12/travelnest/cache"
	"github.com/kipkoech12/travelnest/database"
	"github.com/kipkoech12/travelnest/models"
	"gorm.io/gorm"
)

const (
	listingsCacheKey = "listings:all"
	listingCacheTTL  = 5 * time.Minute
)

func listingCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("listings:%s", id)
}

type CreateListingRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Available   *bool    `json:"available"`
}

type UpdateListingRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=200"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Available   *bool    `json:"available"`
}

func GetListings(c *fiber.Ctx) error {
	var listings []models.Listing
	if cache.GetJSON(c.Context(), listingsCacheKey, &listings) {
		return c.JSON(listings)
	}

	if err := database.DB.Order("created_at").Find(&listings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	cache.SetJSON(c.Context(), listingsCacheKey, listings, listingCacheTTL)
	return c.JSON(listings)
}

func CreateListing(c *fiber.Ctx) error {
	var req CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	listing := models.Listing{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Available:   available,
	}
	if err := database.DB.Create(&listing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create listing"})
	}

	cache.Invalidate(c.Context(), listingsCacheKey)
	return c.Status(fiber.StatusCreated).JSON(listing)
}

func GetListing(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("listingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing ID format"})
	}

	var listing models.Listing
	if cache.GetJSON(c.Context(), listingCacheKey(id), &listing) {
		return c.JSON(listing)
	}

	if err := database.DB.First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	cache.SetJSON(c.Context(), listingCacheKey(id), listing, listingCacheTTL)
	return c.JSON(listing)
}

func UpdateListing(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("listingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing ID format"})
	}

	var req UpdateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var listing models.Listing
	if err := database.DB.First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Price != nil {
		listing.Price = *req.Price
	}
	if req.Available != nil {
		listing.Available = *req.Available
	}

	if err := database.DB.Save(&listing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update listing"})
	}

	cache.Invalidate(c.Context(), listingsCacheKey, listingCacheKey(id))
	return c.JSON(listing)
}

func DeleteListing(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("listingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing ID format"})
	}

	var listing models.Listing
	if err := database.DB.First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	// Dependent bookings, payments and photos go with it via FK cascade.
	if err := database.DB.Delete(&listing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete listing"})
	}

	cache.Invalidate(c.Context(), listingsCacheKey, listingCacheKey(id))
	return c.SendStatus(fiber.StatusNoContent)
}
