package handlers

import (
	"encoding/json"

	"github.com/aitbensouda/krili-backend/internal/models"
	"github.com/aitbensouda/krili-backend/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetVehicles lists every vehicle, served from the Redis cache when warm.
func GetVehicles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if data, err := services.GetCachedListing(c.Request.Context(), "vehicles"); err == nil {
			c.Data(200, "application/json; charset=utf-8", data)
			return
		}

		var vehicles []models.Vehicle
		if err := db.Find(&vehicles).Error; err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		if data, err := json.Marshal(vehicles); err == nil {
			services.CacheListing(c.Request.Context(), "vehicles", data)
		}
		c.JSON(200, vehicles)
	}
}

type createVehicleInput struct {
	AgencyID     string            `json:"agencyId" binding:"required"`
	Make         string            `json:"make" binding:"required"`
	Model        string            `json:"model" binding:"required"`
	Year         int               `json:"year"`
	Category     string            `json:"category"`
	PricePerDay  float64           `json:"pricePerDay" binding:"required"`
	DeliveryFee  float64           `json:"deliveryFee"`
	ImageURL     string            `json:"imageUrl"`
	Transmission string            `json:"transmission"`
	FuelType     string            `json:"fuelType"`
	Seats        int               `json:"seats"`
	Features     models.StringList `json:"features"`
	Images       models.StringList `json:"images"`
}

// CreateVehicle adds a vehicle to an agency's fleet. Unset fields get
// sensible defaults and the vehicle inherits the agency's location.
func CreateVehicle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input createVehicleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var agency models.Agency
		if err := db.First(&agency, "id = ?", input.AgencyID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Agency not found"})
			return
		}

		vehicle := models.Vehicle{
			AgencyID:     input.AgencyID,
			Make:         input.Make,
			Model:        input.Model,
			Year:         input.Year,
			Category:     input.Category,
			PricePerDay:  input.PricePerDay,
			DeliveryFee:  input.DeliveryFee,
			ImageURL:     input.ImageURL,
			Transmission: input.Transmission,
			FuelType:     input.FuelType,
			Seats:        input.Seats,
			IsAvailable:  true,
			Features:     input.Features,
			Images:       input.Images,
			LocationLat:  agency.LocationLat,
			LocationLng:  agency.LocationLng,
			Address:      agency.Address,
		}
		if vehicle.Year == 0 {
			vehicle.Year = 2024
		}
		if vehicle.Category == "" {
			vehicle.Category = "compact"
		}
		if vehicle.Transmission == "" {
			vehicle.Transmission = "automatic"
		}
		if vehicle.FuelType == "" {
			vehicle.FuelType = "petrol"
		}
		if vehicle.Seats == 0 {
			vehicle.Seats = 5
		}
		if vehicle.Features == nil {
			vehicle.Features = models.StringList{}
		}
		if vehicle.Images == nil {
			vehicle.Images = models.StringList{}
		}

		if err := db.Create(&vehicle).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create vehicle"})
			return
		}

		services.InvalidateListings(c.Request.Context(), "vehicles", "agencies")
		c.JSON(201, gin.H{"id": vehicle.ID, "status": "success"})
	}
}

type updateVehicleInput struct {
	Make         *string            `json:"make"`
	Model        *string            `json:"model"`
	Year         *int               `json:"year"`
	Category     *string            `json:"category"`
	PricePerDay  *float64           `json:"pricePerDay"`
	DeliveryFee  *float64           `json:"deliveryFee"`
	ImageURL     *string            `json:"imageUrl"`
	Transmission *string            `json:"transmission"`
	FuelType     *string            `json:"fuelType"`
	Seats        *int               `json:"seats"`
	IsAvailable  *bool              `json:"isAvailable"`
	Features     *models.StringList `json:"features"`
	Images       *models.StringList `json:"images"`
}

// UpdateVehicle applies a partial update containing only the fields present
// in the request body. A body with no recognized field is a no-op.
func UpdateVehicle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input updateVehicleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if input.Make != nil {
			updates["make"] = *input.Make
		}
		if input.Model != nil {
			updates["model"] = *input.Model
		}
		if input.Year != nil {
			updates["year"] = *input.Year
		}
		if input.Category != nil {
			updates["category"] = *input.Category
		}
		if input.PricePerDay != nil {
			updates["price_per_day"] = *input.PricePerDay
		}
		if input.DeliveryFee != nil {
			updates["delivery_fee"] = *input.DeliveryFee
		}
		if input.ImageURL != nil {
			updates["image_url"] = *input.ImageURL
		}
		if input.Transmission != nil {
			updates["transmission"] = *input.Transmission
		}
		if input.FuelType != nil {
			updates["fuel_type"] = *input.FuelType
		}
		if input.Seats != nil {
			updates["seats"] = *input.Seats
		}
		if input.IsAvailable != nil {
			updates["is_available"] = *input.IsAvailable
		}
		if input.Features != nil {
			updates["features"] = *input.Features
		}
		if input.Images != nil {
			updates["images"] = *input.Images
		}

		if len(updates) == 0 {
			c.JSON(200, gin.H{"message": "No changes"})
			return
		}

		if err := db.Model(&models.Vehicle{}).
			Where("id = ?", c.Param("id")).
			Updates(updates).Error; err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		services.InvalidateListings(c.Request.Context(), "vehicles")
		c.JSON(200, gin.H{"success": true})
	}
}

// DeleteVehicle removes a vehicle by id
func DeleteVehicle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Delete(&models.Vehicle{}, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		services.InvalidateListings(c.Request.Context(), "vehicles")
		c.JSON(200, gin.H{"success": true})
	}
}

// UploadVehicleImage accepts a multipart image, stores it (S3 or local
// fallback) and appends its URL to the vehicle's image list.
func UploadVehicleImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vehicle models.Vehicle
		if err := db.First(&vehicle, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Vehicle not found"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(400, gin.H{"error": "Image file required"})
			return
		}

		url, err := services.UploadImage(file, "vehicles")
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to upload image"})
			return
		}

		vehicle.Images = append(vehicle.Images, url)
		if vehicle.ImageURL == "" {
			vehicle.ImageURL = url
		}
		if err := db.Save(&vehicle).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to save vehicle"})
			return
		}

		services.InvalidateListings(c.Request.Context(), "vehicles")
		c.JSON(200, gin.H{"url": url, "images": vehicle.Images})
	}
}
