package handlers

import (
	"math"
	"time"

	"github.com/aitbensouda/krili-backend/internal/models"
	"github.com/aitbensouda/krili-backend/internal/services"
	"github.com/aitbensouda/krili-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type createBookingInput struct {
	UserID          string  `json:"userId" binding:"required"`
	VehicleID       string  `json:"vehicleId" binding:"required"`
	AgencyID        string  `json:"agencyId" binding:"required"`
	StartDate       string  `json:"startDate" binding:"required"`
	EndDate         string  `json:"endDate" binding:"required"`
	DeliveryType    string  `json:"deliveryType"`
	DeliveryAddress string  `json:"deliveryAddress"`
	TotalPrice      float64 `json:"totalPrice"`
}

// parseDate accepts both full RFC3339 timestamps and bare dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// CreateBooking stores a rental request. The total is recomputed from the
// vehicle's stored rate; a client-supplied total that disagrees with the
// quote is rejected. Status is always pending on creation.
func CreateBooking(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input createBookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		startDate, err := parseDate(input.StartDate)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid start date"})
			return
		}
		endDate, err := parseDate(input.EndDate)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid end date"})
			return
		}
		if !endDate.After(startDate) {
			c.JSON(400, gin.H{"error": "End date must be after start date"})
			return
		}

		var vehicle models.Vehicle
		if err := db.First(&vehicle, "id = ?", input.VehicleID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Vehicle not found"})
			return
		}

		deliveryType := models.DeliveryType(input.DeliveryType)
		if deliveryType == "" {
			deliveryType = models.DeliveryTypePickup
		}

		quote := utils.QuoteBooking(vehicle.PricePerDay, vehicle.DeliveryFee,
			startDate, endDate, deliveryType == models.DeliveryTypeDelivery)

		if input.TotalPrice != 0 && math.Abs(input.TotalPrice-quote.Total) > 0.01 {
			c.JSON(400, gin.H{"error": "Total price does not match the vehicle's rate", "expected": quote.Total})
			return
		}

		booking := models.Booking{
			UserID:          input.UserID,
			VehicleID:       input.VehicleID,
			AgencyID:        input.AgencyID,
			StartDate:       startDate,
			EndDate:         endDate,
			DeliveryType:    deliveryType,
			DeliveryAddress: input.DeliveryAddress,
			TotalPrice:      quote.Total,
			Status:          models.BookingStatusPending,
		}

		if err := db.Create(&booking).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create booking"})
			return
		}

		hub.SendBookingCreated(services.BookingCreated{
			BookingID: booking.ID,
			AgencyID:  booking.AgencyID,
			VehicleID: booking.VehicleID,
			UserID:    booking.UserID,
			Total:     booking.TotalPrice,
		})
		services.PublishBookingEvent(c.Request.Context(), booking.ID, booking.AgencyID, string(booking.Status))

		c.JSON(201, gin.H{"id": booking.ID, "status": booking.Status})
	}
}

// GetMyBookings lists a client's bookings, newest first, with the vehicle
// and agency summaries nested the way the mobile app renders them.
func GetMyBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("userId")

		var bookings []models.Booking
		if err := db.Where("user_id = ?", userID).
			Preload("Vehicle").
			Preload("Agency").
			Order("created_at DESC").
			Find(&bookings).Error; err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		response := make([]gin.H, 0, len(bookings))
		for _, b := range bookings {
			response = append(response, gin.H{
				"id":              b.ID,
				"userId":          b.UserID,
				"vehicleId":       b.VehicleID,
				"agencyId":        b.AgencyID,
				"startDate":       b.StartDate,
				"endDate":         b.EndDate,
				"deliveryType":    b.DeliveryType,
				"deliveryAddress": b.DeliveryAddress,
				"totalPrice":      b.TotalPrice,
				"status":          b.Status,
				"createdAt":       b.CreatedAt,
				"vehicle": gin.H{
					"id":       b.Vehicle.ID,
					"make":     b.Vehicle.Make,
					"model":    b.Vehicle.Model,
					"imageUrl": b.Vehicle.ImageURL,
				},
				"agency": gin.H{
					"id":      b.Agency.ID,
					"name":    b.Agency.Name,
					"logoUrl": b.Agency.LogoURL,
				},
			})
		}
		c.JSON(200, response)
	}
}

// GetAgencyBookings lists an agency's incoming bookings with the vehicle
// and the requesting client nested.
func GetAgencyBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bookings []models.Booking
		if err := db.Where("agency_id = ?", c.Param("agencyId")).
			Preload("Vehicle").
			Preload("User").
			Order("created_at DESC").
			Find(&bookings).Error; err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		response := make([]gin.H, 0, len(bookings))
		for _, b := range bookings {
			response = append(response, gin.H{
				"id":              b.ID,
				"userId":          b.UserID,
				"vehicleId":       b.VehicleID,
				"agencyId":        b.AgencyID,
				"startDate":       b.StartDate,
				"endDate":         b.EndDate,
				"deliveryType":    b.DeliveryType,
				"deliveryAddress": b.DeliveryAddress,
				"totalPrice":      b.TotalPrice,
				"status":          b.Status,
				"createdAt":       b.CreatedAt,
				"vehicle": gin.H{
					"id":       b.Vehicle.ID,
					"make":     b.Vehicle.Make,
					"model":    b.Vehicle.Model,
					"imageUrl": b.Vehicle.ImageURL,
				},
				"user": gin.H{
					"id":              b.User.ID,
					"name":            b.User.Name,
					"profilePhotoUrl": b.User.ProfilePhotoURL,
					"averageRating":   b.User.AverageRating,
				},
			})
		}
		c.JSON(200, response)
	}
}

// UpdateBookingStatus moves a booking along its lifecycle. Transitions
// outside the status graph are rejected.
func UpdateBookingStatus(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status string `json:"status" binding:"required,oneof=confirmed in_progress completed cancelled rejected"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var booking models.Booking
		if err := db.First(&booking, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		next := models.BookingStatus(input.Status)
		if !booking.Status.CanTransition(next) {
			c.JSON(400, gin.H{"error": "Invalid status transition", "from": booking.Status, "to": next})
			return
		}

		booking.Status = next
		if err := db.Save(&booking).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update booking status"})
			return
		}

		hub.SendBookingStatusChanged(booking.UserID, services.BookingStatusChanged{
			BookingID: booking.ID,
			Status:    string(booking.Status),
		})
		services.PublishBookingEvent(c.Request.Context(), booking.ID, booking.AgencyID, string(booking.Status))

		c.JSON(200, booking)
	}
}
