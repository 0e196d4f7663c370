package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/aitbensouda/krili-backend/internal/models"
	"github.com/aitbensouda/krili-backend/internal/services"
	"github.com/aitbensouda/krili-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAgencies lists all agencies. With lat/lng/radius query parameters the
// list is narrowed to agencies within the radius (km); minRating narrows by
// rating. The unfiltered listing is served from the Redis cache when warm.
func GetAgencies(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
		lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
		radius, _ := strconv.ParseFloat(c.DefaultQuery("radius", "25"), 64)
		minRating, _ := strconv.ParseFloat(c.Query("minRating"), 64)
		filtered := (latErr == nil && lngErr == nil) || minRating > 0

		if !filtered {
			if data, err := services.GetCachedListing(c.Request.Context(), "agencies"); err == nil {
				c.Data(200, "application/json; charset=utf-8", data)
				return
			}
		}

		var agencies []models.Agency
		if err := db.Find(&agencies).Error; err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		if filtered {
			result := make([]models.Agency, 0, len(agencies))
			for _, a := range agencies {
				if minRating > 0 && a.Rating < minRating {
					continue
				}
				if latErr == nil && lngErr == nil &&
					!utils.IsWithinRadius(lat, lng, a.LocationLat, a.LocationLng, radius) {
					continue
				}
				result = append(result, a)
			}
			c.JSON(200, result)
			return
		}

		if data, err := json.Marshal(agencies); err == nil {
			services.CacheListing(c.Request.Context(), "agencies", data)
		}
		c.JSON(200, agencies)
	}
}

// GetAgencyVehicles lists the fleet of one agency
func GetAgencyVehicles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vehicles []models.Vehicle
		if err := db.Where("agency_id = ?", c.Param("id")).Find(&vehicles).Error; err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, vehicles)
	}
}

// GetAgencyReviews lists an agency's reviews with the reviewer's name
// attached. A deleted reviewer yields an empty user object rather than an
// error.
func GetAgencyReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.Preload("User").
			Where("agency_id = ?", c.Param("id")).
			Find(&reviews).Error; err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		response := make([]gin.H, 0, len(reviews))
		for _, r := range reviews {
			user := gin.H{}
			if r.User.ID != "" {
				user = gin.H{"name": r.User.Name}
			}
			response = append(response, gin.H{
				"id":        r.ID,
				"userId":    r.UserID,
				"agencyId":  r.AgencyID,
				"vehicleId": r.VehicleID,
				"rating":    r.Rating,
				"comment":   r.Comment,
				"createdAt": r.CreatedAt,
				"user":      user,
			})
		}
		c.JSON(200, response)
	}
}
