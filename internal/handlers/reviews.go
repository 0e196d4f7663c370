package handlers

import (
	"github.com/aitbensouda/krili-backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type reviewInput struct {
	UserID    string  `json:"userId" binding:"required"`
	VehicleID string  `json:"vehicleId"`
	Rating    float64 `json:"rating" binding:"required"`
	Comment   string  `json:"comment"`
}

// CreateReview stores a review for an agency and folds it into the
// agency's rating aggregate in the same transaction.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		agencyID := c.Param("id")

		var input reviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if input.Rating < 1 || input.Rating > 5 {
			c.JSON(400, gin.H{"error": "Rating must be between 1 and 5"})
			return
		}

		var agency models.Agency
		if err := db.First(&agency, "id = ?", agencyID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Agency not found"})
			return
		}

		review := models.Review{
			UserID:    input.UserID,
			AgencyID:  agencyID,
			VehicleID: input.VehicleID,
			Rating:    input.Rating,
			Comment:   input.Comment,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&review).Error; err != nil {
				return err
			}

			newTotal := agency.TotalReviews + 1
			newRating := (agency.Rating*float64(agency.TotalReviews) + input.Rating) / float64(newTotal)
			return tx.Model(&agency).Updates(map[string]interface{}{
				"rating":        newRating,
				"total_reviews": newTotal,
			}).Error
		})
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to create review"})
			return
		}

		c.JSON(201, review)
	}
}
