package handlers

import (
	"errors"

	"github.com/aitbensouda/krili-backend/internal/models"
	"github.com/aitbensouda/krili-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	UserType   string `json:"userType" binding:"required,oneof=client manager"`
	AgencyName string `json:"agencyName"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user. A manager registering under an unknown
// agency name also creates that agency; both inserts run in one
// transaction so a failure cannot leave a dangling agency.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var existing models.User
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			c.JSON(400, gin.H{"code": "auth/email-already-in-use", "message": "Email already in use"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(500, gin.H{"error": "Registration failed"})
			return
		}

		user := models.User{
			Name:          input.Name,
			Email:         input.Email,
			UserType:      models.UserType(input.UserType),
			AgencyName:    input.AgencyName,
			LicenseStatus: "pending",
		}
		if err := user.SetPassword(input.Password); err != nil {
			c.JSON(500, gin.H{"error": "Failed to hash password"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if user.UserType == models.UserTypeManager && input.AgencyName != "" {
				var agency models.Agency
				err := tx.Where("name = ?", input.AgencyName).First(&agency).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// Placeholder geolocation until the manager fills in
					// the real address.
					agency = models.Agency{
						Name:        input.AgencyName,
						Description: "New Agency",
						Address:     "Morocco",
						LocationLat: 34.020882,
						LocationLng: -6.841650,
					}
					if err := tx.Create(&agency).Error; err != nil {
						return err
					}
				} else if err != nil {
					return err
				}
			}
			return tx.Create(&user).Error
		})
		if err != nil {
			c.JSON(500, gin.H{"error": "Registration failed"})
			return
		}

		c.JSON(201, user)
	}
}

// Login checks credentials and returns the user row along with a JWT.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(401, gin.H{"code": "auth/invalid-credential", "message": "Invalid credentials"})
			return
		}

		if err := user.CheckPassword(input.Password); err != nil {
			c.JSON(401, gin.H{"code": "auth/invalid-credential", "message": "Invalid credentials"})
			return
		}

		token, err := utils.GenerateToken(&user)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(200, loginResponse{User: user, Token: token})
	}
}

type loginResponse struct {
	models.User
	Token string `json:"token"`
}
