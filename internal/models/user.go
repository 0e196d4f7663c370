package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeClient  UserType = "client"
	UserTypeManager UserType = "manager"
)

type User struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name"`
	Email           string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash    string    `json:"-" gorm:"column:password;not null"`
	Phone           string    `json:"phone"`
	ProfilePhotoURL string    `json:"profilePhotoUrl"`
	LicenseStatus   string    `json:"licenseStatus"`
	AverageRating   float64   `json:"averageRating"`
	TotalRentals    int       `json:"totalRentals"`
	UserType        UserType  `json:"userType" gorm:"not null"`
	AgencyName      string    `json:"agencyName"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a server-generated ID so concurrent registrations
// can never collide.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
