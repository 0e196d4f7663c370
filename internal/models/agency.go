package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Agency struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"index"`
	Description  string    `json:"description"`
	LocationLat  float64   `json:"locationLat"`
	LocationLng  float64   `json:"locationLng"`
	Address      string    `json:"address"`
	LogoURL      string    `json:"logoUrl"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"totalReviews"`
	MinPrice     float64   `json:"minPrice"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Agency) TableName() string {
	return "agencies"
}

func (a *Agency) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
