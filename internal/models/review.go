package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"index"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	AgencyID  string    `json:"agencyId" gorm:"index;not null"`
	Agency    Agency    `json:"-" gorm:"foreignKey:AgencyID"`
	VehicleID string    `json:"vehicleId" gorm:"index"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
