package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is stored as a JSONB array column.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

type Vehicle struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	AgencyID     string     `json:"agencyId" gorm:"index;not null"`
	Agency       Agency     `json:"-" gorm:"foreignKey:AgencyID"`
	Make         string     `json:"make"`
	Model        string     `json:"model"`
	Year         int        `json:"year"`
	Category     string     `json:"category"`
	PricePerDay  float64    `json:"pricePerDay"`
	DeliveryFee  float64    `json:"deliveryFee"`
	ImageURL     string     `json:"imageUrl"`
	Transmission string     `json:"transmission"`
	FuelType     string     `json:"fuelType"`
	Seats        int        `json:"seats"`
	Rating       float64    `json:"rating"`
	TotalTrips   int        `json:"totalTrips"`
	IsAvailable  bool       `json:"isAvailable" gorm:"default:true"`
	Features     StringList `json:"features" gorm:"type:jsonb"`
	Images       StringList `json:"images" gorm:"type:jsonb"`
	LocationLat  float64    `json:"locationLat"`
	LocationLng  float64    `json:"locationLng"`
	Address      string     `json:"address"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
