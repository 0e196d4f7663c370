package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusRejected   BookingStatus = "rejected"
)

type DeliveryType string

const (
	DeliveryTypePickup   DeliveryType = "pickup"
	DeliveryTypeDelivery DeliveryType = "delivery"
)

// bookingTransitions is the allowed status graph. Completed, cancelled and
// rejected are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusRejected, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusInProgress, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted},
}

// CanTransition reports whether a booking may move from one status to another.
func (s BookingStatus) CanTransition(to BookingStatus) bool {
	for _, next := range bookingTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type Booking struct {
	ID              string        `json:"id" gorm:"primaryKey"`
	UserID          string        `json:"userId" gorm:"index;not null"`
	User            User          `json:"-" gorm:"foreignKey:UserID"`
	VehicleID       string        `json:"vehicleId" gorm:"index;not null"`
	Vehicle         Vehicle       `json:"-" gorm:"foreignKey:VehicleID"`
	AgencyID        string        `json:"agencyId" gorm:"index;not null"`
	Agency          Agency        `json:"-" gorm:"foreignKey:AgencyID"`
	StartDate       time.Time     `json:"startDate"`
	EndDate         time.Time     `json:"endDate"`
	DeliveryType    DeliveryType  `json:"deliveryType"`
	DeliveryAddress string        `json:"deliveryAddress"`
	TotalPrice      float64       `json:"totalPrice"`
	Status          BookingStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt       time.Time     `json:"createdAt"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
