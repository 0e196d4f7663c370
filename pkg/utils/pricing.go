package utils

import (
	"math"
	"time"
)

// ServiceFeeRate is the marketplace cut added on top of the base price.
const ServiceFeeRate = 0.05

// BookingQuote contains the computed rental price and its breakdown.
type BookingQuote struct {
	Days        int     `json:"days"`
	BasePrice   float64 `json:"basePrice"`
	DeliveryFee float64 `json:"deliveryFee"`
	ServiceFee  float64 `json:"serviceFee"`
	Total       float64 `json:"total"`
}

// RentalDays returns the number of chargeable days between start and end.
// Partial days are rounded up and a rental is never shorter than one day.
func RentalDays(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// QuoteBooking computes the rental total: days times the daily rate, plus
// the vehicle's delivery fee for delivery bookings, plus a 5% service fee
// rounded to the nearest unit.
func QuoteBooking(pricePerDay, deliveryFee float64, start, end time.Time, delivery bool) BookingQuote {
	days := RentalDays(start, end)
	basePrice := float64(days) * pricePerDay

	fee := 0.0
	if delivery {
		fee = deliveryFee
	}

	serviceFee := math.Round(basePrice * ServiceFeeRate)
	total := basePrice + fee + serviceFee

	return BookingQuote{
		Days:        days,
		BasePrice:   basePrice,
		DeliveryFee: fee,
		ServiceFee:  serviceFee,
		Total:       math.Round(total*100) / 100,
	}
}
