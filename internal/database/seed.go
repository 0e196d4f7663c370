package database

import (
	"log"

	"github.com/aitbensouda/krili-backend/internal/models"
	"gorm.io/gorm"
)

// Seed inserts the demo agencies and their fleet when the agencies table is
// empty. Seed rows keep fixed IDs so they can be referenced from docs and
// example flows.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Agency{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	agencies := []models.Agency{
		{
			ID:           "1",
			Name:         "Premium Cars",
			Description:  "Luxury car rentals",
			LocationLat:  34.020882,
			LocationLng:  -6.841650,
			Address:      "Rabat Agdal",
			LogoURL:      "https://images.unsplash.com/photo-1560179707-f14e90ef3623?w=200",
			Rating:       4.8,
			TotalReviews: 120,
			MinPrice:     500,
		},
		{
			ID:           "2",
			Name:         "City Drive",
			Description:  "Affordable city cars",
			LocationLat:  33.573110,
			LocationLng:  -7.589843,
			Address:      "Casablanca Maarif",
			LogoURL:      "https://images.unsplash.com/photo-1549317661-bd32c8ce0db2?w=200",
			Rating:       4.5,
			TotalReviews: 85,
			MinPrice:     300,
		},
	}
	if err := db.Create(&agencies).Error; err != nil {
		return err
	}

	vehicles := []models.Vehicle{
		{
			ID: "v1", AgencyID: "1", Make: "Mercedes", Model: "C-Class", Year: 2023,
			Category: "Luxury", PricePerDay: 1200,
			ImageURL:     "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?w=800",
			Transmission: "Automatic", FuelType: "Diesel", Seats: 5,
			Rating: 4.9, TotalTrips: 45, IsAvailable: true,
			Features:    models.StringList{"GPS", "Leather Seats"},
			Images:      models.StringList{},
			LocationLat: 34.020882, LocationLng: -6.841650, Address: "Rabat Agdal",
		},
		{
			ID: "v2", AgencyID: "1", Make: "BMW", Model: "3 Series", Year: 2023,
			Category: "Luxury", PricePerDay: 1300,
			ImageURL:     "https://images.unsplash.com/photo-1555215695-3004980adade?w=800",
			Transmission: "Automatic", FuelType: "Petrol", Seats: 5,
			Rating: 4.8, TotalTrips: 32, IsAvailable: true,
			Features:    models.StringList{"Sunroof", "Bluetooth"},
			Images:      models.StringList{},
			LocationLat: 34.020882, LocationLng: -6.841650, Address: "Rabat Agdal",
		},
		{
			ID: "v3", AgencyID: "2", Make: "Renault", Model: "Clio 5", Year: 2024,
			Category: "Economy", PricePerDay: 350,
			ImageURL:     "https://images.unsplash.com/photo-1621007947382-bb3c3968e3bb?w=800",
			Transmission: "Manual", FuelType: "Diesel", Seats: 5,
			Rating: 4.6, TotalTrips: 89, IsAvailable: true,
			Features:    models.StringList{"Bluetooth", "AC"},
			Images:      models.StringList{},
			LocationLat: 33.573110, LocationLng: -7.589843, Address: "Casablanca Maarif",
		},
		{
			ID: "v4", AgencyID: "2", Make: "Dacia", Model: "Logan", Year: 2023,
			Category: "Economy", PricePerDay: 300,
			ImageURL:     "https://images.unsplash.com/photo-1541899481282-d53bffe3c35d?w=800",
			Transmission: "Manual", FuelType: "Diesel", Seats: 5,
			Rating: 4.4, TotalTrips: 120, IsAvailable: true,
			Features:    models.StringList{"AC"},
			Images:      models.StringList{},
			LocationLat: 33.573110, LocationLng: -7.589843, Address: "Casablanca Maarif",
		},
	}
	if err := db.Create(&vehicles).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d agencies and %d vehicles", len(agencies), len(vehicles))
	return nil
}
