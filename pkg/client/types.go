package client

import "time"

type User struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	ProfilePhotoURL string  `json:"profilePhotoUrl"`
	LicenseStatus   string  `json:"licenseStatus"`
	AverageRating   float64 `json:"averageRating"`
	TotalRentals    int     `json:"totalRentals"`
	UserType        string  `json:"userType"`
	AgencyName      string  `json:"agencyName"`
}

type Agency struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	LocationLat  float64 `json:"locationLat"`
	LocationLng  float64 `json:"locationLng"`
	Address      string  `json:"address"`
	LogoURL      string  `json:"logoUrl"`
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"totalReviews"`
	MinPrice     float64 `json:"minPrice"`
}

type Vehicle struct {
	ID           string   `json:"id"`
	AgencyID     string   `json:"agencyId"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Category     string   `json:"category"`
	PricePerDay  float64  `json:"pricePerDay"`
	DeliveryFee  float64  `json:"deliveryFee"`
	ImageURL     string   `json:"imageUrl"`
	Transmission string   `json:"transmission"`
	FuelType     string   `json:"fuelType"`
	Seats        int      `json:"seats"`
	Rating       float64  `json:"rating"`
	TotalTrips   int      `json:"totalTrips"`
	IsAvailable  bool     `json:"isAvailable"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
	LocationLat  float64  `json:"locationLat"`
	LocationLng  float64  `json:"locationLng"`
	Address      string   `json:"address"`
}

type VehicleSummary struct {
	ID       string `json:"id"`
	Make     string `json:"make"`
	Model    string `json:"model"`
	ImageURL string `json:"imageUrl"`
}

type AgencySummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
}

type UserSummary struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	ProfilePhotoURL string  `json:"profilePhotoUrl"`
	AverageRating   float64 `json:"averageRating"`
}

type Booking struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	VehicleID       string          `json:"vehicleId"`
	AgencyID        string          `json:"agencyId"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	DeliveryType    string          `json:"deliveryType"`
	DeliveryAddress string          `json:"deliveryAddress"`
	TotalPrice      float64         `json:"totalPrice"`
	Status          string          `json:"status"`
	Vehicle         *VehicleSummary `json:"vehicle,omitempty"`
	Agency          *AgencySummary  `json:"agency,omitempty"`
	User            *UserSummary    `json:"user,omitempty"`
}

type Review struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	AgencyID  string  `json:"agencyId"`
	VehicleID string  `json:"vehicleId"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
	User      struct {
		Name string `json:"name"`
	} `json:"user"`
}

type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	UserType   string `json:"userType"`
	AgencyName string `json:"agencyName,omitempty"`
}

type LoginResponse struct {
	User
	Token string `json:"token"`
}

type CreateBookingRequest struct {
	UserID          string  `json:"userId"`
	VehicleID       string  `json:"vehicleId"`
	AgencyID        string  `json:"agencyId"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	DeliveryType    string  `json:"deliveryType,omitempty"`
	DeliveryAddress string  `json:"deliveryAddress,omitempty"`
	TotalPrice      float64 `json:"totalPrice,omitempty"`
}

type CreateBookingResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type CreateVehicleResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
