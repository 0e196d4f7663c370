package client

import (
	"context"
	"fmt"
	"net/url"
)

// Register creates an account and returns the created user.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	if err := c.Post(ctx, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and remembers the returned token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.Post(ctx, "/auth/login", map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return nil, err
	}
	c.Token = resp.Token
	return &resp, nil
}

func (c *Client) Agencies(ctx context.Context) ([]Agency, error) {
	var agencies []Agency
	err := c.Get(ctx, "/agencies", &agencies)
	return agencies, err
}

// NearbyAgencies lists agencies within radiusKm of a point.
func (c *Client) NearbyAgencies(ctx context.Context, lat, lng, radiusKm float64) ([]Agency, error) {
	var agencies []Agency
	path := fmt.Sprintf("/agencies?lat=%f&lng=%f&radius=%f", lat, lng, radiusKm)
	err := c.Get(ctx, path, &agencies)
	return agencies, err
}

func (c *Client) Vehicles(ctx context.Context) ([]Vehicle, error) {
	var vehicles []Vehicle
	err := c.Get(ctx, "/vehicles", &vehicles)
	return vehicles, err
}

func (c *Client) AgencyVehicles(ctx context.Context, agencyID string) ([]Vehicle, error) {
	var vehicles []Vehicle
	err := c.Get(ctx, "/agencies/"+url.PathEscape(agencyID)+"/vehicles", &vehicles)
	return vehicles, err
}

func (c *Client) AgencyReviews(ctx context.Context, agencyID string) ([]Review, error) {
	var reviews []Review
	err := c.Get(ctx, "/agencies/"+url.PathEscape(agencyID)+"/reviews", &reviews)
	return reviews, err
}

func (c *Client) MyBookings(ctx context.Context, userID string) ([]Booking, error) {
	var bookings []Booking
	err := c.Get(ctx, "/bookings/my?userId="+url.QueryEscape(userID), &bookings)
	return bookings, err
}

func (c *Client) AgencyBookings(ctx context.Context, agencyID string) ([]Booking, error) {
	var bookings []Booking
	err := c.Get(ctx, "/bookings/agency/"+url.PathEscape(agencyID), &bookings)
	return bookings, err
}

func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error) {
	var resp CreateBookingResponse
	if err := c.Post(ctx, "/bookings", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateBookingStatus moves a booking along its lifecycle.
func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID, status string) (*Booking, error) {
	var booking Booking
	err := c.do(ctx, "PATCH", "/bookings/"+url.PathEscape(bookingID)+"/status",
		map[string]string{"status": status}, &booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) CreateVehicle(ctx context.Context, vehicle Vehicle) (*CreateVehicleResponse, error) {
	var resp CreateVehicleResponse
	if err := c.Post(ctx, "/vehicles", vehicle, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateVehicle sends a partial update; only the supplied fields change.
func (c *Client) UpdateVehicle(ctx context.Context, vehicleID string, fields map[string]interface{}) error {
	return c.Put(ctx, "/vehicles/"+url.PathEscape(vehicleID), fields, nil)
}

func (c *Client) DeleteVehicle(ctx context.Context, vehicleID string) error {
	return c.Delete(ctx, "/vehicles/"+url.PathEscape(vehicleID), nil)
}

// CreateReview leaves a review for an agency.
func (c *Client) CreateReview(ctx context.Context, agencyID string, review Review) (*Review, error) {
	var created Review
	err := c.Post(ctx, "/agencies/"+url.PathEscape(agencyID)+"/reviews", review, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}
