package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["email"] != "amine@example.com" {
			t.Fatalf("unexpected email %q", body["email"])
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":    "u1",
			"email": "amine@example.com",
			"token": "jwt-token",
		})
	}))
	defer server.Close()

	api := New(server.URL)
	resp, err := api.Login(context.Background(), "amine@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.ID != "u1" {
		t.Fatalf("expected user u1 got %q", resp.ID)
	}
	if api.Token != "jwt-token" {
		t.Fatalf("client should remember the token, got %q", api.Token)
	}
}

func TestAPIErrorWithCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		json.NewEncoder(w).Encode(map[string]string{
			"code":    "auth/invalid-credential",
			"message": "Invalid credentials",
		})
	}))
	defer server.Close()

	api := New(server.URL)
	_, err := api.Login(context.Background(), "amine@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.StatusCode != 401 || apiErr.Code != "auth/invalid-credential" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestAPIErrorWithPlainError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
	}))
	defer server.Close()

	api := New(server.URL)
	_, err := api.Vehicles(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Detail != "boom" {
		t.Fatalf("unexpected detail %q", apiErr.Detail)
	}
}

func TestCreateBooking(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bookings" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var req CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.VehicleID != "v1" {
			t.Fatalf("unexpected vehicle %q", req.VehicleID)
		}
		w.WriteHeader(201)
		json.NewEncoder(w).Encode(map[string]string{"id": "b1", "status": "pending"})
	}))
	defer server.Close()

	api := New(server.URL)
	resp, err := api.CreateBooking(context.Background(), CreateBookingRequest{
		UserID:    "u1",
		VehicleID: "v1",
		AgencyID:  "1",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-04",
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if resp.Status != "pending" {
		t.Fatalf("expected pending got %q", resp.Status)
	}
}

func TestTokenHeaderSent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer jwt-token" {
			t.Fatalf("unexpected auth header %q", got)
		}
		json.NewEncoder(w).Encode([]Agency{})
	}))
	defer server.Close()

	api := New(server.URL)
	api.Token = "jwt-token"
	if _, err := api.Agencies(context.Background()); err != nil {
		t.Fatalf("agencies: %v", err)
	}
}
