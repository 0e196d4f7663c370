package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/aitbensouda/krili-backend/internal/database"
	"github.com/aitbensouda/krili-backend/internal/models"
	"github.com/aitbensouda/krili-backend/internal/router"
	"github.com/aitbensouda/krili-backend/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupTest opens the test database, resets it and returns a fully wired
// router. Tests are skipped when TEST_DATABASE_URL is not set.
func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Agency{},
		&models.Vehicle{},
		&models.Booking{},
		&models.Review{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, table := range []string{"reviews", "bookings", "vehicles", "users", "agencies"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("clean %s: %v", table, err)
		}
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	hub := services.NewHub()
	go hub.Run()

	return router.New(db, hub), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func registerUser(t *testing.T, r *gin.Engine, email, userType, agencyName string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/register", map[string]string{
		"name":       "Test User",
		"email":      email,
		"password":   "secret123",
		"userType":   userType,
		"agencyName": agencyName,
	})
	if w.Code != 201 {
		t.Fatalf("register %s failed: %d %s", email, w.Code, w.Body.String())
	}

	var user struct {
		ID string `json:"id"`
	}
	decode(t, w, &user)
	return user.ID
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, db := setupTest(t)

	registerUser(t, r, "amine@example.com", "client", "")

	w := doJSON(t, r, http.MethodPost, "/auth/register", map[string]string{
		"name":     "Someone Else",
		"email":    "amine@example.com",
		"password": "secret123",
		"userType": "client",
	})
	if w.Code != 400 {
		t.Fatalf("expected 400 got %d", w.Code)
	}

	var resp struct {
		Code string `json:"code"`
	}
	decode(t, w, &resp)
	if resp.Code != "auth/email-already-in-use" {
		t.Fatalf("expected duplicate-email code got %q", resp.Code)
	}

	var count int64
	db.Model(&models.User{}).Where("email = ?", "amine@example.com").Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one user row, got %d", count)
	}
}

func TestRegisterManagerCreatesAgencyOnce(t *testing.T) {
	r, db := setupTest(t)

	registerUser(t, r, "manager1@example.com", "manager", "Atlas Rentals")

	var count int64
	db.Model(&models.Agency{}).Where("name = ?", "Atlas Rentals").Count(&count)
	if count != 1 {
		t.Fatalf("expected one new agency, got %d", count)
	}

	registerUser(t, r, "manager2@example.com", "manager", "Atlas Rentals")

	db.Model(&models.Agency{}).Where("name = ?", "Atlas Rentals").Count(&count)
	if count != 1 {
		t.Fatalf("second manager duplicated the agency: %d rows", count)
	}

	var agency models.Agency
	if err := db.Where("name = ?", "Atlas Rentals").First(&agency).Error; err != nil {
		t.Fatalf("agency lookup: %v", err)
	}
	if agency.Rating != 0 || agency.TotalReviews != 0 {
		t.Fatalf("new agency aggregates should be zeroed: %+v", agency)
	}
}

func TestLogin(t *testing.T) {
	r, _ := setupTest(t)

	userID := registerUser(t, r, "amine@example.com", "client", "")

	w := doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email":    "amine@example.com",
		"password": "secret123",
	})
	if w.Code != 200 {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID    string `json:"id"`
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	if resp.ID != userID {
		t.Fatalf("expected user %s got %s", userID, resp.ID)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}

	w = doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email":    "amine@example.com",
		"password": "wrong-password",
	})
	if w.Code != 401 {
		t.Fatalf("expected 401 got %d", w.Code)
	}

	var errResp struct {
		Code string `json:"code"`
	}
	decode(t, w, &errResp)
	if errResp.Code != "auth/invalid-credential" {
		t.Fatalf("expected invalid-credential code got %q", errResp.Code)
	}
}

func TestUpdateVehicleNoRecognizedFields(t *testing.T) {
	r, db := setupTest(t)

	w := doJSON(t, r, http.MethodPut, "/vehicles/v1", map[string]string{
		"somethingElse": "ignored",
	})
	if w.Code != 200 {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var resp struct {
		Message string `json:"message"`
	}
	decode(t, w, &resp)
	if resp.Message != "No changes" {
		t.Fatalf("expected no-changes message got %q", resp.Message)
	}

	var vehicle models.Vehicle
	if err := db.First(&vehicle, "id = ?", "v1").Error; err != nil {
		t.Fatalf("vehicle lookup: %v", err)
	}
	if vehicle.Make != "Mercedes" || vehicle.PricePerDay != 1200 {
		t.Fatalf("row should be unchanged: %+v", vehicle)
	}
}

func TestUpdateVehiclePartial(t *testing.T) {
	r, db := setupTest(t)

	w := doJSON(t, r, http.MethodPut, "/vehicles/v3", map[string]interface{}{
		"pricePerDay": 400,
		"isAvailable": false,
	})
	if w.Code != 200 {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var vehicle models.Vehicle
	if err := db.First(&vehicle, "id = ?", "v3").Error; err != nil {
		t.Fatalf("vehicle lookup: %v", err)
	}
	if vehicle.PricePerDay != 400 || vehicle.IsAvailable {
		t.Fatalf("update not applied: %+v", vehicle)
	}
	if vehicle.Make != "Renault" {
		t.Fatalf("untouched field changed: %+v", vehicle)
	}
}

func TestCreateBookingAlwaysPending(t *testing.T) {
	r, db := setupTest(t)

	userID := registerUser(t, r, "amine@example.com", "client", "")

	w := doJSON(t, r, http.MethodPost, "/bookings", map[string]interface{}{
		"userId":     userID,
		"vehicleId":  "v1",
		"agencyId":   "1",
		"startDate":  "2024-01-01",
		"endDate":    "2024-01-04",
		"totalPrice": 3780,
		"status":     "confirmed", // must be ignored
	})
	if w.Code != 201 {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decode(t, w, &resp)
	if resp.Status != "pending" {
		t.Fatalf("expected pending got %q", resp.Status)
	}

	var booking models.Booking
	if err := db.First(&booking, "id = ?", resp.ID).Error; err != nil {
		t.Fatalf("booking lookup: %v", err)
	}
	if booking.Status != models.BookingStatusPending {
		t.Fatalf("stored status should be pending, got %s", booking.Status)
	}
	if booking.TotalPrice != 3780 {
		t.Fatalf("expected recomputed total 3780 got %.2f", booking.TotalPrice)
	}
}

func TestCreateBookingRejectsWrongTotal(t *testing.T) {
	r, _ := setupTest(t)

	userID := registerUser(t, r, "amine@example.com", "client", "")

	w := doJSON(t, r, http.MethodPost, "/bookings", map[string]interface{}{
		"userId":     userID,
		"vehicleId":  "v1",
		"agencyId":   "1",
		"startDate":  "2024-01-01",
		"endDate":    "2024-01-04",
		"totalPrice": 100, // 3 days of a 1200/day car cannot cost 100
	})
	if w.Code != 400 {
		t.Fatalf("expected 400 got %d: %s", w.Code, w.Body.String())
	}
}

func TestMyBookingsNestedObjects(t *testing.T) {
	r, _ := setupTest(t)

	userID := registerUser(t, r, "amine@example.com", "client", "")

	w := doJSON(t, r, http.MethodPost, "/bookings", map[string]interface{}{
		"userId":    userID,
		"vehicleId": "v1",
		"agencyId":  "1",
		"startDate": "2024-01-01",
		"endDate":   "2024-01-04",
	})
	if w.Code != 201 {
		t.Fatalf("create booking: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/bookings/my?userId="+userID, nil)
	if w.Code != 200 {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var bookings []struct {
		Status  string `json:"status"`
		Vehicle struct {
			Make  string `json:"make"`
			Model string `json:"model"`
		} `json:"vehicle"`
		Agency struct {
			Name string `json:"name"`
		} `json:"agency"`
	}
	decode(t, w, &bookings)
	if len(bookings) != 1 {
		t.Fatalf("expected one booking got %d", len(bookings))
	}
	if bookings[0].Vehicle.Make != "Mercedes" || bookings[0].Vehicle.Model != "C-Class" {
		t.Fatalf("nested vehicle missing: %+v", bookings[0])
	}
	if bookings[0].Agency.Name != "Premium Cars" {
		t.Fatalf("nested agency missing: %+v", bookings[0])
	}
}

func TestDeleteVehicleRemovedFromListings(t *testing.T) {
	r, _ := setupTest(t)

	w := doJSON(t, r, http.MethodDelete, "/vehicles/v4", nil)
	if w.Code != 200 {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	for _, path := range []string{"/vehicles", "/agencies/2/vehicles"} {
		w = doJSON(t, r, http.MethodGet, path, nil)
		if w.Code != 200 {
			t.Fatalf("GET %s: %d", path, w.Code)
		}
		var vehicles []struct {
			ID string `json:"id"`
		}
		decode(t, w, &vehicles)
		for _, v := range vehicles {
			if v.ID == "v4" {
				t.Fatalf("v4 still listed in %s", path)
			}
		}
	}
}

func TestBookingStatusTransitions(t *testing.T) {
	r, _ := setupTest(t)

	userID := registerUser(t, r, "amine@example.com", "client", "")

	w := doJSON(t, r, http.MethodPost, "/bookings", map[string]interface{}{
		"userId":    userID,
		"vehicleId": "v2",
		"agencyId":  "1",
		"startDate": "2024-02-01",
		"endDate":   "2024-02-03",
	})
	if w.Code != 201 {
		t.Fatalf("create booking: %d %s", w.Code, w.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	decode(t, w, &created)

	// pending -> completed skips the graph
	w = doJSON(t, r, http.MethodPatch, "/bookings/"+created.ID+"/status", map[string]string{"status": "completed"})
	if w.Code != 400 {
		t.Fatalf("expected 400 for invalid transition, got %d", w.Code)
	}

	// pending -> confirmed is allowed
	w = doJSON(t, r, http.MethodPatch, "/bookings/"+created.ID+"/status", map[string]string{"status": "confirmed"})
	if w.Code != 200 {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
	var booking struct {
		Status string `json:"status"`
	}
	decode(t, w, &booking)
	if booking.Status != "confirmed" {
		t.Fatalf("expected confirmed got %q", booking.Status)
	}
}

func TestAgencyReviewsEmbedReviewerName(t *testing.T) {
	r, _ := setupTest(t)

	userID := registerUser(t, r, "amine@example.com", "client", "")

	w := doJSON(t, r, http.MethodPost, "/agencies/1/reviews", map[string]interface{}{
		"userId":  userID,
		"rating":  5,
		"comment": "Great cars",
	})
	if w.Code != 201 {
		t.Fatalf("create review: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/agencies/1/reviews", nil)
	if w.Code != 200 {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var reviews []struct {
		Rating float64 `json:"rating"`
		User   struct {
			Name string `json:"name"`
		} `json:"user"`
	}
	decode(t, w, &reviews)
	if len(reviews) != 1 {
		t.Fatalf("expected one review got %d", len(reviews))
	}
	if reviews[0].User.Name != "Test User" {
		t.Fatalf("reviewer name missing: %+v", reviews[0])
	}
}

func TestCreateVehicleDefaultsAndLocation(t *testing.T) {
	r, db := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/vehicles", map[string]interface{}{
		"agencyId":    "2",
		"make":        "Peugeot",
		"model":       "208",
		"pricePerDay": 320,
	})
	if w.Code != 201 {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decode(t, w, &resp)
	if resp.Status != "success" {
		t.Fatalf("expected success got %q", resp.Status)
	}

	var vehicle models.Vehicle
	if err := db.First(&vehicle, "id = ?", resp.ID).Error; err != nil {
		t.Fatalf("vehicle lookup: %v", err)
	}
	if vehicle.Year != 2024 || vehicle.Category != "compact" || vehicle.Seats != 5 {
		t.Fatalf("defaults not applied: %+v", vehicle)
	}
	if vehicle.Address != "Casablanca Maarif" {
		t.Fatalf("vehicle should inherit the agency location, got %q", vehicle.Address)
	}
	if !vehicle.IsAvailable {
		t.Fatal("new vehicles should be available")
	}
}
