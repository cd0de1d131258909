package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rentwheels/internal/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return SetupRouter(db)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 && w.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

// signup registers a user through the API and returns its token and id.
func signup(t *testing.T, r *gin.Engine, name, email, role string) (string, uint) {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var data struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"ID"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token, data.User.ID
}

func TestHealthAndNoRoute(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Vehicle Rental System API is running", w.Body.String())

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Endpoint not found", env.Message)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := setupTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/bookings/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Missing or invalid Authorization header", env.Message)

	w, env = doJSON(t, r, http.MethodGet, "/api/v1/bookings/", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", env.Message)
}

func TestSigninFlow(t *testing.T) {
	r := setupTestRouter(t)
	signup(t, r, "Jane", "jane@example.com", "")

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/signin", "", gin.H{
		"email":    "jane@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "User logged in successfully", env.Message)

	w, env = doJSON(t, r, http.MethodPost, "/api/v1/auth/signin", "", gin.H{
		"email":    "jane@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", env.Message)
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	r := setupTestRouter(t)
	adminToken, _ := signup(t, r, "Ops", "ops@example.com", "admin")
	custToken, custID := signup(t, r, "Jane", "jane@example.com", "")

	// Vehicle management stays admin-only.
	w, env := doJSON(t, r, http.MethodPost, "/api/v1/vehicles/", custToken, gin.H{
		"vehicle_name":        "Toyota Axio",
		"type":                "car",
		"registration_number": "KDA 001A",
		"daily_rent_price":    100,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = doJSON(t, r, http.MethodPost, "/api/v1/vehicles/", adminToken, gin.H{
		"vehicle_name":        "Toyota Axio",
		"type":                "car",
		"registration_number": "KDA 001A",
		"daily_rent_price":    100,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Vehicle added successfully", env.Message)
	var vehicle struct {
		ID uint `json:"ID"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &vehicle))

	// Booking far in the future so the cancel window stays open.
	w, env = doJSON(t, r, http.MethodPost, "/api/v1/bookings/", custToken, gin.H{
		"vehicle_id":      vehicle.ID,
		"rent_start_date": "2030-06-01",
		"rent_end_date":   "2030-06-04",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Booking created successfully", env.Message)
	var booking struct {
		ID         uint    `json:"ID"`
		CustomerID uint    `json:"customer_id"`
		TotalPrice float64 `json:"total_price"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.Equal(t, custID, booking.CustomerID)
	assert.Equal(t, float64(300), booking.TotalPrice)

	// Same vehicle again: conflict.
	w, env = doJSON(t, r, http.MethodPost, "/api/v1/bookings/", custToken, gin.H{
		"vehicle_id":      vehicle.ID,
		"rent_start_date": "2030-07-01",
		"rent_end_date":   "2030-07-04",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Vehicle is not available for booking", env.Message)

	// Malformed date is rejected before the engine runs.
	w, env = doJSON(t, r, http.MethodPost, "/api/v1/bookings/", custToken, gin.H{
		"vehicle_id":      vehicle.ID,
		"rent_start_date": "01/06/2030",
		"rent_end_date":   "2030-06-04",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "rent_start_date must be formatted YYYY-MM-DD", env.Message)

	w, env = doJSON(t, r, http.MethodGet, "/api/v1/bookings/", custToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var rows []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	assert.Len(t, rows, 1)

	w, env = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/v1/bookings/%d", booking.ID), custToken, gin.H{
		"status": "cancelled",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Booking cancelled successfully", env.Message)

	// Cancellation frees the vehicle for the next booking.
	w, env = doJSON(t, r, http.MethodPost, "/api/v1/bookings/", custToken, gin.H{
		"vehicle_id":      vehicle.ID,
		"rent_start_date": "2030-07-01",
		"rent_end_date":   "2030-07-04",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestUpdateBookingStatusValidation(t *testing.T) {
	r := setupTestRouter(t)
	token, _ := signup(t, r, "Jane", "jane@example.com", "")

	w, env := doJSON(t, r, http.MethodPut, "/api/v1/bookings/abc", token, gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid booking ID", env.Message)

	w, env = doJSON(t, r, http.MethodPut, "/api/v1/bookings/1", token, gin.H{"status": "lost"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid or missing status in request body", env.Message)

	w, env = doJSON(t, r, http.MethodPut, "/api/v1/bookings/99", token, gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", env.Message)
}

func TestUserRoutesAuthorization(t *testing.T) {
	r := setupTestRouter(t)
	adminToken, _ := signup(t, r, "Ops", "ops@example.com", "admin")
	custToken, custID := signup(t, r, "Jane", "jane@example.com", "")

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/users/", custToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Not authorized", env.Message)

	w, env = doJSON(t, r, http.MethodGet, "/api/v1/users/", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var users []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &users))
	assert.Len(t, users, 2)

	w, env = doJSON(t, r, http.MethodPut, "/api/v1/users/1", custToken, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "At least one field must be provided for update", env.Message)

	w, env = doJSON(t, r, http.MethodDelete, "/api/v1/users/2", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "User deleted successfully", env.Message)
	var deleted struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &deleted))
	assert.Equal(t, custID, deleted.ID)
}
