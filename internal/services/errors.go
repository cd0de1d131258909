package services

import "net/http"

// DomainError is a business-rule failure with a stable code and the HTTP
// status the API surfaces it as. Controllers match with errors.As; anything
// else becomes a generic 500.
type DomainError struct {
	Code    string
	Status  int
	Message string
}

func (e *DomainError) Error() string {
	return e.Code
}

var (
	ErrVehicleNotFound     = &DomainError{"VEHICLE_NOT_FOUND", http.StatusNotFound, "Vehicle not found"}
	ErrBookingNotFound     = &DomainError{"BOOKING_NOT_FOUND", http.StatusNotFound, "Booking not found"}
	ErrUserNotFound        = &DomainError{"USER_NOT_FOUND", http.StatusNotFound, "User not found"}
	ErrVehicleNotAvailable = &DomainError{"VEHICLE_NOT_AVAILABLE", http.StatusConflict, "Vehicle is not available for booking"}
	ErrInvalidDateRange    = &DomainError{"INVALID_DATE_RANGE", http.StatusBadRequest, "rent_end_date must be after rent_start_date"}
	ErrInvalidDailyPrice   = &DomainError{"INVALID_DAILY_PRICE", http.StatusBadRequest, "Vehicle has an invalid daily rent price"}

	ErrForbidden     = &DomainError{"FORBIDDEN", http.StatusForbidden, "Customers can only create bookings for themselves"}
	ErrNotAuthorized = &DomainError{"NOT_AUTHORIZED", http.StatusForbidden, "Not authorized"}

	ErrCannotCancelAfterStart  = &DomainError{"CANNOT_CANCEL_AFTER_START", http.StatusBadRequest, "Cannot cancel booking after start date"}
	ErrOnlyActiveCanBeReturned = &DomainError{"ONLY_ACTIVE_CAN_BE_RETURNED", http.StatusBadRequest, "Only active bookings can be marked as returned"}
	ErrBookingAlreadyClosed    = &DomainError{"BOOKING_ALREADY_CLOSED", http.StatusBadRequest, "Booking is already cancelled or returned"}

	ErrUserHasActiveBookings    = &DomainError{"USER_HAS_ACTIVE_BOOKINGS", http.StatusBadRequest, "Cannot delete user with active bookings"}
	ErrVehicleHasActiveBookings = &DomainError{"VEHICLE_HAS_ACTIVE_BOOKINGS", http.StatusBadRequest, "Vehicle cannot be deleted while active bookings exist"}

	ErrDuplicateEmail        = &DomainError{"DUPLICATE_EMAIL", http.StatusConflict, "Email already exists"}
	ErrDuplicateRegistration = &DomainError{"DUPLICATE_REGISTRATION", http.StatusConflict, "Vehicle with this registration number already exists"}

	ErrInvalidCredentials = &DomainError{"INVALID_CREDENTIALS", http.StatusUnauthorized, "Invalid email or password"}

	ErrInvalidRole        = &DomainError{"INVALID_ROLE", http.StatusBadRequest, "Invalid role"}
	ErrInvalidVehicleData = &DomainError{"INVALID_VEHICLE_DATA", http.StatusBadRequest, "Invalid vehicle data provided"}
)
