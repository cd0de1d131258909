// internal/models/vehicle.go
package models

import "gorm.io/gorm"

const (
	VehicleAvailable = "available"
	VehicleBooked    = "booked"
)

// VehicleTypes are the supported vehicle categories.
var VehicleTypes = []string{"car", "bike", "van", "SUV"}

// ValidVehicleType reports whether t is a supported vehicle type.
func ValidVehicleType(t string) bool {
	for _, vt := range VehicleTypes {
		if t == vt {
			return true
		}
	}
	return false
}

type Vehicle struct {
	gorm.Model
	VehicleName        string  `json:"vehicle_name"`
	Type               string  `json:"type" gorm:"check:type IN ('car','bike','van','SUV')"`
	RegistrationNumber string  `json:"registration_number" gorm:"uniqueIndex"`
	DailyRentPrice     float64 `json:"daily_rent_price" gorm:"check:daily_rent_price > 0"`
	AvailabilityStatus string  `json:"availability_status" gorm:"default:available;check:availability_status IN ('available','booked')"`
}
