package models

import (
	"time"

	"gorm.io/gorm"
)

// BookingStatus is persisted as a string. "active" is the only non-terminal
// state; "cancelled" and "returned" are terminal.
type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingCancelled BookingStatus = "cancelled"
	BookingReturned  BookingStatus = "returned"
)

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s BookingStatus) bool {
	return s == BookingActive || s == BookingCancelled || s == BookingReturned
}

// Terminal reports whether s allows no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled || s == BookingReturned
}

type Booking struct {
	gorm.Model
	CustomerID    uint          `json:"customer_id" gorm:"index;not null"`
	VehicleID     uint          `json:"vehicle_id" gorm:"index;not null"`
	RentStartDate time.Time     `json:"rent_start_date"`
	RentEndDate   time.Time     `json:"rent_end_date"`
	TotalPrice    float64       `json:"total_price"`
	Status        BookingStatus `json:"status" gorm:"type:varchar(16);index;default:active;check:status IN ('active','cancelled','returned')"`
}
