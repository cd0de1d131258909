package services

import (
	"time"

	"rentwheels/internal/models"
)

// StatusChange carries everything the booking state machine needs to decide
// a transition. All inputs are plain values so the decision can be tested
// without a database.
type StatusChange struct {
	Current    models.BookingStatus
	Requested  models.BookingStatus
	CallerRole string
	OwnerID    uint
	CallerID   uint
	Today      time.Time
	RentStart  time.Time
	RentEnd    time.Time
}

// ResolveStatus maps (current status, caller, requested status) to the status
// the booking should end up in, or a domain error. Terminal statuses never
// transition again; an overdue active booking resolves to returned no matter
// what was requested. Callers that receive a result equal to Current must
// treat the update as a no-op.
func ResolveStatus(in StatusChange) (models.BookingStatus, error) {
	next := in.Current

	switch in.CallerRole {
	case models.RoleCustomer:
		if in.OwnerID != in.CallerID {
			return "", ErrNotAuthorized
		}
		switch in.Requested {
		case models.BookingCancelled:
			if in.Current == models.BookingCancelled {
				return in.Current, nil
			}
			if in.Current.Terminal() {
				return "", ErrBookingAlreadyClosed
			}
			if !in.Today.Before(in.RentStart) {
				return "", ErrCannotCancelAfterStart
			}
			next = models.BookingCancelled
		case models.BookingActive:
			// Requesting the non-terminal state changes nothing.
		default:
			return "", ErrNotAuthorized
		}

	case models.RoleAdmin:
		switch in.Requested {
		case models.BookingReturned:
			if in.Current != models.BookingActive {
				return "", ErrOnlyActiveCanBeReturned
			}
			next = models.BookingReturned
		case models.BookingActive, models.BookingCancelled:
			if in.Current.Terminal() && in.Requested != in.Current {
				return "", ErrBookingAlreadyClosed
			}
			next = in.Requested
		default:
			return "", ErrNotAuthorized
		}

	default:
		return "", ErrNotAuthorized
	}

	// System auto-return: an active booking past its end date converges on
	// returned regardless of the requested status.
	if in.Current == models.BookingActive && in.Today.After(in.RentEnd) {
		next = models.BookingReturned
	}
	return next, nil
}

// RentalDays returns the rental length in whole days, rounding any partial
// day up. A non-positive range yields 0.
func RentalDays(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// OverdueBookings picks the bookings due for auto-return: still active with
// a rent end date strictly before today.
func OverdueBookings(today time.Time, bookings []models.Booking) []models.Booking {
	var due []models.Booking
	for _, b := range bookings {
		if b.Status == models.BookingActive && b.RentEndDate.Before(today) {
			due = append(due, b)
		}
	}
	return due
}

// dateOnly truncates t to midnight UTC so date comparisons ignore the
// time-of-day component.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
