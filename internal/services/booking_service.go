package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentwheels/internal/models"
)

// BookingService owns the booking lifecycle: it is the only writer of
// booking.status and the only component that flips vehicle availability in
// response to booking state. Every operation runs in a single transaction
// with the affected vehicle (and booking, for updates) row locked.
type BookingService struct {
	db *gorm.DB

	// now is replaceable in tests to pin "today".
	now func() time.Time
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db, now: time.Now}
}

type CreateBookingInput struct {
	CustomerID    uint
	VehicleID     uint
	RentStartDate time.Time
	RentEndDate   time.Time
	CallerID      uint
	CallerRole    string
}

// BookingRow is a booking enriched with customer and vehicle attributes for
// display. It is a read-side join, not a stored denormalization.
type BookingRow struct {
	ID                 uint                 `json:"id"`
	CustomerID         uint                 `json:"customer_id"`
	VehicleID          uint                 `json:"vehicle_id"`
	RentStartDate      time.Time            `json:"rent_start_date"`
	RentEndDate        time.Time            `json:"rent_end_date"`
	TotalPrice         float64              `json:"total_price"`
	Status             models.BookingStatus `json:"status"`
	CustomerName       string               `json:"customer_name"`
	CustomerEmail      string               `json:"customer_email"`
	VehicleName        string               `json:"vehicle_name"`
	VehicleType        string               `json:"vehicle_type"`
	RegistrationNumber string               `json:"registration_number"`
	DailyRentPrice     float64              `json:"daily_rent_price"`
}

// forUpdate adds a row-level exclusive lock to the query. SQLite, which backs
// the test suite, has no SELECT ... FOR UPDATE; its single-writer model
// already serializes there.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// CreateBooking reserves a vehicle for a date range. The vehicle row is
// locked for the whole transaction, so concurrent attempts on the same
// vehicle serialize and the loser observes availability_status = booked.
// Booking insert and vehicle flip commit atomically.
func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	customerID := in.CustomerID
	if customerID == 0 {
		customerID = in.CallerID
	}
	if err := Authorize(in.CallerRole, OpCreateBooking, customerID, in.CallerID); err != nil {
		return nil, err
	}

	var booking models.Booking
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := forUpdate(tx).First(&vehicle, "id = ?", in.VehicleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVehicleNotFound
			}
			return err
		}
		if vehicle.AvailabilityStatus != models.VehicleAvailable {
			return ErrVehicleNotAvailable
		}

		days := RentalDays(in.RentStartDate, in.RentEndDate)
		if days <= 0 {
			return ErrInvalidDateRange
		}
		if vehicle.DailyRentPrice <= 0 {
			return ErrInvalidDailyPrice
		}

		var n int64
		if err := tx.Model(&models.User{}).Where("id = ?", customerID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrUserNotFound
		}

		booking = models.Booking{
			CustomerID:    customerID,
			VehicleID:     vehicle.ID,
			RentStartDate: in.RentStartDate,
			RentEndDate:   in.RentEndDate,
			TotalPrice:    vehicle.DailyRentPrice * float64(days),
			Status:        models.BookingActive,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return tx.Model(&models.Vehicle{}).Where("id = ?", vehicle.ID).
			Update("availability_status", models.VehicleBooked).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListBookings returns all bookings for admins, or the caller's own for
// customers, newest rental first. Before reading it reconciles overdue
// rentals in the same transaction: active bookings whose end date has passed
// become returned and their vehicles become available. This lazy batch is
// the only auto-return path; there is no background scheduler.
func (s *BookingService) ListBookings(ctx context.Context, callerID uint, callerRole string) ([]BookingRow, error) {
	today := dateOnly(s.now())

	var rows []BookingRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var active []models.Booking
		if err := tx.Where("status = ?", models.BookingActive).Find(&active).Error; err != nil {
			return err
		}
		if due := OverdueBookings(today, active); len(due) > 0 {
			if err := reconcileOverdue(tx, due); err != nil {
				return err
			}
		}

		q := tx.Model(&models.Booking{}).
			Select(`bookings.id, bookings.customer_id, bookings.vehicle_id,
				bookings.rent_start_date, bookings.rent_end_date, bookings.total_price, bookings.status,
				users.name AS customer_name, users.email AS customer_email,
				vehicles.vehicle_name, vehicles.type AS vehicle_type,
				vehicles.registration_number, vehicles.daily_rent_price`).
			Joins("JOIN users ON users.id = bookings.customer_id").
			Joins("JOIN vehicles ON vehicles.id = bookings.vehicle_id")
		if callerRole != models.RoleAdmin {
			q = q.Where("bookings.customer_id = ?", callerID)
		}
		return q.Order("bookings.rent_start_date DESC").Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// reconcileOverdue transitions the given bookings to returned and frees their
// vehicles. Every booking update is guarded on status = active, and a vehicle
// is freed only when its booking's guarded update matched a row. A booking
// that a concurrent transaction already closed matches zero rows; its vehicle
// may carry a fresh active booking by now and must stay untouched.
func reconcileOverdue(tx *gorm.DB, due []models.Booking) error {
	vehicleIDs := make([]uint, 0, len(due))
	for _, b := range due {
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", b.ID, models.BookingActive).
			Update("status", models.BookingReturned)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			vehicleIDs = append(vehicleIDs, b.VehicleID)
		}
	}
	if len(vehicleIDs) == 0 {
		return nil
	}
	return tx.Model(&models.Vehicle{}).Where("id IN ?", vehicleIDs).
		Update("availability_status", models.VehicleAvailable).Error
}

// UpdateBookingStatus applies the booking state machine under booking and
// vehicle row locks. When the resolved status equals the current one nothing
// is written and the unchanged record is returned. Any transition into a
// terminal status frees the vehicle in the same transaction.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, bookingID uint, requested models.BookingStatus, callerRole string, callerID uint) (*models.Booking, error) {
	today := dateOnly(s.now())

	var booking models.Booking
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).First(&booking, "id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		// Lock the vehicle too so a concurrent CreateBooking cannot
		// interleave with the availability flip. A vehicle deleted after its
		// bookings closed has nothing left to flip.
		var vehicle models.Vehicle
		vehicleFound := true
		if err := forUpdate(tx).First(&vehicle, "id = ?", booking.VehicleID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			vehicleFound = false
		}

		next, err := ResolveStatus(StatusChange{
			Current:    booking.Status,
			Requested:  requested,
			CallerRole: callerRole,
			OwnerID:    booking.CustomerID,
			CallerID:   callerID,
			Today:      today,
			RentStart:  dateOnly(booking.RentStartDate),
			RentEnd:    dateOnly(booking.RentEndDate),
		})
		if err != nil {
			return err
		}
		if next == booking.Status {
			return nil
		}

		if err := tx.Model(&booking).Update("status", next).Error; err != nil {
			return err
		}
		if next.Terminal() && vehicleFound {
			if err := tx.Model(&models.Vehicle{}).Where("id = ?", vehicle.ID).
				Update("availability_status", models.VehicleAvailable).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
