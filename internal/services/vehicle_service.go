package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rentwheels/internal/models"
)

// VehicleService covers vehicle record management. It never flips
// availability in response to bookings; that belongs to the booking engine.
type VehicleService struct {
	db *gorm.DB
}

func NewVehicleService(db *gorm.DB) *VehicleService {
	return &VehicleService{db: db}
}

func (s *VehicleService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (s *VehicleService) GetVehicle(ctx context.Context, vehicleID uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.WithContext(ctx).First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

type CreateVehicleInput struct {
	VehicleName        string
	Type               string
	RegistrationNumber string
	DailyRentPrice     float64
	AvailabilityStatus string
}

func (s *VehicleService) CreateVehicle(ctx context.Context, in CreateVehicleInput, callerRole string, callerID uint) (*models.Vehicle, error) {
	if err := Authorize(callerRole, OpManageVehicles, 0, callerID); err != nil {
		return nil, err
	}
	if !models.ValidVehicleType(in.Type) {
		return nil, ErrInvalidVehicleData
	}
	if in.DailyRentPrice <= 0 {
		return nil, ErrInvalidDailyPrice
	}
	// A new vehicle has no bookings, so "booked" is never a valid starting
	// state; only the booking engine sets it.
	status := in.AvailabilityStatus
	if status == "" {
		status = models.VehicleAvailable
	}
	if status != models.VehicleAvailable {
		return nil, ErrInvalidVehicleData
	}

	vehicle := models.Vehicle{
		VehicleName:        in.VehicleName,
		Type:               in.Type,
		RegistrationNumber: in.RegistrationNumber,
		DailyRentPrice:     in.DailyRentPrice,
		AvailabilityStatus: status,
	}
	if err := s.db.WithContext(ctx).Create(&vehicle).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRegistration
		}
		return nil, err
	}
	return &vehicle, nil
}

// UpdateVehicleInput is a sparse update: zero-valued fields are left alone.
type UpdateVehicleInput struct {
	VehicleName        string
	Type               string
	DailyRentPrice     float64
	AvailabilityStatus string
}

func (s *VehicleService) UpdateVehicle(ctx context.Context, vehicleID uint, in UpdateVehicleInput, callerRole string, callerID uint) (*models.Vehicle, error) {
	if err := Authorize(callerRole, OpManageVehicles, 0, callerID); err != nil {
		return nil, err
	}
	if in.Type != "" && !models.ValidVehicleType(in.Type) {
		return nil, ErrInvalidVehicleData
	}
	// The record manager may only release a stuck flag back to available;
	// marking a vehicle booked is the booking engine's job.
	if in.AvailabilityStatus != "" && in.AvailabilityStatus != models.VehicleAvailable {
		return nil, ErrInvalidVehicleData
	}

	var vehicle models.Vehicle
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVehicleNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if in.VehicleName != "" {
			updates["vehicle_name"] = in.VehicleName
		}
		if in.Type != "" {
			updates["type"] = in.Type
		}
		if in.DailyRentPrice != 0 {
			if in.DailyRentPrice < 0 {
				return ErrInvalidDailyPrice
			}
			updates["daily_rent_price"] = in.DailyRentPrice
		}
		if in.AvailabilityStatus != "" && in.AvailabilityStatus != vehicle.AvailabilityStatus {
			// Availability is owned by the booking engine while an active
			// booking exists; the record manager may only correct it when no
			// booking holds the vehicle.
			var n int64
			if err := tx.Model(&models.Booking{}).
				Where("vehicle_id = ? AND status = ?", vehicleID, models.BookingActive).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return ErrVehicleHasActiveBookings
			}
			updates["availability_status"] = in.AvailabilityStatus
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&vehicle).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (s *VehicleService) DeleteVehicle(ctx context.Context, vehicleID uint, callerRole string, callerID uint) error {
	if err := Authorize(callerRole, OpManageVehicles, 0, callerID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVehicleNotFound
			}
			return err
		}
		var n int64
		if err := tx.Model(&models.Booking{}).
			Where("vehicle_id = ? AND status = ?", vehicleID, models.BookingActive).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrVehicleHasActiveBookings
		}
		return tx.Delete(&vehicle).Error
	})
}
