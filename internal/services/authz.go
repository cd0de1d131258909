package services

import "rentwheels/internal/models"

// Operation enumerates the role-gated actions of the API.
type Operation int

const (
	OpCreateBooking Operation = iota
	OpCancelBooking
	OpReturnBooking
	OpListAllBookings
	OpManageVehicles
	OpListUsers
	OpUpdateUser
	OpDeleteUser
)

// Authorize decides whether a caller may perform op against a resource owned
// by ownerID. Admins may do everything; customers are limited to their own
// bookings and their own profile. ownerID is zero for operations with no
// owned resource.
func Authorize(role string, op Operation, ownerID, callerID uint) error {
	if role == models.RoleAdmin {
		return nil
	}
	if role != models.RoleCustomer {
		return ErrNotAuthorized
	}

	switch op {
	case OpCreateBooking:
		if ownerID != callerID {
			return ErrForbidden
		}
		return nil
	case OpCancelBooking, OpUpdateUser:
		if ownerID != callerID {
			return ErrNotAuthorized
		}
		return nil
	default:
		return ErrNotAuthorized
	}
}
