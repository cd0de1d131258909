package services

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rentwheels/internal/models"
)

// UserService covers user record management. Deletion is guarded by the
// referential rule: a user owning an active booking cannot be removed.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// isUniqueViolation matches unique-constraint failures from postgres (stable
// code 23505) and from gorm's translated error, which the sqlite test driver
// produces.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (s *UserService) ListUsers(ctx context.Context, callerRole string, callerID uint) ([]models.User, error) {
	if err := Authorize(callerRole, OpListUsers, 0, callerID); err != nil {
		return nil, err
	}
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserInput is a sparse update: empty fields are left unchanged.
type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
}

func (s *UserService) UpdateUser(ctx context.Context, userID uint, in UpdateUserInput, callerRole string, callerID uint) (*models.User, error) {
	if err := Authorize(callerRole, OpUpdateUser, userID, callerID); err != nil {
		return nil, err
	}
	// Role stays admin-mutable only.
	if in.Role != "" {
		if callerRole != models.RoleAdmin {
			return nil, ErrNotAuthorized
		}
		if !models.ValidRole(in.Role) {
			return nil, ErrInvalidRole
		}
	}

	updates := map[string]interface{}{}
	if in.Name != "" {
		updates["name"] = in.Name
	}
	if in.Email != "" {
		updates["email"] = in.Email
	}
	if in.Phone != "" {
		updates["phone"] = in.Phone
	}
	if in.Role != "" {
		updates["role"] = in.Role
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hash)
	}

	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateEmail
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID uint, callerRole string, callerID uint) (*models.User, error) {
	if err := Authorize(callerRole, OpDeleteUser, 0, callerID); err != nil {
		return nil, err
	}

	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		var n int64
		if err := tx.Model(&models.Booking{}).
			Where("customer_id = ? AND status = ?", userID, models.BookingActive).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrUserHasActiveBookings
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
