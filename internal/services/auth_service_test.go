package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentwheels/internal/models"
)

func TestSignUpAndSignIn(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.SignUp(context.Background(), SignUpInput{
		Name:     "Jane Wanjiku",
		Email:    "jane@example.com",
		Password: "hunter2!",
		Phone:    "0700000001",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role, "role defaults to customer")
	assert.NotEqual(t, "hunter2!", user.Password, "password is stored hashed")

	got, err := svc.SignIn(context.Background(), "jane@example.com", "hunter2!")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.SignIn(context.Background(), "jane@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(context.Background(), "nobody@example.com", "hunter2!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpRoleHandling(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	admin, err := svc.SignUp(context.Background(), SignUpInput{
		Name:     "Ops",
		Email:    "ops@example.com",
		Password: "pw",
		Role:     " Admin ",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role, "role is trimmed and lowercased")

	_, err = svc.SignUp(context.Background(), SignUpInput{
		Name:     "Bad",
		Email:    "bad@example.com",
		Password: "pw",
		Role:     "driver",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.SignUp(context.Background(), SignUpInput{Name: "A", Email: "dup@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), SignUpInput{Name: "B", Email: "dup@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}
