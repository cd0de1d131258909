package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentwheels/internal/services"
)

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

func (uc *UserController) List(c *gin.Context) {
	callerID, role := caller(c)

	users, err := uc.Svc.ListUsers(c.Request.Context(), role, callerID)
	if err != nil {
		fail(c, err, "Failed to retrieve users")
		return
	}

	respond(c, http.StatusOK, true, "Users retrieved successfully", users)
}

type updateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

func (uc *UserController) Update(c *gin.Context) {
	callerID, role := caller(c)

	userID, ok := pathID(c, "userId")
	if !ok {
		respond(c, http.StatusBadRequest, false, "Invalid user ID", nil)
		return
	}

	var input updateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, false, "Invalid update payload", nil)
		return
	}
	if input.Name == "" && input.Email == "" && input.Password == "" && input.Phone == "" && input.Role == "" {
		respond(c, http.StatusBadRequest, false, "At least one field must be provided for update", nil)
		return
	}

	user, err := uc.Svc.UpdateUser(c.Request.Context(), userID, services.UpdateUserInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Phone:    input.Phone,
		Role:     input.Role,
	}, role, callerID)
	if err != nil {
		fail(c, err, "Failed to update user")
		return
	}

	respond(c, http.StatusOK, true, "User updated successfully", user)
}

func (uc *UserController) Delete(c *gin.Context) {
	callerID, role := caller(c)

	userID, ok := pathID(c, "userId")
	if !ok {
		respond(c, http.StatusBadRequest, false, "Invalid user ID", nil)
		return
	}

	user, err := uc.Svc.DeleteUser(c.Request.Context(), userID, role, callerID)
	if err != nil {
		fail(c, err, "Failed to delete user")
		return
	}

	respond(c, http.StatusOK, true, "User deleted successfully", gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}
