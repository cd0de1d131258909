package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentwheels/internal/middleware"
	"rentwheels/internal/services"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

type signupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

func (ac *AuthController) Signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	user, err := ac.Svc.SignUp(c.Request.Context(), services.SignUpInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Phone:    input.Phone,
		Role:     input.Role,
	})
	if err != nil {
		fail(c, err, "Failed to register user")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		fail(c, err, "could not generate token")
		return
	}

	respond(c, http.StatusCreated, true, "User registered successfully", gin.H{
		"token": token,
		"user":  user,
	})
}

func (ac *AuthController) Signin(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respond(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	user, err := ac.Svc.SignIn(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		fail(c, err, "Failed to sign in")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		fail(c, err, "could not generate token")
		return
	}

	respond(c, http.StatusOK, true, "User logged in successfully", gin.H{
		"token": token,
		"user":  user,
	})
}
