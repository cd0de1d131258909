package routes

import (
	"github.com/gin-gonic/gin"

	"rentwheels/internal/controllers"
)

func AuthRoutes(r *gin.Engine, ctl *controllers.AuthController) {
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/signup", ctl.Signup)
		auth.POST("/signin", ctl.Signin)
	}
}
