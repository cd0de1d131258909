package routes

import (
	"github.com/gin-gonic/gin"

	"rentwheels/internal/controllers"
	"rentwheels/internal/middleware"
)

func UserRoutes(r *gin.Engine, ctl *controllers.UserController) {
	users := r.Group("/api/v1/users")
	users.Use(middleware.RequireAuth())
	{
		users.GET("/", ctl.List)
		users.PUT("/:userId", ctl.Update)
		users.DELETE("/:userId", ctl.Delete)
	}
}
