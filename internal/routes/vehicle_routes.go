package routes

import (
	"github.com/gin-gonic/gin"

	"rentwheels/internal/controllers"
	"rentwheels/internal/middleware"
)

func VehicleRoutes(r *gin.Engine, ctl *controllers.VehicleController) {
	vehicles := r.Group("/api/v1/vehicles")
	vehicles.Use(middleware.RequireAuth())
	{
		vehicles.GET("/", ctl.List)
		vehicles.POST("/", ctl.Create)
		vehicles.GET("/:vehicleId", ctl.Get)
		vehicles.PUT("/:vehicleId", ctl.Update)
		vehicles.DELETE("/:vehicleId", ctl.Delete)
	}
}
