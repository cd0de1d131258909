package routes

import (
	"github.com/gin-gonic/gin"

	"rentwheels/internal/controllers"
	"rentwheels/internal/middleware"
)

func BookingRoutes(r *gin.Engine, ctl *controllers.BookingController) {
	bookings := r.Group("/api/v1/bookings")
	bookings.Use(middleware.RequireAuth())
	{
		bookings.POST("/", ctl.Create)
		bookings.GET("/", ctl.List)
		bookings.PUT("/:bookingId", ctl.UpdateStatus)
	}
}
