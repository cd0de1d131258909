package routes

import (
	"net/http"

	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rentwheels/internal/controllers"
	"rentwheels/internal/services"
)

// SetupRouter wires services and controllers around the injected DB handle
// and registers every route group under /api/v1.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Request logging middleware
	r.Use(ginlogger.SetLogger())

	authCtl := controllers.NewAuthController(services.NewAuthService(db))
	userCtl := controllers.NewUserController(services.NewUserService(db))
	vehicleCtl := controllers.NewVehicleController(services.NewVehicleService(db))
	bookingCtl := controllers.NewBookingController(services.NewBookingService(db))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Vehicle Rental System API is running")
	})

	AuthRoutes(r, authCtl)
	UserRoutes(r, userCtl)
	VehicleRoutes(r, vehicleCtl)
	BookingRoutes(r, bookingCtl)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Endpoint not found"})
	})

	return r
}
