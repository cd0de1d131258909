package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentwheels/internal/services"
)

type VehicleController struct {
	Svc *services.VehicleService
}

func NewVehicleController(svc *services.VehicleService) *VehicleController {
	return &VehicleController{Svc: svc}
}

func (vc *VehicleController) List(c *gin.Context) {
	vehicles, err := vc.Svc.ListVehicles(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to retrieve vehicles")
		return
	}

	respond(c, http.StatusOK, true, "Vehicles retrieved successfully", vehicles)
}

func (vc *VehicleController) Get(c *gin.Context) {
	vehicleID, ok := pathID(c, "vehicleId")
	if !ok {
		respond(c, http.StatusBadRequest, false, "Invalid vehicle ID", nil)
		return
	}

	vehicle, err := vc.Svc.GetVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		fail(c, err, "Failed to retrieve vehicle")
		return
	}

	respond(c, http.StatusOK, true, "Vehicle retrieved successfully", vehicle)
}

type createVehicleInput struct {
	VehicleName        string  `json:"vehicle_name" binding:"required"`
	Type               string  `json:"type" binding:"required"`
	RegistrationNumber string  `json:"registration_number" binding:"required"`
	DailyRentPrice     float64 `json:"daily_rent_price" binding:"required"`
	AvailabilityStatus string  `json:"availability_status"`
}

func (vc *VehicleController) Create(c *gin.Context) {
	callerID, role := caller(c)

	var input createVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, false, "All fields are required", nil)
		return
	}

	vehicle, err := vc.Svc.CreateVehicle(c.Request.Context(), services.CreateVehicleInput{
		VehicleName:        input.VehicleName,
		Type:               input.Type,
		RegistrationNumber: input.RegistrationNumber,
		DailyRentPrice:     input.DailyRentPrice,
		AvailabilityStatus: input.AvailabilityStatus,
	}, role, callerID)
	if err != nil {
		fail(c, err, "Failed to add vehicle")
		return
	}

	respond(c, http.StatusCreated, true, "Vehicle added successfully", vehicle)
}

type updateVehicleInput struct {
	VehicleName        string  `json:"vehicle_name"`
	Type               string  `json:"type"`
	DailyRentPrice     float64 `json:"daily_rent_price"`
	AvailabilityStatus string  `json:"availability_status"`
}

func (vc *VehicleController) Update(c *gin.Context) {
	callerID, role := caller(c)

	vehicleID, ok := pathID(c, "vehicleId")
	if !ok {
		respond(c, http.StatusBadRequest, false, "Invalid vehicle ID", nil)
		return
	}

	var input updateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, false, "Invalid update payload", nil)
		return
	}
	if input.VehicleName == "" && input.Type == "" && input.DailyRentPrice == 0 && input.AvailabilityStatus == "" {
		respond(c, http.StatusBadRequest, false, "At least one field must be provided for update", nil)
		return
	}

	vehicle, err := vc.Svc.UpdateVehicle(c.Request.Context(), vehicleID, services.UpdateVehicleInput{
		VehicleName:        input.VehicleName,
		Type:               input.Type,
		DailyRentPrice:     input.DailyRentPrice,
		AvailabilityStatus: input.AvailabilityStatus,
	}, role, callerID)
	if err != nil {
		fail(c, err, "Failed to update vehicle")
		return
	}

	respond(c, http.StatusOK, true, "Vehicle updated successfully", vehicle)
}

func (vc *VehicleController) Delete(c *gin.Context) {
	callerID, role := caller(c)

	vehicleID, ok := pathID(c, "vehicleId")
	if !ok {
		respond(c, http.StatusBadRequest, false, "Invalid vehicle ID", nil)
		return
	}

	if err := vc.Svc.DeleteVehicle(c.Request.Context(), vehicleID, role, callerID); err != nil {
		fail(c, err, "Failed to delete vehicle")
		return
	}

	respond(c, http.StatusOK, true, "Vehicle deleted successfully", nil)
}
