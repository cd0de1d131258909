package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rentwheels/internal/models"
	"rentwheels/internal/services"
)

const dateLayout = "2006-01-02"

type BookingController struct {
	Svc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Svc: svc}
}

type createBookingInput struct {
	CustomerID    uint   `json:"customer_id"`
	VehicleID     uint   `json:"vehicle_id" binding:"required"`
	RentStartDate string `json:"rent_start_date" binding:"required"`
	RentEndDate   string `json:"rent_end_date" binding:"required"`
}

func (bc *BookingController) Create(c *gin.Context) {
	callerID, role := caller(c)

	var input createBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, false, "vehicle_id, rent_start_date, and rent_end_date are required", nil)
		return
	}

	start, err := time.Parse(dateLayout, input.RentStartDate)
	if err != nil {
		respond(c, http.StatusBadRequest, false, "rent_start_date must be formatted YYYY-MM-DD", nil)
		return
	}
	end, err := time.Parse(dateLayout, input.RentEndDate)
	if err != nil {
		respond(c, http.StatusBadRequest, false, "rent_end_date must be formatted YYYY-MM-DD", nil)
		return
	}

	booking, err := bc.Svc.CreateBooking(c.Request.Context(), services.CreateBookingInput{
		CustomerID:    input.CustomerID,
		VehicleID:     input.VehicleID,
		RentStartDate: start,
		RentEndDate:   end,
		CallerID:      callerID,
		CallerRole:    role,
	})
	if err != nil {
		fail(c, err, "Failed to create booking")
		return
	}

	respond(c, http.StatusCreated, true, "Booking created successfully", booking)
}

func (bc *BookingController) List(c *gin.Context) {
	callerID, role := caller(c)

	bookings, err := bc.Svc.ListBookings(c.Request.Context(), callerID, role)
	if err != nil {
		fail(c, err, "Failed to retrieve bookings")
		return
	}

	respond(c, http.StatusOK, true, "Bookings retrieved successfully", bookings)
}

func (bc *BookingController) UpdateStatus(c *gin.Context) {
	callerID, role := caller(c)

	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		respond(c, http.StatusBadRequest, false, "Invalid booking ID", nil)
		return
	}

	var body struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !models.ValidBookingStatus(body.Status) {
		respond(c, http.StatusBadRequest, false, "Invalid or missing status in request body", nil)
		return
	}

	booking, err := bc.Svc.UpdateBookingStatus(c.Request.Context(), bookingID, body.Status, role, callerID)
	if err != nil {
		fail(c, err, "Failed to update booking status")
		return
	}

	switch booking.Status {
	case models.BookingCancelled:
		respond(c, http.StatusOK, true, "Booking cancelled successfully", booking)
	case models.BookingReturned:
		respond(c, http.StatusOK, true, "Booking marked as returned. Vehicle is now available", booking)
	default:
		respond(c, http.StatusOK, true, fmt.Sprintf("Booking status updated to %s", booking.Status), booking)
	}
}
