package handlers

import (
	"net/http"
	"time"

	"fixel/services/booking"
	"fixel/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the user-facing booking lifecycle endpoints.
type BookingHandler struct {
	Bookings booking.Service
	Logger   *zap.Logger
}

func NewBookingHandler(bookings booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Logger: logger}
}

// BookService creates a booking and kicks off dispatch. The offer (or
// its absence) rides along in the response; booking creation itself
// succeeds either way.
func (h *BookingHandler) BookService(c *gin.Context) {
	var req struct {
		ServiceID     string    `json:"service_id" binding:"required"`
		ScheduledAt   time.Time `json:"scheduled_at" binding:"required"`
		SubServiceIDs []string  `json:"sub_service_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	userID := c.GetString("userID")

	result, err := h.Bookings.Create(c.Request.Context(), userID, req.ServiceID, req.ScheduledAt, req.SubServiceIDs)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var req struct {
		BookingID string `json:"booking_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	userID := c.GetString("userID")

	result, err := h.Bookings.Cancel(c.Request.Context(), userID, req.BookingID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": result.Message, "booking": result.Booking})
}

func (h *BookingHandler) ViewBookedServices(c *gin.Context) {
	userID := c.GetString("userID")

	details, err := h.Bookings.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *BookingHandler) ViewBooking(c *gin.Context) {
	var req struct {
		BookingID string `json:"booking_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	userID := c.GetString("userID")

	detail, err := h.Bookings.GetByID(c.Request.Context(), userID, req.BookingID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
