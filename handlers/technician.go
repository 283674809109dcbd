package handlers

import (
	"net/http"

	"fixel/services/auth"
	"fixel/services/booking"
	"fixel/services/dispatch"
	"fixel/utils"

	"github.com/gin-gonic/gin"
)

// TechnicianHandler exposes the technician-facing offer and assignment
// endpoints.
type TechnicianHandler struct {
	Engine   dispatch.Engine
	Bookings booking.Service
	Accounts *auth.AccountService
}

func NewTechnicianHandler(engine dispatch.Engine, bookings booking.Service, accounts *auth.AccountService) *TechnicianHandler {
	return &TechnicianHandler{Engine: engine, Bookings: bookings, Accounts: accounts}
}

func (h *TechnicianHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Accounts.LoginTechnician(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AcceptAssignment confirms a pending offer. A booking that was already
// confirmed by a competing offer yields a success-shaped response with
// an explanatory message, so clients can retry blindly.
func (h *TechnicianHandler) AcceptAssignment(c *gin.Context) {
	var req struct {
		OfferID string `json:"offer_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	technicianID := c.GetString("technicianID")

	result, err := h.Engine.Accept(c.Request.Context(), req.OfferID, technicianID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if result.AlreadyConfirmed {
		c.JSON(http.StatusOK, gin.H{"message": "Booking was already confirmed by another technician"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assignment confirmed", "assignment": result.Assignment})
}

func (h *TechnicianHandler) RejectAssignment(c *gin.Context) {
	var req struct {
		OfferID string `json:"offer_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	technicianID := c.GetString("technicianID")

	result, err := h.Engine.Reject(c.Request.Context(), req.OfferID, technicianID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TechnicianHandler) ViewAssignedServices(c *gin.Context) {
	technicianID := c.GetString("technicianID")

	details, err := h.Bookings.ListAssignments(c.Request.Context(), technicianID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// UpdateStatus propagates a technician-reported status to the booking
// and assignment records.
func (h *TechnicianHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		AssignmentID string `json:"assignment_id" binding:"required"`
		Status       string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	technicianID := c.GetString("technicianID")

	updated, err := h.Bookings.UpdateStatus(c.Request.Context(), technicianID, req.AssignmentID, req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated", "booking": updated})
}
