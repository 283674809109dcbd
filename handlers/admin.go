package handlers

import (
	"net/http"

	"fixel/database/repository"
	"fixel/models"
	"fixel/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminHandler exposes catalogue and technician CRUD for operators.
type AdminHandler struct {
	Services    repository.ServiceRepository
	Technicians repository.TechnicianRepository
}

func NewAdminHandler(services repository.ServiceRepository, technicians repository.TechnicianRepository) *AdminHandler {
	return &AdminHandler{Services: services, Technicians: technicians}
}

func (h *AdminHandler) CreateService(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		Description  string `json:"description"`
		Price        int64  `json:"price" binding:"required"`
		ProviderRole string `json:"provider_role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc, err := h.Services.Insert(c.Request.Context(), models.Service{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ProviderRole: req.ProviderRole,
	})
	if err != nil {
		utils.RespondError(c, &utils.DependencyError{Op: "createService", Err: err})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *AdminHandler) UpdateService(c *gin.Context) {
	var req struct {
		ID      string                 `json:"id" binding:"required"`
		Updates map[string]interface{} `json:"updates" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc, err := h.Services.Update(c.Request.Context(), req.ID, req.Updates)
	if err != nil {
		utils.RespondError(c, &utils.DependencyError{Op: "updateService", Err: err})
		return
	}
	if svc == nil {
		utils.RespondError(c, &utils.NotFoundError{Resource: "service"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *AdminHandler) DeleteService(c *gin.Context) {
	var req struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Services.Delete(c.Request.Context(), req.ID); err != nil {
		utils.RespondError(c, &utils.NotFoundError{Resource: "service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

func (h *AdminHandler) CreateSubService(c *gin.Context) {
	var req struct {
		ServiceID   string `json:"service_id" binding:"required"`
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Price       int64  `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	parent, err := h.Services.GetByID(c.Request.Context(), req.ServiceID)
	if err != nil {
		utils.RespondError(c, &utils.DependencyError{Op: "createSubService", Err: err})
		return
	}
	if parent == nil {
		utils.RespondError(c, &utils.NotFoundError{Resource: "service"})
		return
	}

	sub, err := h.Services.InsertSubService(c.Request.Context(), models.SubService{
		ServiceID:   req.ServiceID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		utils.RespondError(c, &utils.DependencyError{Op: "createSubService", Err: err})
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *AdminHandler) DeleteSubService(c *gin.Context) {
	var req struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Services.DeleteSubService(c.Request.Context(), req.ID); err != nil {
		utils.RespondError(c, &utils.NotFoundError{Resource: "sub-service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sub-service deleted"})
}

func (h *AdminHandler) CreateTechnician(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		Email        string `json:"email" binding:"required,email"`
		Password     string `json:"password" binding:"required,min=8"`
		Phone        string `json:"phone"`
		ProviderRole string `json:"provider_role" binding:"required"`
		FCMToken     string `json:"fcm_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to hash password", err.Error())
		return
	}

	tech, err := h.Technicians.Insert(c.Request.Context(), models.Technician{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		ProviderRole: req.ProviderRole,
		FCMToken:     req.FCMToken,
		PasswordHash: string(hash),
	})
	if err != nil {
		utils.RespondError(c, &utils.DependencyError{Op: "createTechnician", Err: err})
		return
	}
	c.JSON(http.StatusOK, tech)
}

func (h *AdminHandler) DeleteTechnician(c *gin.Context) {
	var req struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Technicians.Delete(c.Request.Context(), req.ID); err != nil {
		utils.RespondError(c, &utils.NotFoundError{Resource: "technician"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Technician deleted"})
}
