package handlers

import (
	"net/http"

	"fixel/database/repository"
	"fixel/models"
	"fixel/utils"

	"github.com/gin-gonic/gin"
)

// ServiceHandler exposes the public service catalogue.
type ServiceHandler struct {
	Services repository.ServiceRepository
}

func NewServiceHandler(services repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{Services: services}
}

// ViewServices lists every service with its sub-services attached.
func (h *ServiceHandler) ViewServices(c *gin.Context) {
	ctx := c.Request.Context()

	services, err := h.Services.GetAll(ctx)
	if err != nil {
		utils.RespondError(c, &utils.DependencyError{Op: "viewServices", Err: err})
		return
	}

	details := make([]models.ServiceDetail, 0, len(services))
	for _, svc := range services {
		subs, err := h.Services.GetSubServicesByServiceID(ctx, svc.ID)
		if err != nil {
			subs = nil
		}
		details = append(details, models.ServiceDetail{Service: svc, SubServices: subs})
	}
	c.JSON(http.StatusOK, details)
}
