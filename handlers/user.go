package handlers

import (
	"net/http"

	"fixel/database/repository"
	"fixel/services/auth"
	"fixel/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes registration, login and profile reads.
type UserHandler struct {
	Accounts *auth.AccountService
	Users    repository.UserRepository
}

func NewUserHandler(accounts *auth.AccountService, users repository.UserRepository) *UserHandler {
	return &UserHandler{Accounts: accounts, Users: users}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req auth.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Accounts.RegisterUser(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Accounts.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *UserHandler) ViewUser(c *gin.Context) {
	userID := c.GetString("userID")

	profile, err := h.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, &utils.DependencyError{Op: "viewUser", Err: err})
		return
	}
	if profile == nil {
		utils.RespondError(c, &utils.NotFoundError{Resource: "user profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
