package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"complaintdesk/internal/application/user/usecases"
	"complaintdesk/internal/shared/logger"
	"complaintdesk/internal/shared/utils"
)

type AuthHandler struct {
	loginUseCase          loginUseCase
	registerUseCase       registerUseCase
	logoutUseCase         logoutUseCase
	getCurrentUserUseCase getCurrentUserUseCase
	logger                logger.Interface
}

func NewAuthHandler(
	loginUC loginUseCase,
	registerUC registerUseCase,
	logoutUC logoutUseCase,
	getCurrentUserUC getCurrentUserUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:          loginUC,
		registerUseCase:       registerUC,
		logoutUseCase:         logoutUC,
		getCurrentUserUseCase: getCurrentUserUC,
		logger:                logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"max=72"`
	Role         string `json:"role" binding:"required,user_role"`
	PolicyNumber string `json:"policy_number" binding:"max=64"`
}

// Login handles POST /auth/login. An unknown email or, in strict mode, a
// wrong password answers 401 and keeps the current session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Errorw("login failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !result.Authenticated {
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result.User)
}

// Register handles POST /auth/register. The new identity becomes the current
// session.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterCommand{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		PolicyNumber: req.PolicyNumber,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "registration successful")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logoutUseCase.Execute(c.Request.Context()); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "logout successful", nil)
}

func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	result, err := h.getCurrentUserUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
