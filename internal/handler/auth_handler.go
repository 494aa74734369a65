package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/domain"
	"github.com/litmart/litmart-backend/internal/middleware"
	"github.com/litmart/litmart-backend/internal/service"
)

// AuthHandler handles member registration and authentication
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary      Register member
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  domain.RegisterRequest  true  "Registration"
// @Success      200  {object}  common.APIResponse{data=domain.MemberResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Register(&req)
	if err != nil {
		if errors.Is(err, common.ErrMemberAlreadyExists) {
			common.ErrorResponse(c, http.StatusConflict, "Username or email already in use", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Registration failed", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  domain.LoginRequest  true  "Credentials"
// @Success      200  {object}  common.APIResponse{data=domain.TokenResponse}
// @Failure      401  {object}  common.APIResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Login(&req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			common.ErrorResponse(c, http.StatusUnauthorized, "Invalid username or password", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Login failed", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// Refresh godoc
// @Summary      Refresh tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  object{refresh_token=string}  true  "Refresh token"
// @Success      200  {object}  common.APIResponse{data=domain.TokenResponse}
// @Failure      401  {object}  common.APIResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired refresh token", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// Me godoc
// @Summary      My profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.MemberResponse}
// @Failure      404  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	data, err := h.service.GetProfile(middleware.GetMemberID(c))
	if err != nil {
		if errors.Is(err, common.ErrMemberNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Member not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch profile", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}
