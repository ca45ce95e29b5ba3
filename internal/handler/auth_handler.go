package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fmontiron/portfolio-api/internal/dto"
	appErrors "github.com/fmontiron/portfolio-api/pkg/errors"
	"github.com/fmontiron/portfolio-api/pkg/response"
)

type authService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Verify(ctx context.Context, token string) (*dto.VerifyResponse, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

// AuthHandler exposes the admin session endpoints. Tokens travel in the
// request body, matching the dashboard client.
type AuthHandler struct {
	service authService
}

// NewAuthHandler builds a new handler.
func NewAuthHandler(service authService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary Authenticate the admin account
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}
	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// Verify godoc
// @Summary Check whether a session token is still valid
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.VerifyRequest true "Token"
// @Success 200 {object} dto.VerifyResponse
// @Router /auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid verify payload"))
		return
	}
	res, err := h.service.Verify(c.Request.Context(), req.Token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// Logout godoc
// @Summary Revoke a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.LogoutRequest true "Token"
// @Success 200 {object} map[string]bool
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid logout payload"))
		return
	}
	if err := h.service.Logout(c.Request.Context(), req.Token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}

// ChangePassword godoc
// @Summary Rotate the admin password
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.ChangePasswordRequest true "Password change payload"
// @Success 200 {object} map[string]bool
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid change-password payload"))
		return
	}
	if err := h.service.ChangePassword(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}
