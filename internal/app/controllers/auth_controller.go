package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/berk/parentportal/internal/app/models/dto"
	"github.com/berk/parentportal/internal/app/services"
	"github.com/berk/parentportal/internal/middleware"
)

// AuthController handles login and account mutation endpoints
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login resolves submitted credentials into a caller identity
// @Summary Parent login
// @Description Resolves a username/password pair into the parent identity with its linked student, current enrollment record and profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse "Resolved identity"
// @Failure 400 {object} dto.ErrorResponse "Missing username or password"
// @Failure 401 {object} dto.ErrorResponse "Bad credentials or inactive account"
// @Failure 403 {object} dto.ErrorResponse "Incomplete student linkage"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Username and password are required"))
		return
	}

	user, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		User:    *user,
	})
}

// UpdateFCM stores the client's push-notification token
// @Summary Update FCM token
// @Description Stores the submitted push token for the account, skipping the write when it is unchanged
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.UpdateFCMRequest true "Account and token"
// @Success 200 {object} dto.SuccessResponse "Token stored or already current"
// @Failure 400 {object} dto.ErrorResponse "Missing user ID or token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/update-fcm [post]
func (c *AuthController) UpdateFCM(ctx *gin.Context) {
	var req dto.UpdateFCMRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("User ID and Token are required"))
		return
	}

	message, err := c.authService.UpdateFCMToken(ctx, req.UserID, req.Token)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: message,
	})
}

// ChangePassword overwrites the stored secret after checking the old one
// @Summary Change password
// @Description Verifies the old password and overwrites the stored secret with the new value
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Account and passwords"
// @Success 200 {object} dto.SuccessResponse "Password updated"
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 401 {object} dto.ErrorResponse "Incorrect old password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/password/change [post]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("All fields are required"))
		return
	}

	if err := c.authService.ChangePassword(ctx, req.UserID, req.OldPassword, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: "Password updated successfully",
	})
}
