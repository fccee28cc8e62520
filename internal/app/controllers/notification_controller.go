package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/berk/parentportal/internal/app/models/dto"
	"github.com/berk/parentportal/internal/pkg/logger"
)

// NotificationController handles the push-notification compatibility stubs.
// Actual delivery is delegated to Firebase; these endpoints only acknowledge
// and log so the frontend flow keeps working.
type NotificationController struct{}

// NewNotificationController creates a new NotificationController
func NewNotificationController() *NotificationController {
	return &NotificationController{}
}

// Subscribe acknowledges a push-token registration
// @Summary Register push token
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Push token"
// @Success 201 {object} dto.MessageResponse "Token received"
// @Failure 400 {object} dto.ErrorResponse "Missing token"
// @Router /api/subscribe [post]
func (c *NotificationController) Subscribe(ctx *gin.Context) {
	var req dto.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Token is required"))
		return
	}

	logger.Info().Str("token", req.Token).Msg("New FCM token stored")
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Token received"})
}

// SendNotification logs a delivery request without sending anything
// @Summary Simulate a notification send
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Target token"
// @Success 200 {object} dto.MessageResponse "Logged"
// @Failure 400 {object} dto.ErrorResponse "Missing token"
// @Router /api/send-notification [post]
func (c *NotificationController) SendNotification(ctx *gin.Context) {
	var req dto.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Token is required"))
		return
	}

	logger.Info().Str("token", req.Token).Msg("Notification send simulated")
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Log logged. Use Firebase Console to test actual delivery."})
}
