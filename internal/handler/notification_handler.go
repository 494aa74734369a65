package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/middleware"
	"github.com/litmart/litmart-backend/internal/service"
)

// NotificationHandler handles HTTP requests for member notifications
type NotificationHandler struct {
	service *service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(service *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// GetUnreadCount godoc
// @Summary      Unread notification count
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.NotificationSummaryResponse}
// @Security     BearerAuth
// @Router       /notifications/unread-count [get]
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	data, err := h.service.GetUnreadCount(middleware.GetMemberID(c))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch unread count", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// ListNotifications godoc
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  common.APIResponse{data=domain.NotificationListResponse}
// @Security     BearerAuth
// @Router       /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	data, err := h.service.GetList(middleware.GetMemberID(c), page, limit)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch notifications", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// MarkAsRead godoc
// @Summary      Mark notification read
// @Tags         notifications
// @Produce      json
// @Param        id  path  int  true  "Notification ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /notifications/{id}/read [post]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, err := paramInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid notification ID", err)
		return
	}

	if err := h.service.MarkAsRead(middleware.GetMemberID(c), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Notification not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to mark notification read", err)
		return
	}

	common.SuccessResponse(c, gin.H{"read": true}, nil)
}

// MarkAllAsRead godoc
// @Summary      Mark all notifications read
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /notifications/read-all [post]
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	if err := h.service.MarkAllAsRead(middleware.GetMemberID(c)); err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to mark notifications read", err)
		return
	}

	common.SuccessResponse(c, gin.H{"read": true}, nil)
}
