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

// EventHandler handles HTTP requests for promotional events
type EventHandler struct {
	service service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// GetCurrentEvent godoc
// @Summary      Current promotional event
// @Description  Returns the highest-priority event active right now, if any
// @Tags         events
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.EventResponse}
// @Router       /events/current [get]
func (h *EventHandler) GetCurrentEvent(c *gin.Context) {
	data, err := h.service.CurrentEvent()
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to resolve current event", err)
		return
	}

	// No active event is a normal outcome, not an error
	common.SuccessResponse(c, data, nil)
}

// ListEvents godoc
// @Summary      List events
// @Description  Returns a page of all promotional events (admin)
// @Tags         events
// @Produce      json
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  common.APIResponse{data=domain.EventListResponse}
// @Security     BearerAuth
// @Router       /admin/events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	data, err := h.service.List(page, limit)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch events", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// GetEvent godoc
// @Summary      Event detail
// @Tags         events
// @Produce      json
// @Param        id  path  int  true  "Event ID"
// @Success      200  {object}  common.APIResponse{data=domain.EventResponse}
// @Failure      404  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /admin/events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := paramInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid event ID", err)
		return
	}

	data, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, common.ErrEventNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Event not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch event", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// CreateEvent godoc
// @Summary      Create event
// @Description  Creates a promotional event with targets/rules/actions/images
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body  domain.CreateEventRequest  true  "Event"
// @Success      200  {object}  common.APIResponse{data=domain.EventResponse}
// @Failure      400  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /admin/events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req domain.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Create(middleware.GetMemberID(c), &req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidTimeRange) {
			common.ErrorResponse(c, http.StatusBadRequest, "Start time must be before end time", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create event", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// UpdateEvent godoc
// @Summary      Update event
// @Description  Replaces the event and its child collections wholesale
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id       path  int                        true  "Event ID"
// @Param        request  body  domain.UpdateEventRequest  true  "Event"
// @Success      200  {object}  common.APIResponse{data=domain.EventResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /admin/events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := paramInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid event ID", err)
		return
	}

	var req domain.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEventNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Event not found", err)
		case errors.Is(err, common.ErrInvalidTimeRange):
			common.ErrorResponse(c, http.StatusBadRequest, "Start time must be before end time", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update event", err)
		}
		return
	}

	common.SuccessResponse(c, data, nil)
}

// DeleteEvent godoc
// @Summary      Delete event
// @Description  Deletes an event unless it has application history
// @Tags         events
// @Produce      json
// @Param        id  path  int  true  "Event ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /admin/events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := paramInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid event ID", err)
		return
	}

	if err := h.service.Delete(id); err != nil {
		switch {
		case errors.Is(err, common.ErrEventNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Event not found", err)
		case errors.Is(err, common.ErrEventInUse):
			common.ErrorResponse(c, http.StatusConflict, "Event has application history and cannot be deleted", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete event", err)
		}
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}

// ListEventLogs godoc
// @Summary      Event application history
// @Tags         events
// @Produce      json
// @Param        id     path   int  true   "Event ID"
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  common.APIResponse{data=[]domain.EventLog}
// @Security     BearerAuth
// @Router       /admin/events/{id}/logs [get]
func (h *EventHandler) ListEventLogs(c *gin.Context) {
	id, err := paramInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid event ID", err)
		return
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	logs, total, err := h.service.ListLogs(id, page, limit)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch event logs", err)
		return
	}

	common.SuccessResponse(c, logs, &common.Meta{Page: page, Limit: limit, Total: total})
}
