package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/domain"
	"github.com/litmart/litmart-backend/internal/middleware"
	"github.com/litmart/litmart-backend/internal/service"
)

// ChatHandler handles the customer support chat endpoints
type ChatHandler struct {
	service *service.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(service *service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// GetHistory godoc
// @Summary      My chat history
// @Description  Returns the member's support conversation and marks staff messages read
// @Tags         chat
// @Produce      json
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  common.APIResponse{data=domain.ChatHistoryResponse}
// @Security     BearerAuth
// @Router       /chat/messages [get]
func (h *ChatHandler) GetHistory(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 50)

	data, err := h.service.GetHistory(middleware.GetMemberID(c), false, page, limit)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch chat history", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// SendMessage godoc
// @Summary      Send chat message
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request  body  domain.SendChatMessageRequest  true  "Message"
// @Success      200  {object}  common.APIResponse{data=domain.ChatMessageResponse}
// @Failure      400  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /chat/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req domain.SendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	memberID := middleware.GetMemberID(c)
	data, err := h.service.Send(memberID, memberID, false, req.Content)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to send message", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// GetMemberHistory godoc
// @Summary      Member's chat history (staff)
// @Tags         chat
// @Produce      json
// @Param        memberId  path   int  true   "Member ID"
// @Param        page      query  int  false  "Page number"
// @Param        limit     query  int  false  "Page size"
// @Success      200  {object}  common.APIResponse{data=domain.ChatHistoryResponse}
// @Security     BearerAuth
// @Router       /admin/chat/{memberId}/messages [get]
func (h *ChatHandler) GetMemberHistory(c *gin.Context) {
	memberID, err := paramInt64(c, "memberId")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid member ID", err)
		return
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 50)

	data, err := h.service.GetHistory(memberID, true, page, limit)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch chat history", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// SendStaffMessage godoc
// @Summary      Reply to a member (staff)
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        memberId  path  int                            true  "Member ID"
// @Param        request   body  domain.SendChatMessageRequest  true  "Message"
// @Success      200  {object}  common.APIResponse{data=domain.ChatMessageResponse}
// @Failure      400  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /admin/chat/{memberId}/messages [post]
func (h *ChatHandler) SendStaffMessage(c *gin.Context) {
	memberID, err := paramInt64(c, "memberId")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid member ID", err)
		return
	}

	var req domain.SendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Send(memberID, middleware.GetMemberID(c), true, req.Content)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to send message", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}
