package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/middleware"
	"github.com/litmart/litmart-backend/internal/ws"
	"github.com/litmart/litmart-backend/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from the storefront origin; CORS is enforced
	// at the HTTP layer before the upgrade
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades authenticated requests to WebSocket connections
type WSHandler struct {
	hub *ws.Hub
}

// NewWSHandler creates a new WSHandler
func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Connect godoc
// @Summary      Open push connection
// @Description  Upgrades to a WebSocket for notifications and chat pushes
// @Tags         ws
// @Success      101
// @Security     BearerAuth
// @Router       /ws [get]
func (h *WSHandler) Connect(c *gin.Context) {
	memberID := middleware.GetMemberID(c)
	if memberID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed for member %d: %v", memberID, err)
		return
	}

	client := ws.NewClient(h.hub, conn, memberID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
