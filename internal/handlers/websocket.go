package handlers

import (
	"github.com/aitbensouda/krili-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// WebSocketHandler upgrades the request and registers the client with the hub
func WebSocketHandler(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")
		userType := c.GetString("userType")

		services.HandleWebSocket(hub, c.Writer, c.Request, userID, userType)
	}
}
