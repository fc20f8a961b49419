package organizations

import (
	"log"
	"net/http"

	"api/database"
	"api/models"
	"api/realtime"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OrganizationWebSocket handles WebSocket connections for an organization's live
// admission feed
func OrganizationWebSocket(c *gin.Context) {
	organizationID := c.Param("id")

	var count int64
	database.DB.Model(&models.Organization{}).Where("id = ?", organizationID).Count(&count)
	if count == 0 {
		response.Error(c, http.StatusNotFound, ErrOrganizationNotFound)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	realtime.RegisterClient(organizationID, conn)
	defer func() {
		realtime.UnregisterClient(organizationID, conn)
		conn.Close()
	}()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
