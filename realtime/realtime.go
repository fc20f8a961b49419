package realtime

import (
	"api/models"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

var (
	organizationClients = make(map[string]map[*websocket.Conn]bool) // Map of organization ID to connected clients
	broadcast           = make(chan AdmissionUpdate)                // Broadcast channel for updates
	mutex               sync.Mutex                                  // Mutex to protect organizationClients map
)

// AdmissionUpdate notifies dashboards about a change in a specialty's enrollment
type AdmissionUpdate struct {
	OrganizationID string          `json:"organization_id"`
	SpecialtyID    string          `json:"specialty_id"`
	Student        *models.Student `json:"student,omitempty"`
	StudentsCount  int64           `json:"students_count"`
	UpdateType     string          `json:"update_type"` // "admitted" or "removed"
}

// RegisterClient adds a WebSocket client to a specific organization feed
func RegisterClient(organizationID string, conn *websocket.Conn) {
	mutex.Lock()
	if organizationClients[organizationID] == nil {
		organizationClients[organizationID] = make(map[*websocket.Conn]bool)
	}
	organizationClients[organizationID][conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from a specific organization feed
func UnregisterClient(organizationID string, conn *websocket.Conn) {
	mutex.Lock()
	if clients, exists := organizationClients[organizationID]; exists {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(organizationClients, organizationID)
		}
	}
	mutex.Unlock()
}

// BroadcastAdmissionUpdate sends updates to all clients watching an organization
func BroadcastAdmissionUpdate(update AdmissionUpdate) {
	broadcast <- update
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		if clients, exists := organizationClients[update.OrganizationID]; exists {
			for client := range clients {
				if err := client.WriteJSON(update); err != nil {
					log.Printf("WebSocket write error: %v", err)
					client.Close()
					delete(clients, client)
				}
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
