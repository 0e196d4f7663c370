package services

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is open for the whole API
	},
}

// Client represents a connected WebSocket client
type Client struct {
	ID       string
	UserType string
	Conn     *websocket.Conn
	Send     chan []byte
	Hub      *Hub
}

// Hub maintains the set of active clients and broadcasts booking events
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			log.Printf("Client %s connected", client.ID)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mutex.Unlock()
			log.Printf("Client %s disconnected", client.ID)
		}
	}
}

// BroadcastToUser sends a message to a specific user
func (h *Hub) BroadcastToUser(userID string, message []byte) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for client := range h.clients {
		if client.ID == userID {
			select {
			case client.Send <- message:
			default:
				log.Printf("Warning: could not send to client %s (channel full)", client.ID)
			}
		}
	}
}

// BroadcastToUserType sends a message to all users of a specific type
func (h *Hub) BroadcastToUserType(userType string, message []byte) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for client := range h.clients {
		if client.UserType == userType {
			select {
			case client.Send <- message:
			default:
				log.Printf("Warning: could not send to client %s (channel full)", client.ID)
			}
		}
	}
}

// WebSocketMessage is the envelope for every hub message
type WebSocketMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// BookingCreated notifies agency managers about a new rental request
type BookingCreated struct {
	BookingID string  `json:"bookingId"`
	AgencyID  string  `json:"agencyId"`
	VehicleID string  `json:"vehicleId"`
	UserID    string  `json:"userId"`
	Total     float64 `json:"total"`
}

// BookingStatusChanged notifies the booking's client about a transition
type BookingStatusChanged struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}

// SendBookingCreated notifies all connected managers about a new booking
func (h *Hub) SendBookingCreated(created BookingCreated) {
	data, err := json.Marshal(WebSocketMessage{Type: "booking_created", Data: created})
	if err != nil {
		log.Printf("Error marshaling booking created: %v", err)
		return
	}
	h.BroadcastToUserType("manager", data)
}

// SendBookingStatusChanged notifies the booking's client about a status change
func (h *Hub) SendBookingStatusChanged(userID string, changed BookingStatusChanged) {
	data, err := json.Marshal(WebSocketMessage{Type: "booking_status_changed", Data: changed})
	if err != nil {
		log.Printf("Error marshaling booking status change: %v", err)
		return
	}
	h.BroadcastToUser(userID, data)
}

// HandleWebSocket upgrades the connection and attaches the client to the hub
func HandleWebSocket(hub *Hub, w http.ResponseWriter, r *http.Request, userID, userType string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := &Client{
		ID:       userID,
		UserType: userType,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		Hub:      hub,
	}

	client.Hub.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump drains the connection until the client goes away
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
