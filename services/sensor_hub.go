package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// SensorHub fans each new sensor reading out to attached websocket clients.
type SensorHub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}
}

func NewSensorHub() *SensorHub {
	return &SensorHub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *SensorHub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *SensorHub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

func (h *SensorHub) Broadcast(reading string) {
	msg, _ := json.Marshal(map[string]string{"lectura": reading})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.clients {
		_ = conn.WriteMessage(websocket.TextMessage, msg)
	}
}
