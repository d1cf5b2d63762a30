package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/vowsnap-dev/vowsnap/internal/types"
)

var (
	templateClients   = make(map[string]map[*websocket.Conn]bool)
	templateClientsMu sync.RWMutex
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// BroadcastRefresh tells every device connected to a wedding that the
// gallery changed. Clients re-poll; no payload rides on the socket.
func BroadcastRefresh(templateID string) {
	templateClientsMu.RLock()
	clients, exists := templateClients[templateID]
	if !exists || len(clients) == 0 {
		templateClientsMu.RUnlock()
		return
	}

	clientsCopy := make([]*websocket.Conn, 0, len(clients))
	for conn := range clients {
		clientsCopy = append(clientsCopy, conn)
	}
	templateClientsMu.RUnlock()

	for _, conn := range clientsCopy {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			log.Printf("Failed to set write deadline for broadcast: %v", err)
			continue
		}

		err := conn.WriteJSON(map[string]string{
			"type":       "refresh",
			"message":    "Gallery data updated",
			"templateId": templateID,
		})

		if err != nil {
			log.Printf("Failed to broadcast refresh to client: %v", err)
			templateClientsMu.Lock()
			if clients, exists := templateClients[templateID]; exists {
				delete(clients, conn)
				if len(clients) == 0 {
					delete(templateClients, templateID)
				}
			}
			templateClientsMu.Unlock()
			conn.Close()
		}
	}
}

func WebSocket(c *gin.Context) {
	templateID := c.Param("templateId")

	if templateID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Template ID is required"})
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range types.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("Failed to set initial read deadline: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.Printf("Failed to set read deadline in pong handler: %v", err)
		}
		return nil
	})

	templateClientsMu.Lock()
	if templateClients[templateID] == nil {
		templateClients[templateID] = make(map[*websocket.Conn]bool)
	}
	templateClients[templateID][conn] = true
	templateClientsMu.Unlock()

	defer func() {
		templateClientsMu.Lock()

		if clients, exists := templateClients[templateID]; exists {
			delete(clients, conn)

			if len(clients) == 0 {
				delete(templateClients, templateID)
			}
		}

		templateClientsMu.Unlock()
		conn.Close()

		log.Printf("WebSocket connection closed for template %s", templateID)
	}()

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		log.Printf("Failed to set write deadline for welcome message: %v", err)
		return
	}

	err = conn.WriteJSON(map[string]string{
		"type":       "connected",
		"message":    "WebSocket connection established",
		"templateId": templateID,
	})

	if err != nil {
		log.Printf("Failed to send welcome message: %v", err)
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	go func() {
		for range ticker.C {
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Printf("Failed to set write deadline for template %s: %v", templateID, err)
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("Ping failed for template %s: %v", templateID, err)
				return
			}
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.Printf("Failed to set read deadline for template %s: %v", templateID, err)
			break
		}

		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for template %s: %v", templateID, err)
			}
			break
		}

		switch messageType {
		case websocket.TextMessage:
			log.Printf("Received message from client in template %s: %s", templateID, string(message))
		case websocket.PongMessage:
			log.Printf("Received pong from template %s", templateID)
		}
	}
}
