package handlers

import (
	"log"
	"net/http"

	"pokedex-server/auth"
	"pokedex-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// EventsHandler upgrades authenticated clients to a websocket feed of
// capture events.
type EventsHandler struct {
	mgr    *ws.Manager
	tokens *auth.TokenService
}

func NewEventsHandler(mgr *ws.Manager, tokens *auth.TokenService) *EventsHandler {
	return &EventsHandler{mgr: mgr, tokens: tokens}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleCaptureWS handles GET /ws?token=<session token>. Browsers cannot
// set headers on websocket requests, so the token rides in the query.
func (h *EventsHandler) HandleCaptureWS(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token query parameter required"})
		return
	}

	trainerID, err := h.tokens.Verify(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	watcherID := uuid.New().String()
	h.mgr.Register(watcherID, conn)
	log.Printf("watcher connected: %s (trainer %s)", watcherID, trainerID)

	defer func() {
		h.mgr.Unregister(watcherID)
		log.Printf("watcher disconnected: %s", watcherID)
	}()

	// Watchers only listen; drain the connection until it closes.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("watcher %s closed connection", watcherID)
			} else {
				log.Printf("read error from watcher %s: %v", watcherID, err)
			}
			return
		}
	}
}
