package controller

import (
	"net/http"
	"time"

	"github.com/domysh/spesometro/util/common"
	wshub "github.com/domysh/spesometro/web/websocket"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketController handles real-time client connections.
type WebSocketController struct {
	hub *wshub.Hub
}

// NewWebSocketController creates a new WebSocketController and sets up its routes.
func NewWebSocketController(g *gin.RouterGroup, hub *wshub.Hub) *WebSocketController {
	a := &WebSocketController{hub: hub}
	a.initRouter(g)
	return a
}

func (a *WebSocketController) initRouter(g *gin.RouterGroup) {
	g.GET("/sock", a.handleWebSocket)
}

// handleWebSocket upgrades the connection, registers the client with the
// hub and pumps queued update events until either side disconnects.
func (a *WebSocketController) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := &wshub.Client{
		ID:   uuid.NewString(),
		Send: make(chan []byte, 64),
	}
	a.hub.Register(client)
	defer a.hub.Unregister(client)

	go func() {
		defer common.Recover("websocket write pump")
		for message := range client.Send {
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				break
			}
		}
		conn.Close()
	}()

	// Keep the connection alive; incoming payloads are ignored
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
