package websocket

import (
	"github.com/domysh/spesometro/logger"
	"github.com/domysh/spesometro/web/global"
)

// GetHub returns the running server's hub, nil when no server is up.
func GetHub() *Hub {
	webServer := global.GetWebServer()
	if webServer == nil {
		return nil
	}
	hub := webServer.GetWSHub()
	if hub == nil {
		return nil
	}
	wsHub, ok := hub.(*Hub)
	if !ok {
		logger.Warning("websocket hub type assertion failed")
		return nil
	}
	return wsHub
}

// BroadcastUpdate notifies every connected client that shared state
// changed, listing the affected resource ids. Fire-and-forget: without a
// running hub this is a no-op, and a failed delivery never fails the
// mutation that triggered it.
func BroadcastUpdate(affected ...string) {
	hub := GetHub()
	if hub != nil {
		hub.Broadcast(affected)
	}
}
