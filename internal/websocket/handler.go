package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs attaches an upgraded connection to the hub for the given session.
// It blocks until the connection drops; unregistration happens exactly once,
// in readPump's deferred teardown.
func ServeWs(hub *Hub, c *websocket.Conn, sessionID, deviceFingerprint string) {
	client := &Client{
		Hub:               hub,
		Conn:              c,
		SessionID:         sessionID,
		DeviceFingerprint: deviceFingerprint,
		Send:              make(chan []byte, 256),
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // blocks in the handler goroutine
}
