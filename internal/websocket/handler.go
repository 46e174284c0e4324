package websocket

import (
	"github.com/gofiber/websocket/v2"

	"guruvela-be/pkg/dialogue"
)

// SessionProvider opens and closes the session that lives as long as one
// connection.
type SessionProvider interface {
	TurnHandler
	OpenSession(language string) (*dialogue.Session, dialogue.TurnResponse)
	CloseSession(sess *dialogue.Session)
}

// ServeChat runs one conversation over c. It greets the user, then answers
// each inbound frame in order until the connection closes.
func ServeChat(hub *Hub, provider SessionProvider, c *websocket.Conn, language string) {
	sess, greeting := provider.OpenSession(language)
	defer provider.CloseSession(sess)

	client := &Client{
		Hub:       hub,
		Conn:      c,
		SessionID: sess.ID,
		Send:      make(chan []byte, 64),
		session:   sess,
		handler:   provider,
	}
	if !hub.add(client) {
		c.Close()
		return
	}
	client.enqueue(FrameGreeting, greeting)

	go client.writePump()
	client.readPump()
}
