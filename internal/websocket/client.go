package websocket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/websocket/v2"

	"guruvela-be/internal/dto"
	"guruvela-be/pkg/dialogue"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	turnTimeout    = 30 * time.Second
)

const (
	FrameGreeting = "greeting"
	FrameReply    = "reply"
	FrameError    = "error"
)

// TurnHandler answers one message on a session.
type TurnHandler interface {
	Turn(ctx context.Context, sess *dialogue.Session, turn dialogue.Turn) dialogue.TurnResponse
}

// Client is one websocket connection bound to one dialogue session.
type Client struct {
	Hub       *Hub
	Conn      *websocket.Conn
	SessionID string
	Send      chan []byte

	session *dialogue.Session
	handler TurnHandler
}

func (c *Client) enqueue(frameType string, reply dialogue.TurnResponse) {
	data, err := json.Marshal(dto.ChatSocketReply{
		Type:      frameType,
		SessionId: c.SessionID,
		Reply:     reply,
	})
	if err != nil {
		return
	}
	select {
	case c.Send <- data:
	default:
		c.Hub.logger.Warn("Hub", "Client Send buffer full, dropping reply", map[string]interface{}{"session_id": c.SessionID})
	}
}

// readPump handles inbound frames one at a time, so turns on the
// connection's session are processed strictly in order.
func (c *Client) readPump() {
	defer func() {
		c.Hub.remove(c)
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("Hub", "Unexpected websocket close", map[string]interface{}{
					"session_id": c.SessionID,
					"error":      err.Error(),
				})
			}
			return
		}

		var in dto.ChatSocketMessage
		if err := json.Unmarshal(raw, &in); err != nil {
			c.enqueue(FrameError, dialogue.TurnResponse{Text: "invalid message"})
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
		reply := c.handler.Turn(ctx, c.session, dialogue.Turn{
			Text:     in.Message,
			Language: in.Language,
			TopicID:  in.TopicId,
		})
		cancel()
		c.enqueue(FrameReply, reply)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
