package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guruvela-be/internal/pkg/logger"
)

func TestHubRegisterAndUnregister(t *testing.T) {
	hub := NewHub(logger.NewNop())
	go hub.Run()
	defer hub.Shutdown()

	client := &Client{Hub: hub, SessionID: "s-1", Send: make(chan []byte, 1)}
	require.True(t, hub.add(client))
	assert.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 5*time.Millisecond)

	hub.remove(client)
	assert.Eventually(t, func() bool { return hub.Count() == 0 }, time.Second, 5*time.Millisecond)

	_, open := <-client.Send
	assert.False(t, open)
}

func TestHubShutdownRejectsNewClients(t *testing.T) {
	hub := NewHub(logger.NewNop())
	done := make(chan struct{})
	go func() {
		hub.Run()
		close(done)
	}()

	hub.Shutdown()
	hub.Shutdown()
	<-done

	assert.False(t, hub.add(&Client{Hub: hub, Send: make(chan []byte)}))
	hub.remove(&Client{Hub: hub})
}
