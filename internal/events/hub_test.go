package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newIdleClient(hub *Hub) *Client {
	return &Client{
		id:        uuid.New(),
		hub:       hub,
		send:      make(chan []byte, 1),
		sessionID: 1,
		closed:    make(chan struct{}),
	}
}

func TestHubReleaseAfterStop(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Stop()

	// A client handing itself back after shutdown must not block: the
	// read pump does this in a defer when its connection dies.
	released := make(chan struct{})
	go func() {
		newIdleClient(hub).release()
		close(released)
	}()

	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("release blocked after hub shutdown")
	}
}

func TestHubStopClosesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newIdleClient(hub)
	hub.register <- client

	hub.Stop()

	select {
	case <-client.closed:
	case <-time.After(time.Second):
		t.Fatal("client not closed on hub shutdown")
	}
	assert.Empty(t, hub.sessions)
}
