package websocket

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)
	return hub
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.After(time.Second)
	for hub.GetClientCount() != want {
		select {
		case <-deadline:
			t.Fatalf("client count = %d, want %d", hub.GetClientCount(), want)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func connect(t *testing.T, hub *Hub) *Client {
	t.Helper()
	want := hub.GetClientCount() + 1
	client := &Client{ID: "test-client", Send: make(chan []byte, 8)}
	hub.Register(client)
	waitForClients(t, hub, want)
	return client
}

func receive(t *testing.T, client *Client) Message {
	t.Helper()
	select {
	case data := <-client.Send:
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message received")
	}
	return Message{}
}

func TestHubBroadcast(t *testing.T) {
	hub := startHub(t)
	client := connect(t, hub)

	hub.Broadcast([]string{"3", "p1"})

	msg := receive(t, client)
	if msg.Type != MessageTypeUpdate {
		t.Errorf("type = %q, want %q", msg.Type, MessageTypeUpdate)
	}
	if !reflect.DeepEqual(msg.Payload, []string{"3", "p1"}) {
		t.Errorf("payload = %v, want [3 p1]", msg.Payload)
	}
	if msg.Time == 0 {
		t.Error("time not set")
	}
}

func TestHubBroadcastEmptyPayload(t *testing.T) {
	hub := startHub(t)
	client := connect(t, hub)

	hub.Broadcast(nil)

	msg := receive(t, client)
	if msg.Payload == nil || len(msg.Payload) != 0 {
		t.Errorf("payload = %#v, want empty list", msg.Payload)
	}
}

func TestHubUnregister(t *testing.T) {
	hub := startHub(t)
	client := connect(t, hub)

	hub.Unregister(client)
	waitForClients(t, hub, 0)

	// Send channel is closed on unregister
	select {
	case _, ok := <-client.Send:
		if ok {
			t.Error("expected closed send channel")
		}
	case <-time.After(time.Second):
		t.Error("send channel not closed")
	}

	// Broadcasting with no clients must not block or panic
	hub.Broadcast([]string{"1"})
}

func TestHubStop(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	client := connect(t, hub)

	hub.Stop()

	select {
	case _, ok := <-client.Send:
		if ok {
			t.Error("expected closed send channel after stop")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel not closed after stop")
	}

	// A stopped hub drops broadcasts silently
	hub.Broadcast([]string{"1"})
	if count := hub.GetClientCount(); count != 0 {
		t.Errorf("client count after stop = %d, want 0", count)
	}
}

func TestHubSurvivesManySlowClients(t *testing.T) {
	hub := startHub(t)

	// Unbuffered send channels with no reader: every broadcast overflows
	slow := make([]*Client, 0, 20)
	for i := 0; i < 20; i++ {
		client := &Client{ID: fmt.Sprintf("slow-%d", i), Send: make(chan []byte)}
		hub.Register(client)
		slow = append(slow, client)
	}
	waitForClients(t, hub, 20)

	hub.Broadcast([]string{"1"})
	waitForClients(t, hub, 0)

	for _, client := range slow {
		select {
		case _, ok := <-client.Send:
			if ok {
				t.Errorf("client %s: expected closed send channel", client.ID)
			}
		case <-time.After(time.Second):
			t.Fatalf("client %s: send channel not closed", client.ID)
		}
	}

	// The loop must keep serving after dropping the whole batch
	client := connect(t, hub)
	hub.Broadcast([]string{"2"})
	msg := receive(t, client)
	if !reflect.DeepEqual(msg.Payload, []string{"2"}) {
		t.Errorf("payload = %v, want [2]", msg.Payload)
	}
}

func TestNilHubIsSafe(t *testing.T) {
	var hub *Hub
	hub.Broadcast([]string{"1"})
	hub.Register(&Client{})
	hub.Unregister(&Client{})
	hub.Stop()
	if count := hub.GetClientCount(); count != 0 {
		t.Errorf("nil hub client count = %d, want 0", count)
	}
}
