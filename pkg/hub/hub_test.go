package hub

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBroadcastJSON(t *testing.T) {
	h := New("test")
	go h.Run()

	// A client registered by hand, bypassing the websocket plumbing
	client := &Client{hub: h, send: make(chan Message, 1)}
	h.register <- client

	event := TurnEvent{Event: EventTurn, Role: "assistant", Text: "hello"}
	if err := h.BroadcastJSON(event); err != nil {
		t.Fatalf("BroadcastJSON failed: %v", err)
	}

	select {
	case msg := <-client.send:
		var got TurnEvent
		if err := json.Unmarshal(msg.Data, &got); err != nil {
			t.Fatalf("unmarshal broadcast: %v", err)
		}
		if got.Event != EventTurn || got.Text != "hello" {
			t.Errorf("unexpected event %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("broadcast never reached the client")
	}
}

func TestSlowClientDropped(t *testing.T) {
	h := New("test")
	go h.Run()

	// Zero-capacity send channel: the first broadcast cannot be queued
	slow := &Client{hub: h, send: make(chan Message)}
	h.register <- slow

	h.BroadcastJSON(TurnEvent{Event: EventTurn, Text: "x"})

	deadline := time.Now().Add(time.Second)
	for h.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("slow client was never dropped")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestClientCount(t *testing.T) {
	h := New("test")
	go h.Run()

	a := &Client{hub: h, send: make(chan Message, 1)}
	b := &Client{hub: h, send: make(chan Message, 1)}
	h.register <- a
	h.register <- b

	deadline := time.Now().Add(time.Second)
	for h.ClientCount() != 2 {
		if time.Now().After(deadline) {
			t.Fatalf("expected 2 clients, got %d", h.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}

	h.unregister <- a
	for h.ClientCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("expected 1 client after unregister, got %d", h.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}
