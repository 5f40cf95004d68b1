package network

import (
	"testing"

	"github.com/g1tyx/idle-dungeon-runner/pkg/api"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()

	ch1 := hub.Register("viewer1")
	ch2 := hub.Register("viewer2")

	if hub.SubscriberCount() != 2 {
		t.Fatalf("Expected 2 subscribers, got %d", hub.SubscriberCount())
	}

	resp := &api.ServerResponse{Type: "UPDATE", Floor: 3}
	hub.Broadcast(resp)

	for i, ch := range []chan *api.ServerResponse{ch1, ch2} {
		select {
		case got := <-ch:
			if got.Floor != 3 {
				t.Errorf("Subscriber %d got wrong message: %+v", i, got)
			}
		default:
			t.Errorf("Subscriber %d did not receive the broadcast", i)
		}
	}
}

func TestHubUnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	ch := hub.Register("viewer")

	hub.Unregister("viewer")

	if _, ok := <-ch; ok {
		t.Error("Channel should be closed after unregister")
	}
	if hub.SubscriberCount() != 0 {
		t.Errorf("Expected 0 subscribers, got %d", hub.SubscriberCount())
	}
}

func TestHubReRegisterReplacesChannel(t *testing.T) {
	hub := NewHub()
	old := hub.Register("viewer")
	_ = hub.Register("viewer")

	if _, ok := <-old; ok {
		t.Error("Old channel should be closed on re-register")
	}
	if hub.SubscriberCount() != 1 {
		t.Errorf("Expected 1 subscriber after re-register, got %d", hub.SubscriberCount())
	}
}

func TestHubFullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()
	hub.Register("slow")

	// Канал на 100; шлем больше — Broadcast не должен зависнуть
	resp := &api.ServerResponse{Type: "UPDATE"}
	for i := 0; i < 150; i++ {
		hub.Broadcast(resp)
	}
}
