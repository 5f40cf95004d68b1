package server

import (
	"testing"
	"time"

	"github.com/g1tyx/idle-dungeon-runner/pkg/api"
)

func TestForwardUpdatesDoesNotBlockOnStalledReceiver(t *testing.T) {
	updates := make(chan *api.ServerResponse, 16)
	send := make(chan *api.ServerResponse, 2)

	done := make(chan struct{})
	go func() {
		forwardUpdates(updates, send)
		close(done)
	}()

	// Получатель не читает: буфер на 2 переполняется, лишнее отбрасывается
	for i := 0; i < 10; i++ {
		updates <- &api.ServerResponse{Type: "UPDATE", Floor: i}
	}
	close(updates)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Forwarder must not block when the send queue is full")
	}

	n := 0
	for range send {
		n++
	}
	if n != 2 {
		t.Errorf("Expected 2 buffered frames after drop, got %d", n)
	}
}
