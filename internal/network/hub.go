package network

import (
	"sync"

	"github.com/g1tyx/idle-dungeon-runner/pkg/api"
)

// Hub занимается только рассылкой снапшотов подписчикам.
// Подписчики — зрители одного и того же забега, поэтому
// unicast-адресация не нужна: все получают одно и то же.
type Hub struct {
	mu sync.RWMutex
	// Мапа: ID подписчика -> личный канал
	subscribers map[string]chan *api.ServerResponse
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]chan *api.ServerResponse),
	}
}

// Register создает личный канал для подписчика.
func (h *Hub) Register(id string) chan *api.ServerResponse {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := h.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan *api.ServerResponse, 100)
	h.subscribers[id] = ch
	return ch
}

// Unregister удаляет подписчика и закрывает его канал.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		close(ch)
		delete(h.subscribers, id)
	}
}

// Broadcast отправляет снапшот всем. Медленный подписчик
// с полным каналом пропускает кадр, остальных не тормозит.
func (h *Hub) Broadcast(resp *api.ServerResponse) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- resp:
		default:
		}
	}
}

// SubscriberCount возвращает количество активных подписчиков.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
