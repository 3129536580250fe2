package runtime

import (
	"chat-relay/domain"
	"chat-relay/observability"
	"chat-relay/sink"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Client is one live connection. It holds no state across reconnects:
// the consensus log is the source of truth for anything it missed.
type Client struct {
	ID         string
	sink       *sink.Sink
	writerDone chan struct{}
}

// Hub tracks connected clients and fans events out to them.
// Every client has its own buffer drained by its own writer goroutine,
// so a slow or dead client never delays the others.
type Hub struct {
	mu         sync.RWMutex
	log        *slog.Logger
	metrics    *observability.Metrics
	bufferSize int
	clients    map[string]*Client

	handlersMu   sync.RWMutex
	onConnect    []func(clientID string)
	onMessage    []func(clientID, event string, data []byte)
	onDisconnect []func(clientID string)
}

func NewHub(log *slog.Logger, metrics *observability.Metrics, bufferSize int) *Hub {
	return &Hub{
		log:        log,
		metrics:    metrics,
		bufferSize: bufferSize,
		clients:    make(map[string]*Client),
	}
}

func (h *Hub) OnConnect(handler func(clientID string)) {
	h.handlersMu.Lock()
	defer h.handlersMu.Unlock()
	h.onConnect = append(h.onConnect, handler)
}

func (h *Hub) OnMessage(handler func(clientID, event string, data []byte)) {
	h.handlersMu.Lock()
	defer h.handlersMu.Unlock()
	h.onMessage = append(h.onMessage, handler)
}

func (h *Hub) OnDisconnect(handler func(clientID string)) {
	h.handlersMu.Lock()
	defer h.handlersMu.Unlock()
	h.onDisconnect = append(h.onDisconnect, handler)
}

// Connect registers a connection whose frames are written with send.
// send is only ever called from the client's writer goroutine.
func (h *Hub) Connect(send func(frame []byte) error) *Client {
	client := &Client{
		ID:         uuid.NewString(),
		sink:       sink.NewSink(h.bufferSize),
		writerDone: make(chan struct{}),
	}
	h.mu.Lock()
	h.clients[client.ID] = client
	h.mu.Unlock()
	h.metrics.Connected()

	go h.write(client, send)

	h.log.Debug("Client connected", "client", client.ID)
	h.handlersMu.RLock()
	handlers := h.onConnect
	h.handlersMu.RUnlock()
	for _, handler := range handlers {
		handler(client.ID)
	}
	return client
}

// Receive hands an inbound event of clientID to the message handlers.
func (h *Hub) Receive(clientID, event string, data []byte) {
	h.handlersMu.RLock()
	handlers := h.onMessage
	h.handlersMu.RUnlock()
	for _, handler := range handlers {
		handler(clientID, event, data)
	}
}

// Disconnect removes the client and waits for its writer to stop.
// It is safe to call more than once.
func (h *Hub) Disconnect(client *Client) {
	h.remove(client)
	<-client.writerDone
}

// Broadcast delivers payload under event to every connected client, best effort.
func (h *Hub) Broadcast(event string, payload any) {
	frame, err := domain.EncodeFrame(event, payload)
	if err != nil {
		h.log.Error("Cannot encode broadcast", "event", event, "error", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		if !client.sink.Consume(frame) {
			h.metrics.DroppedFrame()
			h.log.Warn("Client buffer full, dropping event", "client", client.ID, "event", event)
		}
	}
	h.metrics.Broadcast(event)
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) write(client *Client, send func(frame []byte) error) {
	defer close(client.writerDone)
	for {
		select {
		case <-client.sink.Done():
			return
		case frame := <-client.sink.Frames():
			if err := send(frame); err != nil {
				h.log.Warn("Failed to push event to client", "client", client.ID, "error", err)
				h.remove(client)
				return
			}
		}
	}
}

// remove unregisters client once and runs the disconnect handlers.
func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	_, ok := h.clients[client.ID]
	delete(h.clients, client.ID)
	h.mu.Unlock()
	if !ok {
		return
	}
	client.sink.Close()
	h.metrics.Disconnected()

	h.log.Debug("Client disconnected", "client", client.ID)
	h.handlersMu.RLock()
	handlers := h.onDisconnect
	h.handlersMu.RUnlock()
	for _, handler := range handlers {
		handler(client.ID)
	}
}
