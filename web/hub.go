package web

import (
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/convchain/imageio"
)

// Hub broadcasts the latest frame to every connected websocket client.
// Slow clients skip frames rather than stall the publisher.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *log.Logger

	mutex   sync.RWMutex
	clients map[int]chan []byte
	nextID  int
	latest  []byte
	frame   *Frame
}

// NewHub returns an empty hub. A nil logger discards connection errors.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Hub{
		logger:  logger,
		clients: make(map[int]chan []byte),
	}
}

func (h *Hub) addClient() (int, chan []byte) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	id := h.nextID
	h.nextID++
	ch := make(chan []byte, 1)
	if h.latest != nil {
		ch <- h.latest
	}
	h.clients[id] = ch

	return id, ch
}

func (h *Hub) delClient(id int) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if ch, ok := h.clients[id]; ok {
		close(ch)
		delete(h.clients, id)
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.clients)
}

// Publish encodes f, keeps it as the latest frame and queues it for every
// client, replacing any frame a client has not picked up yet.
func (h *Hub) Publish(f Frame) {
	msg := EncodeFrame(f)

	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.latest = msg
	h.frame = &f
	for _, ch := range h.clients {
		select {
		case <-ch:
		default:
		}
		ch <- msg
	}
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for id, ch := range h.clients {
		close(ch)
		delete(h.clients, id)
	}
}

// ServeHTTP upgrades the request to a websocket and streams frames until
// the client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Println(err)
		return
	}
	defer s.Close()

	id, ch := h.addClient()
	go func() {
		for msg := range ch {
			if err := s.WriteMessage(websocket.BinaryMessage, msg); err != nil {
				h.logger.Println(err)
				return
			}
		}
	}()

	for {
		if _, _, err := s.ReadMessage(); err != nil {
			h.delClient(id)
			return
		}
	}
}

// SnapshotHandler serves the latest field as PNG, or 404 before the first frame.
func (h *Hub) SnapshotHandler(w http.ResponseWriter, r *http.Request) {
	h.mutex.RLock()
	f := h.frame
	h.mutex.RUnlock()
	if f == nil {
		http.Error(w, "no frame yet", http.StatusNotFound)
		return
	}
	g, err := f.Grid()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := imageio.Encode(w, g); err != nil {
		h.logger.Println(err)
	}
}
