// Package monitor mirrors every pushed frame to websocket clients so a
// browser can preview the strip, and serves a small health endpoint. It wraps
// the real output driver; the engine never knows it is being watched.
package monitor

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-lumastrip/internal/strip"
)

type Monitor struct {
	next strip.Driver
	log  zerolog.Logger

	mu      sync.RWMutex
	clients map[*websocket.Conn]bool
	frameID uint64
	start   time.Time
	pixels  int
}

func New(next strip.Driver, pixels int, log zerolog.Logger) *Monitor {
	return &Monitor{
		next:    next,
		log:     log,
		clients: map[*websocket.Conn]bool{},
		start:   time.Now(),
		pixels:  pixels,
	}
}

// Write forwards the frame to the wrapped driver and broadcasts it.
func (m *Monitor) Write(rgb []byte) error {
	var err error
	if m.next != nil {
		err = m.next.Write(rgb)
	}
	m.broadcast(rgb)
	return err
}

func (m *Monitor) Close() error {
	m.mu.Lock()
	for c := range m.clients {
		c.Close()
	}
	m.clients = map[*websocket.Conn]bool{}
	m.mu.Unlock()
	if m.next != nil {
		return m.next.Close()
	}
	return nil
}

// Handler returns the monitor's HTTP routes.
func (m *Monitor) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", m.handleFrames)
	mux.HandleFunc("/health", m.handleHealth)
	return mux
}

func (m *Monitor) handleFrames(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	m.mu.Lock()
	m.clients[conn] = true
	m.mu.Unlock()

	go func() {
		defer func() {
			m.mu.Lock()
			delete(m.clients, conn)
			m.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (m *Monitor) handleHealth(w http.ResponseWriter, r *http.Request) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	resp := map[string]any{
		"frame_id": m.frameID,
		"uptime_s": time.Since(m.start).Seconds(),
		"pixels":   m.pixels,
		"clients":  len(m.clients),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (m *Monitor) broadcast(rgb []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frameID++
	if len(m.clients) == 0 {
		return
	}
	type frame struct {
		T       int64  `json:"t"`
		FrameID uint64 `json:"frame_id"`
		RGB     []byte `json:"rgb"`
	}
	b, _ := json.Marshal(frame{T: time.Now().UnixNano(), FrameID: m.frameID, RGB: rgb})
	for c := range m.clients {
		c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			m.log.Debug().Err(err).Msg("write frame")
		}
	}
}
