package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/diegok/handpong/internal/protocol"
)

const (
	maxMessageSize  = 64 * 1024
	shutdownTimeout = 5 * time.Second
)

// wireHand is a hand as a tracker sends it. Records are decoded one by
// one so a bad record only loses its own paddle.
type wireHand struct {
	Type string          `json:"type"`
	BBox json.RawMessage `json:"bbox"`
}

type wireFrame struct {
	Hands []wireHand `json:"hands"`
}

// Hub accepts hand-tracker connections and keeps the latest frame.
// It also serves the latest published game state for external overlays.
type Hub struct {
	addr       string
	staleAfter time.Duration
	clock      quartz.Clock
	logger     *log.Logger
	upgrader   websocket.Upgrader
	router     chi.Router

	mu     sync.RWMutex
	latest []protocol.HandRecord
	seen   time.Time
	state  protocol.GameState
	conns  map[*websocket.Conn]struct{}
	frames int
}

// NewHub creates a hub that will listen on addr
func NewHub(addr string, staleAfter time.Duration, clock quartz.Clock, logger *log.Logger) *Hub {
	h := &Hub{
		addr:       addr,
		staleAfter: staleAfter,
		clock:      clock,
		logger:     logger.WithPrefix("tracker"),
		upgrader: websocket.Upgrader{
			// Trackers run locally and are not browsers
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		conns: make(map[*websocket.Conn]struct{}),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/hands", h.handleHands)
	r.Get("/state", h.handleState)
	r.Get("/health", h.handleHealth)
	h.router = r

	return h
}

// Handler exposes the routes, mainly for tests
func (h *Hub) Handler() http.Handler {
	return h.router
}

// Serve listens until ctx is cancelled
func (h *Hub) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.addr)
	if err != nil {
		return fmt.Errorf("failed to start tracker hub: %w", err)
	}
	return h.serve(ctx, ln)
}

func (h *Hub) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           h.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("Listening for hand trackers", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		h.logger.Error("Tracker hub failed to shut down gracefully", "error", err)
	}
	h.closeAll()
	return nil
}

// Hands returns the hands of the latest frame, left side first. A frame
// older than the stale window yields nothing so a lost tracker stops
// moving the paddles.
func (h *Hub) Hands() []protocol.HandRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.latest) == 0 || h.clock.Since(h.seen) > h.staleAfter {
		return nil
	}
	hands := make([]protocol.HandRecord, len(h.latest))
	copy(hands, h.latest)
	return hands
}

// Publish stores the state served on /state
func (h *Hub) Publish(state protocol.GameState) {
	h.mu.Lock()
	h.state = state
	h.mu.Unlock()
}

// Connections returns the number of connected trackers
func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Frames returns how many frames have been accepted
func (h *Hub) Frames() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.frames
}

func (h *Hub) accept(frame protocol.HandFrame) {
	now := h.clock.Now()

	hands := make([]protocol.HandRecord, 0, len(frame.Hands))
	for _, hand := range frame.Hands {
		if hand.Side != protocol.SideLeft && hand.Side != protocol.SideRight {
			continue
		}
		hands = append(hands, hand)
	}
	sort.SliceStable(hands, func(i, j int) bool {
		return hands[i].Side < hands[j].Side
	})

	h.mu.Lock()
	defer h.mu.Unlock()

	h.frames++
	h.latest = hands
	h.seen = now
}

// decodeFrame parses a tracker message, skipping records with an unknown
// side or a bad box.
func (h *Hub) decodeFrame(data []byte) (protocol.HandFrame, error) {
	var raw wireFrame
	if err := json.Unmarshal(data, &raw); err != nil {
		return protocol.HandFrame{}, err
	}

	frame := protocol.HandFrame{Hands: make([]protocol.HandRecord, 0, len(raw.Hands))}
	for _, wh := range raw.Hands {
		var rec protocol.HandRecord
		if err := rec.Side.UnmarshalText([]byte(wh.Type)); err != nil {
			h.logger.Debug("Skipping hand", "error", err)
			continue
		}
		if err := json.Unmarshal(wh.BBox, &rec.BBox); err != nil {
			h.logger.Debug("Skipping hand", "side", rec.Side, "error", err)
			continue
		}
		frame.Hands = append(frame.Hands, rec)
	}
	return frame, nil
}

func (h *Hub) handleHands(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	total := len(h.conns)
	h.mu.Unlock()
	h.logger.Info("Tracker connected", "remote", r.RemoteAddr, "total", total)

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		total := len(h.conns)
		h.mu.Unlock()
		_ = conn.Close()
		h.logger.Info("Tracker disconnected", "remote", r.RemoteAddr, "total", total)
	}()

	conn.SetReadLimit(maxMessageSize)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("Tracker connection error", "error", err)
			}
			return
		}

		frame, err := h.decodeFrame(data)
		if err != nil {
			h.logger.Warn("Dropping malformed frame", "error", err)
			continue
		}
		h.accept(frame)
		h.logger.Debug("Frame received", "hands", len(frame.Hands))
	}
}

func (h *Hub) handleState(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	state := h.state
	h.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(state); err != nil {
		h.logger.Error("Failed to write state", "error", err)
	}
}

func (h *Hub) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		_ = conn.Close()
	}
}
