// Package realtime holds the in-process fan-out hub behind the websocket endpoints.
//
// A connection is either on the admin audience or a customer connection. Customer
// connections start unauthenticated and join the room of one customer once their
// token verifies. Delivery is best-effort: a full send buffer drops the frame.
package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"dabeli/config"
	"dabeli/internal/domain/service"

	"github.com/google/uuid"
)

const defaultSendBuffer = 32

// Frame is the envelope written to sockets.
type Frame struct {
	Event service.EventName `json:"event"`
	Data  any               `json:"data"`
}

// ConnState is where a connection sits in the authentication handshake.
type ConnState int

const (
	StateUnauthenticated ConnState = iota
	StateAuthenticated
	StateAdmin
	StateClosed
)

func (s ConnState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	case StateAdmin:
		return "admin"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Conn is one registered socket. Its send channel is closed when it unregisters.
type Conn struct {
	ID uuid.UUID

	send chan []byte

	// guarded by Hub.mu
	state      ConnState
	customerID uuid.UUID
}

// Send is the queue the socket writer drains.
func (c *Conn) Send() <-chan []byte {
	return c.send
}

// Hub routes lifecycle frames to admin connections and customer rooms.
type Hub struct {
	logger *slog.Logger
	buffer int

	mu     sync.RWMutex
	admins map[*Conn]struct{}
	rooms  map[uuid.UUID]map[*Conn]struct{}
	conns  map[*Conn]struct{}
}

// NewHub constructs an empty hub.
func NewHub(cfg *config.Config, logger *slog.Logger) *Hub {
	buffer := defaultSendBuffer
	if cfg != nil && cfg.Realtime != nil && cfg.Realtime.SendBuffer > 0 {
		buffer = cfg.Realtime.SendBuffer
	}

	return &Hub{
		logger: logger,
		buffer: buffer,
		admins: make(map[*Conn]struct{}),
		rooms:  make(map[uuid.UUID]map[*Conn]struct{}),
		conns:  make(map[*Conn]struct{}),
	}
}

// Register adds an unauthenticated customer connection.
func (h *Hub) Register() *Conn {
	return h.register(StateUnauthenticated)
}

// RegisterAdmin adds a connection to the admin audience.
func (h *Hub) RegisterAdmin() *Conn {
	return h.register(StateAdmin)
}

func (h *Hub) register(state ConnState) *Conn {
	conn := &Conn{
		ID:    uuid.New(),
		send:  make(chan []byte, h.buffer),
		state: state,
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	if state == StateAdmin {
		h.admins[conn] = struct{}{}
	}
	h.mu.Unlock()

	h.logger.Info("Realtime connection registered",
		slog.String("conn_id", conn.ID.String()),
		slog.String("state", state.String()),
	)

	return conn
}

// Authenticate moves a customer connection into the room of customerID.
// A connection that re-authenticates leaves its previous room.
func (h *Hub) Authenticate(conn *Conn, customerID uuid.UUID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn.state != StateUnauthenticated && conn.state != StateAuthenticated {
		return false
	}

	if conn.state == StateAuthenticated {
		h.leaveRoomLocked(conn)
	}

	room, ok := h.rooms[customerID]
	if !ok {
		room = make(map[*Conn]struct{})
		h.rooms[customerID] = room
	}
	room[conn] = struct{}{}
	conn.state = StateAuthenticated
	conn.customerID = customerID

	return true
}

// Unregister removes the connection and closes its send channel. It is idempotent.
func (h *Hub) Unregister(conn *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn.state == StateClosed {
		return
	}

	switch conn.state {
	case StateAdmin:
		delete(h.admins, conn)
	case StateAuthenticated:
		h.leaveRoomLocked(conn)
	}
	delete(h.conns, conn)
	conn.state = StateClosed
	close(conn.send)
}

func (h *Hub) leaveRoomLocked(conn *Conn) {
	room := h.rooms[conn.customerID]
	delete(room, conn)
	if len(room) == 0 {
		delete(h.rooms, conn.customerID)
	}
	conn.customerID = uuid.Nil
}

// CloseAll unregisters every connection so socket writers can say goodbye.
func (h *Hub) CloseAll() {
	h.mu.RLock()
	conns := make([]*Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		h.Unregister(conn)
	}

	h.logger.Info("Realtime hub closed", slog.Int("connections", len(conns)))
}

// State reports where conn is in the handshake.
func (h *Hub) State(conn *Conn) ConnState {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return conn.state
}

// BroadcastAdmins sends to every admin connection.
func (h *Hub) BroadcastAdmins(event service.EventName, payload any) {
	msg, ok := h.encode(event, payload)
	if !ok {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn := range h.admins {
		h.deliverLocked(conn, event, msg)
	}
}

// SendToCustomer sends to every authenticated connection of the customer.
func (h *Hub) SendToCustomer(customerID uuid.UUID, event service.EventName, payload any) {
	msg, ok := h.encode(event, payload)
	if !ok {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn := range h.rooms[customerID] {
		h.deliverLocked(conn, event, msg)
	}
}

// Counts returns the number of admin connections, customer rooms and total connections.
func (h *Hub) Counts() (admins, rooms, conns int) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.admins), len(h.rooms), len(h.conns)
}

func (h *Hub) encode(event service.EventName, payload any) ([]byte, bool) {
	msg, err := json.Marshal(Frame{Event: event, Data: payload})
	if err != nil {
		h.logger.Error("Failed to encode realtime frame",
			slog.String("event", string(event)),
			slog.Any("error", err),
		)

		return nil, false
	}

	return msg, true
}

// deliverLocked never blocks; a slow socket loses the frame instead of stalling the hub.
func (h *Hub) deliverLocked(conn *Conn, event service.EventName, msg []byte) {
	select {
	case conn.send <- msg:
	default:
		h.logger.Warn("Realtime send buffer full, dropping frame",
			slog.String("conn_id", conn.ID.String()),
			slog.String("event", string(event)),
		)
	}
}
