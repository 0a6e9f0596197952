// Package realtime serves the websocket endpoints backed by the in-process hub.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"dabeli/config"
	"dabeli/internal/delivery/api/middleware"
	deliverycontext "dabeli/internal/delivery/context"
	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/service"
	"dabeli/internal/infra/realtime"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// EventAuthenticateCustomer is the only frame clients send.
	EventAuthenticateCustomer = "authenticate_customer"

	maxInboundFrameBytes = 8 << 10
	defaultWriteTimeout  = 10 * time.Second
	defaultPongTimeout   = 60 * time.Second
)

// inboundFrame is a client to server message.
type inboundFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// HandlerParams holds dependencies for the socket handler, injected by Fx.
type HandlerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Hub          *realtime.Hub
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// Handler upgrades /ws and /ws/admin and pumps hub frames to the sockets.
type Handler struct {
	hub                 *realtime.Hub
	tokenSvc            service.TokenService
	upgrader            websocket.Upgrader
	writeTimeout        time.Duration
	pongTimeout         time.Duration
	pingPeriod          time.Duration
	allowAnonymousAdmin bool
	logger              *slog.Logger
}

// NewHandler is the Fx constructor; shutdown closes every open socket.
func NewHandler(params HandlerParams) *Handler {
	h := New(params.Hub, params.TokenService, params.Config, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Hub.CloseAll()

			return nil
		},
	})

	return h
}

// New builds a socket handler.
func New(hub *realtime.Hub, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *Handler {
	h := &Handler{
		hub:          hub,
		tokenSvc:     tokenSvc,
		writeTimeout: defaultWriteTimeout,
		pongTimeout:  defaultPongTimeout,
		logger:       logger,
	}

	var allowedOrigins []string
	if cfg != nil && cfg.Realtime != nil {
		if cfg.Realtime.WriteTimeout > 0 {
			h.writeTimeout = cfg.Realtime.WriteTimeout
		}
		if cfg.Realtime.PongTimeout > 0 {
			h.pongTimeout = cfg.Realtime.PongTimeout
		}
		allowedOrigins = cfg.Realtime.AllowedOrigins
		h.allowAnonymousAdmin = cfg.Realtime.AllowAnonymousAdmin
	}
	// Pings must go out before the peer's read deadline passes.
	h.pingPeriod = h.pongTimeout * 9 / 10

	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin(allowedOrigins),
	}

	return h
}

func checkOrigin(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")

		return origin == "" || slices.Contains(allowed, origin)
	}
}

// ServeCustomer accepts a customer socket. It joins a room only after authenticate_customer.
func (h *Handler) ServeCustomer(c echo.Context) error {
	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered the request.
		h.log(c).Debug("Websocket upgrade failed", slog.Any("error", err))

		return nil
	}

	conn := h.hub.Register()
	logger := h.log(c).With(slog.String("conn_id", conn.ID.String()))

	go h.writePump(ws, conn, logger)
	h.readPump(ws, conn, func(data []byte) {
		h.handleCustomerFrame(logger, conn, data)
	})

	return nil
}

// ServeAdmin accepts an admin socket, which listens to the admin audience right away.
func (h *Handler) ServeAdmin(c echo.Context) error {
	if !h.allowAnonymousAdmin {
		if err := h.authorizeAdmin(c); err != nil {
			return err
		}
	}

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log(c).Debug("Websocket upgrade failed", slog.Any("error", err))

		return nil
	}

	conn := h.hub.RegisterAdmin()
	logger := h.log(c).With(slog.String("conn_id", conn.ID.String()))

	go h.writePump(ws, conn, logger)
	h.readPump(ws, conn, nil)

	return nil
}

// authorizeAdmin reads the token from the Authorization header or, for browsers, ?token=.
func (h *Handler) authorizeAdmin(c echo.Context) error {
	token := middleware.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if token == "" {
		token = c.QueryParam("token")
	}
	if token == "" {
		return domainerrors.ErrNoToken
	}

	claims, err := h.tokenSvc.ValidateToken(token)
	if err != nil {
		return domainerrors.ErrTokenInvalid
	}
	if claims.Role != entity.RoleAdmin {
		return domainerrors.ErrNotAdminToken
	}

	return nil
}

// handleCustomerFrame logs and ignores anything but a valid customer token.
func (h *Handler) handleCustomerFrame(logger *slog.Logger, conn *realtime.Conn, data []byte) {
	var frame inboundFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		logger.Debug("Ignoring malformed realtime frame", slog.Any("error", err))

		return
	}

	if frame.Event != EventAuthenticateCustomer {
		logger.Debug("Ignoring realtime frame", slog.String("event", frame.Event))

		return
	}

	var raw string
	if err := json.Unmarshal(frame.Data, &raw); err != nil {
		logger.Warn("Realtime authentication without token")

		return
	}

	claims, err := h.tokenSvc.ValidateToken(middleware.BearerToken(raw))
	if err != nil {
		logger.Warn("Realtime authentication rejected", slog.Any("error", err))

		return
	}

	if claims.Role != entity.RoleCustomer {
		logger.Warn("Realtime authentication rejected", slog.String("role", claims.Role.String()))

		return
	}

	if h.hub.Authenticate(conn, claims.Subject) {
		logger.Info("Realtime connection joined customer room", slog.String("customer_id", claims.Subject.String()))
	}
}

// readPump owns the read side and unregisters the connection when the peer goes away.
func (h *Handler) readPump(ws *websocket.Conn, conn *realtime.Conn, onFrame func([]byte)) {
	defer h.hub.Unregister(conn)

	ws.SetReadLimit(maxInboundFrameBytes)
	_ = ws.SetReadDeadline(time.Now().Add(h.pongTimeout))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(h.pongTimeout))
	})

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			return
		}

		_ = ws.SetReadDeadline(time.Now().Add(h.pongTimeout))
		if onFrame != nil {
			onFrame(data)
		}
	}
}

// writePump is the only writer of ws. It exits when the hub closes the send queue.
func (h *Handler) writePump(ws *websocket.Conn, conn *realtime.Conn, logger *slog.Logger) {
	ticker := time.NewTicker(h.pingPeriod)
	defer func() {
		ticker.Stop()
		_ = ws.Close()
	}()

	for {
		select {
		case msg, ok := <-conn.Send():
			_ = ws.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if !ok {
				_ = ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))

				return
			}

			if err := ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Debug("Realtime write failed", slog.Any("error", err))

				return
			}

		case <-ticker.C:
			_ = ws.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Handler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}
