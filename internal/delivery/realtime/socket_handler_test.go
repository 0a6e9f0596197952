package realtime

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dabeli/config"
	apimiddleware "dabeli/internal/delivery/api/middleware"
	"dabeli/internal/delivery/api/response"
	"dabeli/internal/domain/entity"
	"dabeli/internal/domain/service"
	"dabeli/internal/infra/realtime"
	mockSvc "dabeli/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type socketFixture struct {
	server   *httptest.Server
	hub      *realtime.Hub
	tokenSvc *mockSvc.MockTokenService
}

func newSocketFixture(t *testing.T) socketFixture {
	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{Realtime: &config.RealtimeConfig{SendBuffer: 8, WriteTimeout: time.Second, PongTimeout: 5 * time.Second}}

	hub := realtime.NewHub(cfg, logger)
	tokenSvc := mockSvc.NewMockTokenService(t)
	h := New(hub, tokenSvc, cfg, logger)

	e := echo.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.GET("/ws", h.ServeCustomer)
	e.GET("/ws/admin", h.ServeAdmin)

	server := httptest.NewServer(e)
	t.Cleanup(func() {
		hub.CloseAll()
		server.Close()
	})

	return socketFixture{server: server, hub: hub, tokenSvc: tokenSvc}
}

func (f socketFixture) dial(t *testing.T, path string, header http.Header) (*websocket.Conn, *http.Response, error) {
	t.Helper()

	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + path
	ws, resp, err := websocket.DefaultDialer.Dial(url, header)
	if ws != nil {
		t.Cleanup(func() { _ = ws.Close() })
	}

	return ws, resp, err
}

func sendFrame(t *testing.T, ws *websocket.Conn, event string, data any) {
	t.Helper()
	require.NoError(t, ws.WriteJSON(map[string]any{"event": event, "data": data}))
}

func readFrame(t *testing.T, ws *websocket.Conn) realtime.Frame {
	t.Helper()

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame realtime.Frame
	require.NoError(t, ws.ReadJSON(&frame))

	return frame
}

func TestHandler_CustomerJoinsRoomAfterAuthentication(t *testing.T) {
	f := newSocketFixture(t)
	customerID := uuid.New()

	f.tokenSvc.EXPECT().ValidateToken("forged").Return(nil, errors.New("signature is invalid")).Once()
	f.tokenSvc.EXPECT().ValidateToken("admin-token").Return(&service.Claims{Subject: uuid.New(), Role: entity.RoleAdmin}, nil).Once()
	f.tokenSvc.EXPECT().ValidateToken("customer-token").Return(&service.Claims{Subject: customerID, Role: entity.RoleCustomer}, nil).Once()

	ws, _, err := f.dial(t, "/ws", nil)
	require.NoError(t, err)

	// Rejected attempts leave the connection open and outside any room.
	sendFrame(t, ws, "hello", nil)
	sendFrame(t, ws, EventAuthenticateCustomer, "forged")
	sendFrame(t, ws, EventAuthenticateCustomer, "admin-token")
	sendFrame(t, ws, EventAuthenticateCustomer, "Bearer customer-token")

	require.Eventually(t, func() bool {
		_, rooms, _ := f.hub.Counts()

		return rooms == 1
	}, 2*time.Second, 10*time.Millisecond)

	f.hub.SendToCustomer(uuid.New(), service.EventOrderUpdate, map[string]string{"status": "Ready"})
	f.hub.BroadcastAdmins(service.EventNewOrder, map[string]string{"status": "Pending"})
	f.hub.SendToCustomer(customerID, service.EventOrderUpdate, map[string]string{"status": "Preparing"})

	frame := readFrame(t, ws)
	assert.Equal(t, service.EventOrderUpdate, frame.Event)
	assert.Equal(t, map[string]any{"status": "Preparing"}, frame.Data)
}

func TestHandler_CustomerDisconnectLeavesHub(t *testing.T) {
	f := newSocketFixture(t)

	ws, _, err := f.dial(t, "/ws", nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, _, conns := f.hub.Counts()

		return conns == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, ws.Close())

	require.Eventually(t, func() bool {
		_, _, conns := f.hub.Counts()

		return conns == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHandler_AdminSocketRequiresAdminToken(t *testing.T) {
	f := newSocketFixture(t)

	f.tokenSvc.EXPECT().ValidateToken("customer-token").Return(&service.Claims{Subject: uuid.New(), Role: entity.RoleCustomer}, nil).Once()

	cases := []struct {
		name    string
		path    string
		header  http.Header
		message string
	}{
		{name: "missing", path: "/ws/admin", message: "No token, authorization denied"},
		{name: "customer token", path: "/ws/admin?token=customer-token", message: "Token is not valid or not an admin token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, resp, err := f.dial(t, tc.path, tc.header)
			require.ErrorIs(t, err, websocket.ErrBadHandshake)
			require.NotNil(t, resp)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			var body response.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.message, body.Msg)
		})
	}
}

func TestHandler_AdminReceivesBroadcasts(t *testing.T) {
	f := newSocketFixture(t)

	f.tokenSvc.EXPECT().ValidateToken("admin-token").Return(&service.Claims{Subject: uuid.New(), Role: entity.RoleAdmin}, nil).Once()

	ws, _, err := f.dial(t, "/ws/admin", http.Header{"Authorization": []string{"Bearer admin-token"}})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		admins, _, _ := f.hub.Counts()

		return admins == 1
	}, 2*time.Second, 10*time.Millisecond)

	f.hub.SendToCustomer(uuid.New(), service.EventCateringUpdate, map[string]string{"status": "Confirmed"})
	f.hub.BroadcastAdmins(service.EventNewCateringRequest, map[string]string{"status": "Pending Review"})

	frame := readFrame(t, ws)
	assert.Equal(t, service.EventNewCateringRequest, frame.Event)
}

func TestCheckOrigin(t *testing.T) {
	open := checkOrigin(nil)
	restricted := checkOrigin([]string{"https://dabeli.example"})

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Origin", "https://evil.example")
	assert.True(t, open(req))
	assert.False(t, restricted(req))

	req.Header.Set("Origin", "https://dabeli.example")
	assert.True(t, restricted(req))
}
