package handler

import (
	"net/http"
	"testing"
	"time"

	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/repository"
	mockUC "dabeli/internal/mocks/usecase"
	"dabeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderTestServer(t *testing.T, customerID uuid.UUID) (*echo.Echo, *mockUC.MockOrderUsecase) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: testLogger()})

	e := newTestEcho()
	customer := as(entity.RoleCustomer, customerID)
	admin := as(entity.RoleAdmin, uuid.New())

	e.POST("/api/orders", h.PlaceOrder, customer)
	e.POST("/api/orders/anonymous", h.PlaceOrder)
	e.GET("/api/orders/track/:phone", h.TrackByPhone)
	e.GET("/api/orders/myorders", h.MyOrders, customer)
	e.GET("/api/orders/:id/qr", h.TrackingQRCode, customer)
	e.GET("/api/orders", h.ListOrders, admin)
	e.PATCH("/api/orders/update/:id", h.UpdateStatus, admin)

	return e, orderUC
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	customerID := uuid.New()
	e, orderUC := newOrderTestServer(t, customerID)
	orderID := uuid.New()

	orderUC.EXPECT().
		PlaceOrder(mock.Anything, customerID, mock.MatchedBy(func(input *usecase.PlaceOrderInput) bool {
			return input.CustomerName == "Asha" &&
				input.OrderType == entity.OrderTypePickup &&
				len(input.Items) == 1 && input.Items[0].Quantity == 2
		})).
		Return(&entity.Order{ID: orderID, CustomerID: customerID, Status: entity.OrderStatusPending}, nil)

	rec := serveJSON(e, http.MethodPost, "/api/orders", map[string]any{
		"customerName":  "Asha",
		"customerPhone": "9876543210",
		"orderType":     "Pickup",
		"items":         []map[string]any{{"name": "Dabeli", "price": 40, "quantity": 2}},
		"totalPrice":    80,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	order := decodeJSON[entity.Order](t, rec)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestOrderHandler_PlaceOrder_RequiresSubject(t *testing.T) {
	e, _ := newOrderTestServer(t, uuid.New())

	rec := serveJSON(e, http.MethodPost, "/api/orders/anonymous", map[string]any{"customerName": "Asha"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerrors.ErrTokenInvalid.ErrorCode(), decodeError(t, rec).Code)
}

func TestOrderHandler_PlaceOrder_MalformedBody(t *testing.T) {
	e, _ := newOrderTestServer(t, uuid.New())

	rec := serveJSON(e, http.MethodPost, "/api/orders", `{"items": "nope"`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Code)
	assert.Equal(t, "Invalid request body", body.Msg)
}

func TestOrderHandler_TrackByPhone_NoOrders(t *testing.T) {
	e, orderUC := newOrderTestServer(t, uuid.New())

	orderUC.EXPECT().TrackByPhone(mock.Anything, "0000000000").Return(nil, domainerrors.ErrNoOrdersForPhone)

	rec := serveJSON(e, http.MethodGet, "/api/orders/track/0000000000", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "NO_ORDERS_FOR_PHONE", body.Code)
	assert.Equal(t, "No orders found for this phone number", body.Msg)
}

func TestOrderHandler_MyOrders(t *testing.T) {
	customerID := uuid.New()
	e, orderUC := newOrderTestServer(t, customerID)

	orderUC.EXPECT().
		ListCustomerOrders(mock.Anything, customerID).
		Return([]*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	rec := serveJSON(e, http.MethodGet, "/api/orders/myorders", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeJSON[[]entity.Order](t, rec), 2)
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	e, orderUC := newOrderTestServer(t, uuid.New())
	orderID := uuid.New()

	t.Run("missing status", func(t *testing.T) {
		rec := serveJSON(e, http.MethodPatch, "/api/orders/update/"+orderID.String(), map[string]any{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body.Code)
		if assert.Len(t, body.Details, 1) {
			assert.Equal(t, "status", body.Details[0].Field)
		}
	})

	t.Run("bad id", func(t *testing.T) {
		rec := serveJSON(e, http.MethodPatch, "/api/orders/update/42", map[string]any{"status": "Ready"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "id", decodeError(t, rec).Details[0].Field)
	})

	t.Run("not found", func(t *testing.T) {
		orderUC.EXPECT().
			UpdateStatus(mock.Anything, orderID, entity.OrderStatusReady).
			Return(nil, domainerrors.ErrOrderNotFound).Once()

		rec := serveJSON(e, http.MethodPatch, "/api/orders/update/"+orderID.String(), map[string]any{"status": "Ready"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Order not found", decodeError(t, rec).Msg)
	})

	t.Run("updated", func(t *testing.T) {
		orderUC.EXPECT().
			UpdateStatus(mock.Anything, orderID, entity.OrderStatusReady).
			Return(&entity.Order{ID: orderID, Status: entity.OrderStatusReady}, nil).Once()

		rec := serveJSON(e, http.MethodPatch, "/api/orders/update/"+orderID.String(), map[string]any{"status": "Ready"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, entity.OrderStatusReady, decodeJSON[entity.Order](t, rec).Status)
	})
}

func TestOrderHandler_ListOrders_ParsesFilters(t *testing.T) {
	e, orderUC := newOrderTestServer(t, uuid.New())

	orderUC.EXPECT().
		ListOrders(mock.Anything, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.Status != nil && *filter.Status == entity.OrderStatusPending &&
				filter.OrderType == nil &&
				filter.From.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) &&
				filter.To.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)) &&
				filter.Page == 2 && filter.Limit == 10
		})).
		Return(&usecase.OrderPage{Orders: []*entity.Order{}, Total: 12, Page: 2, Limit: 10}, nil)

	rec := serveJSON(e, http.MethodGet, "/api/orders?status=Pending&from=2025-01-01&to=2025-01-31&page=2&limit=10", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	page := decodeJSON[usecase.OrderPage](t, rec)
	assert.EqualValues(t, 12, page.Total)
}

func TestOrderHandler_ListOrders_BadQuery(t *testing.T) {
	e, _ := newOrderTestServer(t, uuid.New())

	for _, query := range []string{"from=yesterday", "to=2025-13-01", "page=two"} {
		rec := serveJSON(e, http.MethodGet, "/api/orders?"+query, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestOrderHandler_TrackingQRCode(t *testing.T) {
	customerID := uuid.New()
	e, orderUC := newOrderTestServer(t, customerID)
	orderID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	orderUC.EXPECT().TrackingQRCode(mock.Anything, customerID, orderID).Return(png, nil)

	rec := serveJSON(e, http.MethodGet, "/api/orders/"+orderID.String()+"/qr", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
