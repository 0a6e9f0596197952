package impl

import (
	"context"
	"log/slog"

	"dabeli/config"
	deliverycontext "dabeli/internal/delivery/context"
	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/repository"
	"dabeli/internal/domain/service"
	"dabeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo         repository.OrderRepository
	customerRepo      repository.CustomerRepository
	qrCodeService     service.QRCodeService
	notifier          service.LifecycleNotifier
	strictTransitions bool
	verifyTotals      bool
	logger            *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo     repository.OrderRepository
	CustomerRepo  repository.CustomerRepository
	QRCodeService service.QRCodeService
	Notifier      service.LifecycleNotifier
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	srv := &orderService{
		orderRepo:     params.OrderRepo,
		customerRepo:  params.CustomerRepo,
		qrCodeService: params.QRCodeService,
		notifier:      params.Notifier,
		logger:        params.Logger,
	}

	if params.Config != nil && params.Config.Lifecycle != nil {
		srv.strictTransitions = params.Config.Lifecycle.StrictTransitions
		srv.verifyTotals = params.Config.Lifecycle.VerifyTotals
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder validates the order, stores it as Pending and announces it to the admins.
// A blank customer name or phone is taken from the customer's profile.
func (srv *orderService) PlaceOrder(ctx context.Context, customerID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	order := &entity.Order{
		CustomerID:      customerID,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		OrderType:       input.OrderType,
		DeliveryAddress: input.DeliveryAddress,
		Items:           input.Items,
		TotalPrice:      input.TotalPrice,
		Status:          entity.OrderStatusPending,
	}
	order.Normalize()

	if order.CustomerName == "" || order.CustomerPhone == "" {
		contact, err := loadCustomerContact(ctx, srv.customerRepo, customerID)
		if err != nil {
			return nil, err
		}

		fillIfBlank(&order.CustomerName, contact.Name)
		fillIfBlank(&order.CustomerPhone, contact.Phone)
		order.Normalize()
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	if srv.verifyTotals && !entity.TotalsMatch(order.TotalPrice, order.ComputedTotal()) {
		return nil, domainerrors.Invalid("totalPrice", "Total price does not match the order items")
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("customer_id", customerID.String()),
		slog.String("order_type", string(order.OrderType)),
	)

	srv.notifier.Notify(ctx, service.LifecycleEvent{
		Name:        service.EventNewOrder,
		CustomerID:  order.CustomerID,
		ReferenceID: order.ID,
		Status:      string(order.Status),
		OccurredAt:  order.CreatedAt,
		Payload:     order,
	})

	return order, nil
}

// UpdateStatus applies a staff status change and tells the owning customer.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.Invalid("status", "Invalid order status")
	}

	current, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order for status update")
	}

	if !current.Status.CanTransitionTo(status, srv.strictTransitions) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			"cannot move order from " + string(current.Status) + " to " + string(status),
		)
	}

	updated, err := srv.orderRepo.UpdateStatus(ctx, orderID, current.Status, status)
	if err != nil {
		if errors.Is(err, domainerrors.ErrStatusConflict) {
			srv.log(ctx).Warn("Order status changed concurrently",
				slog.String("order_id", orderID.String()),
				slog.String("expected", string(current.Status)),
			)
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("order_id", orderID.String()),
		slog.String("from", string(current.Status)),
		slog.String("to", string(updated.Status)),
	)

	srv.notifier.Notify(ctx, service.LifecycleEvent{
		Name:        service.EventOrderUpdate,
		CustomerID:  updated.CustomerID,
		ReferenceID: updated.ID,
		Status:      string(updated.Status),
		OccurredAt:  updated.UpdatedAt,
		Payload:     updated,
	})

	return updated, nil
}

func (srv *orderService) TrackByPhone(ctx context.Context, phone string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to track orders by phone")
	}

	if len(orders) == 0 {
		return nil, domainerrors.ErrNoOrdersForPhone
	}

	return orders, nil
}

func (srv *orderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return orders, nil
}

func (srv *orderService) ListOrders(ctx context.Context, filter repository.OrderFilter) (*usecase.OrderPage, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domainerrors.Invalid("status", "Invalid order status")
	}
	if filter.OrderType != nil && !filter.OrderType.IsValid() {
		return nil, domainerrors.Invalid("orderType", "Order type must be Delivery or Pickup")
	}

	filter = filter.Normalized()

	orders, total, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderPage{
		Orders: orders,
		Total:  total,
		Page:   filter.Page,
		Limit:  filter.Limit,
	}, nil
}

func (srv *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// TrackingQRCode renders the tracking QR code of one of the customer's orders.
func (srv *orderService) TrackingQRCode(ctx context.Context, customerID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order for QR code")
	}

	if order.CustomerID != customerID {
		return nil, domainerrors.ErrOrderOwnershipViolation
	}

	png, err := srv.qrCodeService.GenerateTrackingQR(order.CustomerPhone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR code")
	}

	return png, nil
}
