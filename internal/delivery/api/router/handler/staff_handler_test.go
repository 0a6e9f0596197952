package handler

import (
	"net/http"
	"testing"
	"time"

	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	mockUC "dabeli/internal/mocks/usecase"
	"dabeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminHandler_Login(t *testing.T) {
	adminUC := mockUC.NewMockAdminUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{AdminUC: adminUC, Logger: testLogger()})
	e := newTestEcho()
	e.POST("/api/admin/login", h.Login)

	adminUC.EXPECT().Login(mock.Anything, "counter", "s3cret-pass").
		Return(&usecase.AdminAuthOutput{Token: "jwt", Admin: &entity.Admin{ID: uuid.New(), Username: "counter"}}, nil)
	adminUC.EXPECT().Login(mock.Anything, "counter", "wrong").
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := serveJSON(e, http.MethodPost, "/api/admin/login", map[string]string{"username": "counter", "password": "s3cret-pass"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jwt", decodeJSON[usecase.AdminAuthOutput](t, rec).Token)

	rec = serveJSON(e, http.MethodPost, "/api/admin/login", map[string]string{"username": "counter", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, decodeError(t, rec).Details)

	rec = serveJSON(e, http.MethodPost, "/api/admin/login", map[string]string{"username": "counter"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportHandler_SalesReport(t *testing.T) {
	reportUC := mockUC.NewMockReportUsecase(t)
	h := NewReportHandler(ReportHandlerParams{ReportUC: reportUC, Logger: testLogger()})
	e := newTestEcho()
	e.GET("/api/reports/sales", h.SalesReport, as(entity.RoleAdmin, uuid.New()))

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	reportUC.EXPECT().
		SalesReport(mock.Anything,
			mock.MatchedBy(func(got *time.Time) bool { return got != nil && got.Equal(from) }),
			mock.MatchedBy(func(got *time.Time) bool { return got != nil && got.Equal(to) }),
		).
		Return(&entity.SalesReport{From: from, To: to, OrderCount: 12, Revenue: 960}, nil)
	reportUC.EXPECT().
		SalesReport(mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).
		Return(&entity.SalesReport{}, nil)

	rec := serveJSON(e, http.MethodGet, "/api/reports/sales?from=2026-03-01&to=2026-03-31", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 12, decodeJSON[entity.SalesReport](t, rec).OrderCount)

	rec = serveJSON(e, http.MethodGet, "/api/reports/sales", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serveJSON(e, http.MethodGet, "/api/reports/sales?from=March", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "from", decodeError(t, rec).Details[0].Field)
}

func TestDeviceHandler(t *testing.T) {
	customerID := uuid.New()
	deviceUC := mockUC.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: testLogger()})

	e := newTestEcho()
	customer := as(entity.RoleCustomer, customerID)
	e.POST("/api/devices", h.RegisterDevice, customer)
	e.GET("/api/devices", h.GetCustomerDevices, customer)
	e.PUT("/api/devices/:id/token", h.UpdateFCMToken, customer)
	e.DELETE("/api/devices/:id", h.DeactivateDevice, customer)

	deviceID := uuid.New()

	t.Run("register", func(t *testing.T) {
		deviceUC.EXPECT().
			RegisterDevice(mock.Anything, customerID, &usecase.DeviceInfo{FCMToken: "tok", DeviceID: "pixel-8", Platform: "android"}).
			Return(&entity.CustomerDevice{ID: deviceID, CustomerID: customerID, IsActive: true}, nil).
			Once()

		rec := serveJSON(e, http.MethodPost, "/api/devices", map[string]string{"fcmToken": "tok", "deviceId": "pixel-8", "platform": "android"})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("register rejects unknown platform", func(t *testing.T) {
		rec := serveJSON(e, http.MethodPost, "/api/devices", map[string]string{"fcmToken": "tok", "deviceId": "nokia", "platform": "symbian"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		deviceUC.EXPECT().GetCustomerDevices(mock.Anything, customerID).
			Return([]*entity.CustomerDevice{{ID: deviceID}}, nil).Once()

		rec := serveJSON(e, http.MethodGet, "/api/devices", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeJSON[[]entity.CustomerDevice](t, rec), 1)
	})

	t.Run("update token of someone else's device", func(t *testing.T) {
		deviceUC.EXPECT().UpdateFCMToken(mock.Anything, customerID, deviceID, "fresh").
			Return(domainerrors.ErrDeviceOwnershipViolation).Once()

		rec := serveJSON(e, http.MethodPut, "/api/devices/"+deviceID.String()+"/token", map[string]string{"fcmToken": "fresh"})
		assert.Equal(t, domainerrors.ErrDeviceOwnershipViolation.HTTPCode(), rec.Code)
	})

	t.Run("deactivate", func(t *testing.T) {
		deviceUC.EXPECT().DeactivateDevice(mock.Anything, customerID, deviceID).Return(nil).Once()

		rec := serveJSON(e, http.MethodDelete, "/api/devices/"+deviceID.String(), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, msgDeviceDeactivated, decodeJSON[map[string]string](t, rec)["msg"])
	})
}
