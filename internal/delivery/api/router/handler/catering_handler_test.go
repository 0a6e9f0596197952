package handler

import (
	"net/http"
	"testing"

	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	mockUC "dabeli/internal/mocks/usecase"
	"dabeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCateringTestServer(t *testing.T, customerID uuid.UUID) (*echo.Echo, *mockUC.MockCateringUsecase) {
	cateringUC := mockUC.NewMockCateringUsecase(t)
	h := NewCateringHandler(CateringHandlerParams{CateringUC: cateringUC, Logger: testLogger()})

	e := newTestEcho()
	customer := as(entity.RoleCustomer, customerID)
	admin := as(entity.RoleAdmin, uuid.New())

	e.POST("/api/catering", h.Submit, customer)
	e.GET("/api/catering/myrequests", h.MyRequests, customer)
	e.GET("/api/catering", h.ListAll, admin)
	e.GET("/api/catering/:id", h.GetRequest, admin)
	e.PATCH("/api/catering/update-status/:id", h.UpdateStatus, admin)

	return e, cateringUC
}

func TestCateringHandler_Submit(t *testing.T) {
	customerID := uuid.New()
	e, cateringUC := newCateringTestServer(t, customerID)

	cateringUC.EXPECT().
		Submit(mock.Anything, customerID, mock.MatchedBy(func(input *usecase.SubmitCateringInput) bool {
			return input.EventType == "Wedding" && input.GuestCount == 150 && len(input.MenuItems) == 1
		})).
		Return(&entity.CateringRequest{ID: uuid.New(), Status: entity.CateringStatusPendingReview}, nil)

	rec := serveJSON(e, http.MethodPost, "/api/catering", map[string]any{
		"customerName":   "Ravi",
		"customerPhone":  "9876543210",
		"eventType":      "Wedding",
		"eventDate":      "2026-12-12",
		"eventTime":      "19:00",
		"guestCount":     150,
		"menuItems":      []map[string]any{{"name": "Dabeli", "quantity": 300, "pricePerUnit": 40}},
		"estimatedTotal": 12000,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, entity.CateringStatusPendingReview, decodeJSON[entity.CateringRequest](t, rec).Status)
}

func TestCateringHandler_ListAll_StatusFilter(t *testing.T) {
	e, cateringUC := newCateringTestServer(t, uuid.New())

	cateringUC.EXPECT().
		ListRequests(mock.Anything, mock.MatchedBy(func(status *entity.CateringStatus) bool {
			return status != nil && *status == entity.CateringStatusNegotiating
		})).
		Return([]*entity.CateringRequest{{ID: uuid.New()}}, nil)
	cateringUC.EXPECT().
		ListRequests(mock.Anything, (*entity.CateringStatus)(nil)).
		Return([]*entity.CateringRequest{}, nil)

	rec := serveJSON(e, http.MethodGet, "/api/catering?status=Negotiating", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeJSON[[]entity.CateringRequest](t, rec), 1)

	rec = serveJSON(e, http.MethodGet, "/api/catering", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCateringHandler_UpdateStatus(t *testing.T) {
	requestID := uuid.New()

	t.Run("with notes", func(t *testing.T) {
		e, cateringUC := newCateringTestServer(t, uuid.New())
		cateringUC.EXPECT().
			UpdateStatus(mock.Anything, requestID, entity.CateringStatusConfirmed, mock.MatchedBy(func(notes *string) bool {
				return notes != nil && *notes == "Advance received"
			})).
			Return(&entity.CateringRequest{ID: requestID, Status: entity.CateringStatusConfirmed}, nil)

		rec := serveJSON(e, http.MethodPatch, "/api/catering/update-status/"+requestID.String(),
			map[string]any{"status": "Confirmed", "adminNotes": "Advance received"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("status required", func(t *testing.T) {
		e, _ := newCateringTestServer(t, uuid.New())

		rec := serveJSON(e, http.MethodPatch, "/api/catering/update-status/"+requestID.String(), map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})

	t.Run("unknown request", func(t *testing.T) {
		e, cateringUC := newCateringTestServer(t, uuid.New())
		cateringUC.EXPECT().
			UpdateStatus(mock.Anything, requestID, entity.CateringStatusRejected, (*string)(nil)).
			Return(nil, domainerrors.ErrCateringRequestNotFound)

		rec := serveJSON(e, http.MethodPatch, "/api/catering/update-status/"+requestID.String(), map[string]any{"status": "Rejected"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domainerrors.ErrCateringRequestNotFound.ErrorCode(), decodeError(t, rec).Code)
	})
}

func TestCateringHandler_GetRequest_BadID(t *testing.T) {
	e, _ := newCateringTestServer(t, uuid.New())

	rec := serveJSON(e, http.MethodGet, "/api/catering/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "id", decodeError(t, rec).Details[0].Field)
}
