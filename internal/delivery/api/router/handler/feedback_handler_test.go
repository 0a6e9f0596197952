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
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newFeedbackTestServer(t *testing.T) (*echo.Echo, *mockUC.MockFeedbackUsecase) {
	feedbackUC := mockUC.NewMockFeedbackUsecase(t)
	h := NewFeedbackHandler(FeedbackHandlerParams{FeedbackUC: feedbackUC, Logger: testLogger()})

	e := newTestEcho()
	admin := as(entity.RoleAdmin, uuid.New())

	e.POST("/api/feedback", h.Submit)
	e.GET("/api/feedback/public", h.ListPublic)
	e.GET("/api/feedback", h.ListAll, admin)
	e.PATCH("/api/feedback/:id/read", h.MarkRead, admin)
	e.PATCH("/api/feedback/:id/visibility", h.SetVisibility, admin)
	e.DELETE("/api/feedback/:id", h.Delete, admin)

	return e, feedbackUC
}

func TestFeedbackHandler_Submit(t *testing.T) {
	e, feedbackUC := newFeedbackTestServer(t)

	feedbackUC.EXPECT().
		Submit(mock.Anything, &usecase.FeedbackInput{Name: "Meera", Rating: 5, Message: "Best dabeli in town"}).
		Return(&entity.Feedback{ID: uuid.New(), Name: "Meera", Rating: 5}, nil)

	rec := serveJSON(e, http.MethodPost, "/api/feedback", map[string]any{
		"name": "Meera", "rating": 5, "message": "Best dabeli in town",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.False(t, decodeJSON[entity.Feedback](t, rec).IsPublic)
}

func TestFeedbackHandler_ListPublic(t *testing.T) {
	e, feedbackUC := newFeedbackTestServer(t)
	feedbackUC.EXPECT().ListPublic(mock.Anything).Return([]*entity.Feedback{
		{ID: uuid.New(), Rating: 4, IsPublic: true, CreatedAt: time.Now()},
	}, nil)

	rec := serveJSON(e, http.MethodGet, "/api/feedback/public", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeJSON[[]entity.Feedback](t, rec), 1)
}

func TestFeedbackHandler_SetVisibility(t *testing.T) {
	id := uuid.New()

	t.Run("publish", func(t *testing.T) {
		e, feedbackUC := newFeedbackTestServer(t)
		feedbackUC.EXPECT().SetPublic(mock.Anything, id, true).Return(&entity.Feedback{ID: id, IsPublic: true}, nil)

		rec := serveJSON(e, http.MethodPatch, "/api/feedback/"+id.String()+"/visibility", map[string]any{"isPublic": true})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeJSON[entity.Feedback](t, rec).IsPublic)
	})

	t.Run("hide is not a missing value", func(t *testing.T) {
		e, feedbackUC := newFeedbackTestServer(t)
		feedbackUC.EXPECT().SetPublic(mock.Anything, id, false).Return(&entity.Feedback{ID: id}, nil)

		rec := serveJSON(e, http.MethodPatch, "/api/feedback/"+id.String()+"/visibility", map[string]any{"isPublic": false})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing flag", func(t *testing.T) {
		e, _ := newFeedbackTestServer(t)

		rec := serveJSON(e, http.MethodPatch, "/api/feedback/"+id.String()+"/visibility", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFeedbackHandler_MarkReadAndDelete(t *testing.T) {
	e, feedbackUC := newFeedbackTestServer(t)
	id := uuid.New()

	feedbackUC.EXPECT().MarkRead(mock.Anything, id).Return(&entity.Feedback{ID: id, IsRead: true}, nil)
	feedbackUC.EXPECT().Delete(mock.Anything, id).Return(domainerrors.ErrFeedbackNotFound)

	rec := serveJSON(e, http.MethodPatch, "/api/feedback/"+id.String()+"/read", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeJSON[entity.Feedback](t, rec).IsRead)

	rec = serveJSON(e, http.MethodDelete, "/api/feedback/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
