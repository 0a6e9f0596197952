package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/repository"
	mockUC "dabeli/internal/mocks/usecase"
	"dabeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMenuTestServer(t *testing.T) (*echo.Echo, *mockUC.MockMenuUsecase) {
	menuUC := mockUC.NewMockMenuUsecase(t)
	h := NewMenuHandler(MenuHandlerParams{MenuUC: menuUC, Logger: testLogger()})

	e := newTestEcho()
	admin := as(entity.RoleAdmin, uuid.New())

	e.GET("/images/*", h.ServeImage)
	e.GET("/api/menu", h.ListMenu)
	e.POST("/api/menu/upload", h.UploadImage, admin)
	e.PATCH("/api/menu/:id/stock", h.SetInStock, admin)

	return e, menuUC
}

func multipartImage(t *testing.T, field, filename string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/menu/upload", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestMenuHandler_ListMenu_Filters(t *testing.T) {
	e, menuUC := newMenuTestServer(t)

	menuUC.EXPECT().
		ListMenu(mock.Anything, mock.MatchedBy(func(filter repository.MenuFilter) bool {
			return filter.Category != nil && *filter.Category == "Snacks" &&
				filter.Featured != nil && *filter.Featured &&
				filter.InStock == nil
		})).
		Return([]*entity.MenuItem{{ID: uuid.New(), Name: "Dabeli"}}, nil)

	rec := serveJSON(e, http.MethodGet, "/api/menu?category=Snacks&featured=true", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeJSON[[]entity.MenuItem](t, rec), 1)

	rec = serveJSON(e, http.MethodGet, "/api/menu?inStock=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMenuHandler_SetInStock(t *testing.T) {
	e, menuUC := newMenuTestServer(t)
	id := uuid.New()

	rec := serveJSON(e, http.MethodPatch, "/api/menu/"+id.String()+"/stock", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	menuUC.EXPECT().SetInStock(mock.Anything, id, false).Return(&entity.MenuItem{ID: id, InStock: false}, nil)

	rec = serveJSON(e, http.MethodPatch, "/api/menu/"+id.String()+"/stock", map[string]any{"inStock": false})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMenuHandler_UploadImage(t *testing.T) {
	e, menuUC := newMenuTestServer(t)
	png := []byte("\x89PNG\r\n\x1a\n")

	menuUC.EXPECT().
		UploadImage(mock.Anything, mock.MatchedBy(func(upload *usecase.ImageUpload) bool {
			return upload.Filename == "dabeli.png" && bytes.Equal(upload.Data, png)
		})).
		Return("http://localhost:8080/images/menu/abc.png", nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartImage(t, "image", "dabeli.png", png))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "http://localhost:8080/images/menu/abc.png", decodeJSON[map[string]string](t, rec)["imageUrl"])
}

func TestMenuHandler_UploadImage_MissingFile(t *testing.T) {
	e, _ := newMenuTestServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartImage(t, "photo", "dabeli.png", []byte("x")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Image file is required", decodeError(t, rec).Msg)
}

func TestMenuHandler_UploadImage_Rejected(t *testing.T) {
	e, menuUC := newMenuTestServer(t)

	menuUC.EXPECT().
		UploadImage(mock.Anything, mock.Anything).
		Return("", domainerrors.Invalid("image", "Only image files are allowed"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartImage(t, "image", "notes.txt", []byte("hello")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Only image files are allowed", decodeError(t, rec).Msg)
}

func TestMenuHandler_ServeImage(t *testing.T) {
	e, menuUC := newMenuTestServer(t)

	menuUC.EXPECT().
		OpenImage(mock.Anything, "menu/abc.png").
		Return(io.NopCloser(strings.NewReader("png-bytes")), "image/png", nil)
	menuUC.EXPECT().
		OpenImage(mock.Anything, "menu/missing.png").
		Return(nil, "", domainerrors.ErrNotFound)

	rec := serveJSON(e, http.MethodGet, "/images/menu/abc.png", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "png-bytes", rec.Body.String())

	rec = serveJSON(e, http.MethodGet, "/images/menu/missing.png", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
