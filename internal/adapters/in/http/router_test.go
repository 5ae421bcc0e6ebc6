package http_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRouter_Health(t *testing.T) {
	rec := serve(newTestRouter(t, new(MockOrderRepository)), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestRouter_AssignsRequestID(t *testing.T) {
	rec := serve(newTestRouter(t, new(MockOrderRepository)), http.MethodGet, "/health", "")

	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestRouter_ServesOpenAPIDocument(t *testing.T) {
	rec := serve(newTestRouter(t, new(MockOrderRepository)), http.MethodGet, "/api/openapi.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/api/orders/{id}/status"`)
	assert.Contains(t, rec.Body.String(), `"openapi":"3.0.3"`)
}

func TestRouter_ServesSwaggerDocument(t *testing.T) {
	// a second router must not register the document twice
	_ = newTestRouter(t, new(MockOrderRepository))
	e := newTestRouter(t, new(MockOrderRepository))

	rec := serve(e, http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order Management")
}

func TestRouter_UnknownRoute_ReturnsJSONNotFound(t *testing.T) {
	rec := serve(newTestRouter(t, new(MockOrderRepository)), http.MethodGet, "/api/customers", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, int32(http.StatusNotFound), decodeError(t, rec).Code)
}

func TestRouter_NonNumericPathID_ReturnsBadRequest(t *testing.T) {
	rec := serve(newTestRouter(t, new(MockOrderRepository)), http.MethodGet, "/api/orders/first", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "Invalid format for parameter id")
}

func TestRouter_CORS(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{name: "first dev origin", origin: "http://localhost:5173", want: "http://localhost:5173"},
		{name: "second dev origin", origin: "http://localhost:5174", want: "http://localhost:5174"},
		{name: "other origin", origin: "http://example.com", want: ""},
	}

	e := newTestRouter(t, new(MockOrderRepository))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
			req.Header.Set(echo.HeaderOrigin, tt.origin)
			req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		})
	}
}
