package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Evento no encontrado"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "http://test/eventos/9", nil)
	rr := httptest.NewRecorder()
	Logging(logger, next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	out := buf.String()
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/eventos/9")
	assert.Contains(t, out, "status=404")
	assert.NotContains(t, out, "Evento no encontrado", "bodies must not be logged")
}

func TestLogging_IncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "http://test/eventos", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	rr := httptest.NewRecorder()
	RequestID(Logging(logger, next)).ServeHTTP(rr, req)

	assert.Contains(t, buf.String(), "request_id=req-1")
}
