package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDGenerated(t *testing.T) {
	var gotID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetRequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/player", nil)
	rec := httptest.NewRecorder()
	RequestID(zerolog.Nop())(next).ServeHTTP(rec, req)

	assert.NotEmpty(t, gotID)
	assert.Equal(t, gotID, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDPropagated(t *testing.T) {
	var gotID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetRequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/player", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	RequestID(zerolog.Nop())(next).ServeHTTP(rec, req)

	assert.Equal(t, "req-42", gotID)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
}
