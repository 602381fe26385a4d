package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovasilescu/travel-planner/internal/middleware"
)

// readAllHandler drains the body, writing 413 when the limit is exceeded.
func readAllHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestMaxBodySize_UnderLimit(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(64)(readAllHandler())

	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader("small body"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMaxBodySize_OverLimit(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(8)(readAllHandler())

	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(strings.Repeat("x", 64)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
