package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consentry/internal/platform/metrics"
)

func TestContentTypeJSON(t *testing.T) {
	cases := []struct {
		name        string
		method      string
		contentType string
		wantStatus  int
	}{
		{"json accepted", http.MethodPost, "application/json", http.StatusOK},
		{"json with charset accepted", http.MethodPost, "application/json; charset=utf-8", http.StatusOK},
		{"absent content type accepted", http.MethodPost, "", http.StatusOK},
		{"text rejected", http.MethodPost, "text/plain", http.StatusUnsupportedMediaType},
		{"malformed header rejected", http.MethodPost, ";;", http.StatusUnsupportedMediaType},
		{"get ignores content type", http.MethodGet, "text/plain", http.StatusOK},
	}

	handler := ContentTypeJSON(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/save", nil)
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestRouteLabel_UsesRoutePattern(t *testing.T) {
	var label string
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req)
			label = routeLabel(req)
		})
	})
	r.Delete("/delete-location/{consentId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodDelete, "/delete-location/abc123", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "/delete-location/{consentId}", label)
}

func TestRouteLabel_NoRouteContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	assert.Equal(t, "unmatched", routeLabel(req))
}

// TestLatency_BoundedCardinality verifies that distinct path parameters share
// one metric series, so arbitrary IDs cannot grow the histogram without bound.
func TestLatency_BoundedCardinality(t *testing.T) {
	m := metrics.New()

	r := chi.NewRouter()
	r.Use(Latency(m))
	r.Delete("/delete-location/{consentId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"abc123", "def456", "ghi789"} {
		req := httptest.NewRequest(http.MethodDelete, "/delete-location/"+id, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	ch := make(chan prometheus.Metric, 16)
	m.RequestDuration.Collect(ch)
	close(ch)

	series := 0
	for range ch {
		series++
	}
	require.Equal(t, 1, series, "distinct consent IDs must collapse into one series")
}
