package platform

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
)

// HealthStatus is the body served by /health.
type HealthStatus struct {
	Status string `json:"status"`
}

// Health counts the request and reports liveness. It performs no dependency
// checks and never fails.
func Health(m *Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.IncRequest(http.MethodGet, "/health")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(HealthStatus{Status: "healthy"})
	}
}

// Home counts the request, then waits for delay and renders page. Both the
// wait and the render are timed into the duration histogram.
func Home(m *Metrics, page templ.Component, delay DelayFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.IncRequest(http.MethodGet, "/")

		var buf bytes.Buffer
		err := m.Time(func() error {
			time.Sleep(delay())
			return page.Render(r.Context(), &buf)
		})
		if err != nil {
			slog.Error("render home page", "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}
