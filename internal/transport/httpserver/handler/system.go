package handler

import (
	"net/http"
	"strings"
)

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type responseTimeResponse struct {
	Route     string  `json:"route"`
	AverageMS float64 `json:"average_ms"`
	Samples   int     `json:"samples"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.ping == nil {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "unknown"})
		return
	}

	if err := h.ping(r.Context()); err != nil {
		h.log.InternalError("health.check: database ping failed", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "degraded", Database: "down"})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "up"})
}

func (h *Handlers) ResponseTimes(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	route := strings.TrimSpace(r.URL.Query().Get("route"))
	if route == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "route is required")
		return
	}
	if h.perf == nil {
		writeJSON(w, http.StatusOK, responseTimeResponse{Route: route})
		return
	}

	avg, samples := h.perf.AverageResponseTime(route)
	writeJSON(w, http.StatusOK, responseTimeResponse{
		Route:     route,
		AverageMS: float64(avg.Microseconds()) / 1000,
		Samples:   samples,
	})
}
