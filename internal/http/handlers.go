package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/mockwx/weather-service/internal/observability"
	"github.com/mockwx/weather-service/internal/weather"
)

// weatherEndpoint is the metrics label for the weather route. The path
// template is used, not the concrete path, to keep label cardinality bounded.
const weatherEndpoint = "/weather"

const serviceName = "Weather Microservice"

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	cities  map[string]weather.CityConfig
	metrics *observability.Metrics
	logger  *zap.Logger
	version string
}

// NewHandler returns a new Handler serving the given city table.
func NewHandler(cities map[string]weather.CityConfig, metrics *observability.Metrics, logger *zap.Logger, version string) *Handler {
	return &Handler{
		cities:  cities,
		metrics: metrics,
		logger:  logger,
		version: version,
	}
}

type routeInfo struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

// GetIndex handles GET /. Returns service name, version, and the route list.
func (h *Handler) GetIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service": serviceName,
		"version": h.version,
		"endpoints": []routeInfo{
			{Path: "/", Method: "GET", Description: "Service information"},
			{Path: "/health", Method: "GET", Description: "Health check endpoint"},
			{Path: "/metrics", Method: "GET", Description: "Prometheus metrics"},
			{Path: "/weather/{city}", Method: "GET", Description: "Get weather for a city"},
		},
	})
}

// GetHealth handles GET /health. Liveness only: if the process can answer,
// it is healthy.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// GetWeather handles GET /weather/{city}. City lookup is case-insensitive.
// Every outcome (200, 404, 500) increments the request counter for its
// status, and the latency histogram is observed exactly once per request.
func (h *Handler) GetWeather(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		h.metrics.ObserveLatency(weatherEndpoint, time.Since(start))
	}()
	// Generation cannot realistically fail, but a panic here must not leak
	// past the handler boundary or skip the metrics above. Runs before the
	// latency defer.
	defer func() {
		if rec := recover(); rec != nil {
			h.requestLogger(r).Error("error processing weather request", zap.Any("panic", rec))
			h.metrics.RecordRequest(weatherEndpoint, http.StatusInternalServerError)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		}
	}()

	city := mux.Vars(r)["city"]
	cfg, ok := h.cities[weather.Normalize(city)]
	if !ok {
		h.requestLogger(r).Warn("weather request for unknown city", zap.String("city", city))
		h.metrics.RecordRequest(weatherEndpoint, http.StatusNotFound)
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "City " + city + " not found"})
		return
	}

	reading := weather.Generate(cfg)
	h.requestLogger(r).Info("weather request successful", zap.String("city", city))
	h.metrics.RecordRequest(weatherEndpoint, http.StatusOK)
	writeJSON(w, http.StatusOK, reading)
}

// requestLogger returns the correlation-scoped logger set by middleware,
// falling back to the handler's logger.
func (h *Handler) requestLogger(r *http.Request) *zap.Logger {
	if logger, ok := r.Context().Value("logger").(*zap.Logger); ok && logger != nil {
		return logger
	}
	return h.logger
}

// writeJSON writes a JSON response with the specified HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
