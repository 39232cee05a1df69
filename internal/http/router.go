package http

import (
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/mockwx/weather-service/internal/observability"
)

// NewRouter assembles the four routes with shared middleware. Used by main
// and by tests, so both exercise the same stack.
func NewRouter(h *Handler, metrics *observability.Metrics, logger *zap.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(CorrelationIDMiddleware(logger))
	router.HandleFunc("/", h.GetIndex).Methods("GET")
	router.HandleFunc("/health", h.GetHealth).Methods("GET")
	router.Handle("/metrics", metrics.Handler()).Methods("GET")
	router.HandleFunc("/weather/{city}", h.GetWeather).Methods("GET")
	return router
}
