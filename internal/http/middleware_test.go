package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// TestCorrelationIDMiddleware_GeneratesID verifies a request without a
// correlation header gets a generated UUID echoed on the response.
func TestCorrelationIDMiddleware_GeneratesID(t *testing.T) {
	router := mux.NewRouter()
	router.Use(CorrelationIDMiddleware(zap.NewNop()))
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	corrID := w.Header().Get("X-Correlation-ID")
	if corrID == "" {
		t.Fatal("X-Correlation-ID header not set")
	}
	if _, err := uuid.Parse(corrID); err != nil {
		t.Errorf("X-Correlation-ID = %q, want a valid UUID: %v", corrID, err)
	}
}

// TestCorrelationIDMiddleware_EchoesProvidedID verifies a caller-supplied
// correlation ID is preserved.
func TestCorrelationIDMiddleware_EchoesProvidedID(t *testing.T) {
	router := mux.NewRouter()
	router.Use(CorrelationIDMiddleware(zap.NewNop()))
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Correlation-ID", "caller-supplied-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Correlation-ID"); got != "caller-supplied-id" {
		t.Errorf("X-Correlation-ID = %q, want %q", got, "caller-supplied-id")
	}
}

// TestCorrelationIDMiddleware_SetsContextLogger verifies downstream handlers
// see a request-scoped logger and the correlation ID in context.
func TestCorrelationIDMiddleware_SetsContextLogger(t *testing.T) {
	var sawLogger, sawCorrID bool
	router := mux.NewRouter()
	router.Use(CorrelationIDMiddleware(zap.NewNop()))
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if logger, ok := r.Context().Value("logger").(*zap.Logger); ok && logger != nil {
			sawLogger = true
		}
		if id, ok := r.Context().Value("correlation_id").(string); ok && id != "" {
			sawCorrID = true
		}
		w.WriteHeader(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

	if !sawLogger {
		t.Error("request context missing logger")
	}
	if !sawCorrID {
		t.Error("request context missing correlation_id")
	}
}
