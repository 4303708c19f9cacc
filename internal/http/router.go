package http

import (
	"encoding/json"
	"net/http"

	"telemetry-analytics/internal/ingestors"
	"telemetry-analytics/internal/shared/loggers"
	"telemetry-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	metricIngestionService ingestors.MetricIngestionService,
	eventIngestionService ingestors.EventIngestionService,
	errorIngestionService ingestors.ErrorIngestionService,
	debugErrors bool,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestMetricHandler := NewIngestMetricHandler(metricIngestionService)
	ingestEventHandler := NewIngestEventHandler(eventIngestionService)
	ingestErrorHandler := NewIngestErrorHandler(errorIngestionService)

	// Routes
	router.Post("/v1/metrics", errorHandlingAdapter(ingestMetricHandler, debugErrors))
	router.Post("/v1/events", errorHandlingAdapter(ingestEventHandler, debugErrors))
	router.Post("/v1/errors", errorHandlingAdapter(ingestErrorHandler, debugErrors))
	router.Get("/healthz", healthHandler)
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
