package http

import (
	"encoding/json"
	"net/http"

	"telemetry-analytics/internal/ingestors"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// IngestResponse acknowledges an accepted submission.
type IngestResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	IDs     []string `json:"ids"`
}

func writeIngestResponse(w http.ResponseWriter, result *ingestors.IngestResult) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	return json.NewEncoder(w).Encode(IngestResponse{
		Success: true,
		Count:   result.Count,
		IDs:     result.IDs,
	})
}

type ingestMetricHandler struct {
	ingestionService ingestors.MetricIngestionService
}

func NewIngestMetricHandler(ingestionService ingestors.MetricIngestionService) AppHttpHandler {
	return &ingestMetricHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /v1/metrics requests.
func (h *ingestMetricHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestMetrics(r.Context(), r.Body)
	if err != nil {
		return err
	}

	return writeIngestResponse(w, result)
}
