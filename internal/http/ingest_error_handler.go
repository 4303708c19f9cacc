package http

import (
	"net/http"

	"telemetry-analytics/internal/ingestors"
)

type ingestErrorHandler struct {
	ingestionService ingestors.ErrorIngestionService
}

func NewIngestErrorHandler(ingestionService ingestors.ErrorIngestionService) AppHttpHandler {
	return &ingestErrorHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /v1/errors requests.
func (h *ingestErrorHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestErrors(r.Context(), r.Body)
	if err != nil {
		return err
	}

	return writeIngestResponse(w, result)
}
