package http

import (
	"net/http"

	"telemetry-analytics/internal/ingestors"
)

type ingestEventHandler struct {
	ingestionService ingestors.EventIngestionService
}

func NewIngestEventHandler(ingestionService ingestors.EventIngestionService) AppHttpHandler {
	return &ingestEventHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /v1/events requests.
func (h *ingestEventHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestEvents(r.Context(), r.Body)
	if err != nil {
		return err
	}

	return writeIngestResponse(w, result)
}
