package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"telemetry-analytics/internal/ingestors"
	ingestormocks "telemetry-analytics/internal/ingestors/mocks"
	"telemetry-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIngestMetricHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	mockService := ingestormocks.NewMockMetricIngestionService(ctrl)
	handler := NewIngestMetricHandler(mockService)

	req := httptest.NewRequest(http.MethodPost, "/v1/metrics", bytes.NewReader([]byte(`{"name":"api_call","value":120,"unit":"ms"}`)))
	rr := httptest.NewRecorder()

	mockService.EXPECT().
		IngestMetrics(gomock.Any(), gomock.Any()).
		Return(&ingestors.IngestResult{Count: 1, IDs: []string{"01ABC"}}, nil)

	err := handler.Handle(rr, req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp IngestResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, []string{"01ABC"}, resp.IDs)
}

func TestIngestMetricHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	mockService := ingestormocks.NewMockMetricIngestionService(ctrl)
	handler := NewIngestMetricHandler(mockService)

	req := httptest.NewRequest(http.MethodPost, "/v1/metrics", bytes.NewReader([]byte(`{}`)))
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewInvalidArgumentError("TEST_1000", "validation failed", nil)
	mockService.EXPECT().
		IngestMetrics(gomock.Any(), gomock.Any()).
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "TEST_1000", svcErr.Code)
}

func TestIngestEventHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	mockService := ingestormocks.NewMockEventIngestionService(ctrl)
	handler := NewIngestEventHandler(mockService)

	req := httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewReader([]byte(`{"event":"screen_view","platform":"ios"}`)))
	rr := httptest.NewRecorder()

	mockService.EXPECT().
		IngestEvents(gomock.Any(), gomock.Any()).
		Return(&ingestors.IngestResult{Count: 1, IDs: []string{"01DEF"}}, nil)

	err := handler.Handle(rr, req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestIngestErrorHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	mockService := ingestormocks.NewMockErrorIngestionService(ctrl)
	handler := NewIngestErrorHandler(mockService)

	req := httptest.NewRequest(http.MethodPost, "/v1/errors", bytes.NewReader([]byte(`{"message":"crash","platform":"ios"}`)))
	rr := httptest.NewRecorder()

	mockService.EXPECT().
		IngestErrors(gomock.Any(), gomock.Any()).
		Return(&ingestors.IngestResult{Count: 1, IDs: []string{"01GHI"}}, nil)

	err := handler.Handle(rr, req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
}
