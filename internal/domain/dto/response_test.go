package dto

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/model"
)

func TestErrorResponse_WithRequestID(t *testing.T) {
	tests := []struct {
		name      string
		errCode   string
		message   string
		requestID string
		validate  func(*testing.T, ErrorResponse)
	}{
		{
			name:      "error response with request ID",
			errCode:   ErrCodeInternal,
			message:   "test error",
			requestID: "test-id",
			validate: func(t *testing.T, err ErrorResponse) {
				assert.Equal(t, "test-id", err.RequestID)
				assert.Equal(t, ErrCodeInternal, err.Error)
				assert.Equal(t, "test error", err.Message)
				assert.False(t, err.Timestamp.IsZero())
			},
		},
		{
			name:      "empty request ID",
			errCode:   ErrCodeInvalidRequest,
			message:   "bad input",
			requestID: "",
			validate: func(t *testing.T, err ErrorResponse) {
				assert.Empty(t, err.RequestID)
				assert.Equal(t, ErrCodeInvalidRequest, err.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewError(tt.errCode, tt.message)
			err = err.WithRequestID(tt.requestID)
			if tt.validate != nil {
				tt.validate(t, err)
			}
		})
	}
}

func TestErrorResponse_WithDetails(t *testing.T) {
	base := NewError(ErrCodeInvalidRequest, "invalid")
	withDetails := base.WithDetails(map[string]string{"weight": "gt"})

	assert.Nil(t, base.Details)
	assert.Equal(t, "gt", withDetails.Details["weight"])
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnprocessableEntity, ErrCodeInvalidRequest},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeInternal},
		{http.StatusUnauthorized, ErrCodeInternal},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
		{http.StatusServiceUnavailable, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, ErrCodeFromStatus(tt.status))
		})
	}
}

func TestPredictResponse_JSONShape(t *testing.T) {
	resp := PredictResponse{
		BasketPrediction: model.BasketPrediction{
			MaterialsBreakdown:  []model.PricePrediction{{Material: "copper", RatePerKg: 400, EstimatedWeight: 1, ItemEstimatedValue: 400}},
			TotalEstimatedValue: 400,
			ConfidenceScore:     98,
		},
		Currency: "INR",
		Advisory: "ok",
	}

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{"materials_breakdown", "total_estimated_value", "confidence_score", "fraud_flag", "currency", "advisory"} {
		assert.Contains(t, fields, key)
	}
}
