package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{"not found", ErrCodeNotFound, http.StatusNotFound},
		{"no base rate resolves to 404", ErrCodeNoBaseRate, http.StatusNotFound},
		{"no orders resolves to 404", ErrCodeNoOrdersForDate, http.StatusNotFound},
		{"summary exists is a conflict", ErrCodeSummaryExists, http.StatusConflict},
		{"already finalized is a conflict", ErrCodeAlreadyFinalized, http.StatusConflict},
		{"already exists", ErrCodeAlreadyExists, http.StatusConflict},
		{"invalid input", ErrCodeInvalidInput, http.StatusBadRequest},
		{"invalid state", ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{"validation", ErrCodeValidation, http.StatusBadRequest},
		{"internal", ErrCodeInternal, http.StatusInternalServerError},
		{"unmapped code defaults to 500", "ERR_SOMETHING_NEW", http.StatusInternalServerError},
		{"empty code defaults to 500", "", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"domain not found", "NOT_FOUND", ErrCodeNotFound},
		{"domain summary exists", "SUMMARY_EXISTS", ErrCodeSummaryExists},
		{"domain already finalized", "ALREADY_FINALIZED", ErrCodeAlreadyFinalized},
		{"domain no base rate", "NO_BASE_RATE", ErrCodeNoBaseRate},
		{"domain no orders", "NO_ORDERS_FOR_DATE", ErrCodeNoOrdersForDate},
		{"already normalized", ErrCodeNotFound, ErrCodeNotFound},
		{"unknown passes through", "SOME_CUSTOM_CODE", "SOME_CUSTOM_CODE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeErrorCode(tt.code))
		})
	}
}

func TestEveryDomainCodeHasAStatus(t *testing.T) {
	// Each mapped domain code must resolve to a non-default status
	for domainCode, apiCode := range DomainErrorCodeMapping {
		_, ok := ErrorCodeHTTPStatus[apiCode]
		assert.True(t, ok, "domain code %s maps to %s which has no HTTP status", domainCode, apiCode)
	}
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	requestID := "req-abc-123"
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "Vendor not found", requestID)

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Vendor not found", resp.Error.Message)
	assert.Equal(t, requestID, resp.Error.RequestID)
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationDetail{
		{Field: "vendor_id", Message: "must be a valid UUID"},
		{Field: "date", Message: "must be in YYYY-MM-DD format"},
	}
	resp := NewValidationErrorResponse("Request validation failed", "req-1", details)

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Len(t, resp.Error.Details, 2)
	assert.Equal(t, "vendor_id", resp.Error.Details[0].Field)
}

func TestErrorResponseJSONShape(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeSummaryExists, "A summary for this vendor and date already exists", "req-9")

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, false, decoded["success"])
	errObj, ok := decoded["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ERR_SUMMARY_EXISTS", errObj["code"])
	assert.Equal(t, "req-9", errObj["request_id"])
	// Empty details must be omitted entirely
	_, hasDetails := errObj["details"]
	assert.False(t, hasDetails)
	// Success responses never carry an error object
	_, hasData := decoded["data"]
	assert.False(t, hasData)
}

func TestNewSuccessResponse(t *testing.T) {
	resp := NewSuccessResponse(map[string]string{"status": "ok"})

	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.NotNil(t, resp.Data)
}
