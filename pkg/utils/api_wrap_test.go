package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleServiceErrorMapsSentinels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("register: %w", ErrEmailAlreadyExists), http.StatusConflict},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrHistoryNotFound, http.StatusNotFound},
		{ErrInvalidPageSize, http.StatusBadRequest},
		{fmt.Errorf("%w: travelers must be at least 1", ErrInvalidInput), http.StatusBadRequest},
		{ErrDriveNotLinked, http.StatusConflict},
		{ErrUnexpectedBehaviorOfAI, http.StatusBadGateway},
		{fmt.Errorf("drive: %w", ErrMemoryUploadFailed), http.StatusBadGateway},
		{ErrDatabaseError, http.StatusInternalServerError},
		{fmt.Errorf("something else"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("trace_id", "trace-1")

		HandleServiceError(c, tt.err)

		if w.Code != tt.code {
			t.Errorf("%v: status = %d, want %d", tt.err, w.Code, tt.code)
			continue
		}
		var body APIResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Status != "error" || body.TraceID != "trace-1" || body.Code != tt.code {
			t.Errorf("%v: body = %+v", tt.err, body)
		}
	}
}

func TestRespondSuccessWithoutTraceID(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondSuccess(c, map[string]int{"n": 1}, "ok")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "success" || body.Message != "ok" || body.TraceID != "" {
		t.Fatalf("body = %+v", body)
	}
}
