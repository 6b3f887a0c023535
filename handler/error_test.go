package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/eduquery/eduquery-be/types"
)

func TestSendErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"access denied", fmt.Errorf("%w: document doc-1 does not belong to requester", types.ErrAccessDenied), http.StatusForbidden},
		{"not found", types.ErrNotFound, http.StatusNotFound},
		{"dependency outage", fmt.Errorf("%w: embedding request failed", types.ErrDependencyUnavailable), http.StatusServiceUnavailable},
		{"unclassified", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			sendError(c, tt.err)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestSendErrorHidesOutageDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	sendError(c, fmt.Errorf("%w: embedding request failed: connection refused", types.ErrDependencyUnavailable))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
