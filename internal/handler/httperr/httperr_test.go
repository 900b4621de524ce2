//go:build unit

package httperr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio-calendar/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", errs.Mark(errs.New("bad hours"), errs.ErrValidation), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"schedule conflict", errs.Mark(errs.New("closed"), errs.ErrScheduleConflict), http.StatusConflict, "SCHEDULE_CONFLICT"},
		{"booking conflict wrapped", errs.Wrap(errs.Mark(errs.New("taken"), errs.ErrBookingConflict), "create"), http.StatusConflict, "BOOKING_CONFLICT"},
		{"unauthenticated", errs.ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"forbidden", errs.Mark(errs.New("not owner"), errs.ErrForbidden), http.StatusForbidden, "FORBIDDEN"},
		{"invalid state", errs.Mark(errs.New("decided"), errs.ErrInvalidState), http.StatusConflict, "INVALID_STATE"},
		{"not found", errs.Mark(errs.New("room"), errs.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"rate unresolved", errs.Mark(errs.New("no rate"), errs.ErrRateUnresolved), http.StatusUnprocessableEntity, "RATE_UNRESOLVED"},
		{"database", errs.Mark(errs.New("conn reset"), errs.ErrDatabaseOperation), http.StatusInternalServerError, "INTERNAL"},
		{"unknown", errs.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := Status(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestAbortHidesInternalMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	Abort(c, errs.New("password=hunter2 connection refused"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error.Message)
	assert.Equal(t, "INTERNAL", body.Error.Code)
	assert.Len(t, c.Errors, 1)
}
