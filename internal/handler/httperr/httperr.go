package httperr

import (
	"net/http"

	"studio-calendar/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = codeFor(status, err)
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	sentinel error
	status   int
	code     string
}

var mappings = []mapping{
	{errs.ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
	{errs.ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
	{errs.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{errs.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{errs.ErrScheduleConflict, http.StatusConflict, "SCHEDULE_CONFLICT"},
	{errs.ErrBookingConflict, http.StatusConflict, "BOOKING_CONFLICT"},
	{errs.ErrInvalidState, http.StatusConflict, "INVALID_STATE"},
	{errs.ErrRateUnresolved, http.StatusUnprocessableEntity, "RATE_UNRESOLVED"},
}

// Status maps a marked error onto an HTTP status and a stable error code.
func Status(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.sentinel) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "INTERNAL"
}

func codeFor(status int, err error) string {
	s, code := Status(err)
	if s == status {
		return code
	}
	switch status {
	case http.StatusBadRequest:
		return "VALIDATION_ERROR"
	case http.StatusUnauthorized:
		return "UNAUTHENTICATED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	}
	return "INTERNAL"
}

// Abort picks the status from the error. Internal failures get a generic message.
func Abort(c *gin.Context, err error) {
	status, _ := Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg, nil)
}
