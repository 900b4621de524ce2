package errs

// Error taxonomy shared by the usecase and handler layers.
// Domain packages mark their specific errors with one of these so callers can
// classify failures without importing every domain package.
var (
	ErrValidation        = New("validation error")
	ErrScheduleConflict  = New("outside opening hours")
	ErrBookingConflict   = New("booking conflict")
	ErrUnauthenticated   = New("authentication required")
	ErrForbidden         = New("actor is not allowed to perform this action")
	ErrInvalidState      = New("illegal state transition")
	ErrNotFound          = New("not found")
	ErrRateUnresolved    = New("price cannot be computed")
	ErrDatabaseOperation = New("database operation failed")
)
