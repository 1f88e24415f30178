package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound = errors.New("user not found")
)

// Approval pipeline errors
var (
	// ErrUnauthorizedTransition covers every illegal advance attempt: the
	// actor's role does not own the current stage, or an earlier stage is
	// not approved yet. Never retried.
	ErrUnauthorizedTransition = errors.New("unauthorized approval transition")
	// ErrStageAlreadyDecided is returned when a stage that is already
	// approved or denied is decided again; decisions are terminal.
	ErrStageAlreadyDecided = errors.New("approval stage already decided")
	ErrInvalidDecision     = errors.New("decision must be APPROVED or DENIED")
)

// Clearance errors
var (
	ErrUnauthorizedOffice  = errors.New("role does not own this clearance office")
	ErrUnauthorizedRole    = errors.New("role not permitted for this action")
	ErrIncompleteClearance = errors.New("clearance incomplete")
	ErrAlreadyFinalized    = errors.New("clearance already finalized")
	ErrHonorsListFinalized = errors.New("honors list already finalized")
)

// Student Errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Department Errors
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department with this name or code already exists")
)

// Message Errors
var (
	ErrMessageNotFound = errors.New("message not found")
)

// Token format errors
var (
	ErrInvalidFormat = errors.New("invalid token format")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewIncompleteClearanceError builds the finalize failure carrying the exact
// offices still outstanding so the caller can render a checklist.
func NewIncompleteClearanceError(outstanding []string) error {
	return &CustomError{
		Err:     ErrIncompleteClearance,
		Message: "clearance incomplete, offices outstanding",
		Details: map[string]interface{}{
			"outstandingOffices": outstanding,
		},
	}
}

// Details extracts the detail map of err if it wraps a CustomError
func Details(err error) map[string]interface{} {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Details
	}
	return nil
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
