package apperrors

// Issue describes a single validation failure on a request field.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError signals malformed or rejected input. The caller can fix
// the request and resubmit.
type ValidationError struct {
	Message string
	Issues  []Issue
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with structured issues.
func NewValidationError(message string, issues ...Issue) *ValidationError {
	return &ValidationError{Message: message, Issues: issues}
}

// UnauthorizedError signals a missing or invalid caller identity.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

func NewUnauthorizedError(message string) *UnauthorizedError {
	if message == "" {
		message = "Unauthorized"
	}
	return &UnauthorizedError{Message: message}
}

// ForbiddenError signals an authenticated caller acting on a resource
// they do not own.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

func NewForbiddenError(message string) *ForbiddenError {
	if message == "" {
		message = "Forbidden"
	}
	return &ForbiddenError{Message: message}
}

// NotFoundError signals a referenced resource that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	if message == "" {
		message = "Not found"
	}
	return &NotFoundError{Message: message}
}
