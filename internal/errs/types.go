package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type ValidationError struct {
	ErrorMessage
}

type UnauthorizedError struct {
	ErrorMessage
}

type ForbiddenError struct {
	ErrorMessage
}

type NotFoundError struct {
	ErrorMessage
}

// ConflictError carries the uid of the identity that already exists.
type ConflictError struct {
	ErrorMessage
	UID string
}

type ConfigError struct {
	ErrorMessage
}

// ExternalServiceError wraps failures from the identity provider,
// document store, or messaging gateway. Transient failures map to 503,
// the rest to 502.
type ExternalServiceError struct {
	ErrorMessage
	Service   string
	Transient bool
}

// NoRecipientsError is a business-level outcome, not a request failure:
// a dispatch resolved to zero device tokens.
type NoRecipientsError struct {
	ErrorMessage
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{ErrorMessage: ErrorMessage{Message: message}}
}

func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{ErrorMessage: ErrorMessage{Message: message}}
}

func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{ErrorMessage: ErrorMessage{Message: message}}
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{ErrorMessage: ErrorMessage{Message: message}}
}

func NewConflictError(message, uid string) *ConflictError {
	return &ConflictError{ErrorMessage: ErrorMessage{Message: message}, UID: uid}
}

func NewConfigError(message string) *ConfigError {
	return &ConfigError{ErrorMessage: ErrorMessage{Message: message}}
}

func NewExternalServiceError(service, message string) *ExternalServiceError {
	return &ExternalServiceError{
		ErrorMessage: ErrorMessage{Message: message},
		Service:      service,
	}
}

func NewNoRecipientsError() *NoRecipientsError {
	return &NoRecipientsError{ErrorMessage: ErrorMessage{Message: "No users with notification tokens found"}}
}
