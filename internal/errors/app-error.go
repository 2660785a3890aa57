package app_errors

// AppError repräsentiert einen Anwendungsfehler mit einem Code, einer Nachricht und optional einem Feld.
type AppError struct {
	Code       int          // HTTP status code
	Type       string       // VALIDATION_ERROR, NOT_FOUND, usw
	MessageKey string       // i18n key
	Details    []FieldError // optional (validation)
	Err        error        // original error (internal only)
}

const (
	ErrValidation   = "VALIDATION_ERROR"
	ErrInvalidBody  = "INVALID_BODY"
	ErrInvalidParam = "INVALID_PARAM"
	ErrInvalidQuery = "INVALID_QUERY"
	ErrUnauthorized = "UNAUTHORIZED"
	ErrForbidden    = "FORBIDDEN"
	ErrNotFound     = "NOT_FOUND"
	ErrConflict     = "CONFLICT"
	ErrInternal     = "INTERNAL_ERROR"
)

type FieldError struct {
	Field      string         `json:"field"`
	Reason     string         `json:"reason"`
	MessageKey string         `json:"message_key"`
	Params     map[string]any `json:"params,omitempty"`
}

func NewAppError(code int, errType string, messageKey string, err error) *AppError {
	return &AppError{
		Code:       code,
		Type:       errType,
		MessageKey: messageKey,
		Err:        err,
	}
}

func NewValidationError(details []FieldError) *AppError {
	return &AppError{
		Code:       400,
		Type:       ErrValidation,
		MessageKey: "invalid_request",
		Details:    details,
	}
}

// Kurzformen für die Fehlerarten, die der Tracking-Kern verwendet.

func NewConflict(messageKey string, err error) *AppError {
	return NewAppError(409, ErrConflict, messageKey, err)
}

func NewForbidden(messageKey string) *AppError {
	return NewAppError(403, ErrForbidden, messageKey, nil)
}

func NewNotFound(messageKey string) *AppError {
	return NewAppError(404, ErrNotFound, messageKey, nil)
}

// NewInvalidReference meldet eine ID, die auf keine existierende Zeile zeigt.
func NewInvalidReference(field, messageKey string) *AppError {
	return &AppError{
		Code:       400,
		Type:       ErrValidation,
		MessageKey: messageKey,
		Details: []FieldError{{
			Field:      field,
			Reason:     "exists",
			MessageKey: messageKey,
		}},
	}
}

func NewInternal(err error) *AppError {
	return NewAppError(500, ErrInternal, "internal_error", err)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.MessageKey
}
