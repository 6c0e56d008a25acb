package errors

import (
	"fmt"
	"net/http"
)

// AppError is the custom error type for the application. Raw keeps the
// underlying cause so callers can surface the exact collaborator message.
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
}

// Error implements the error interface.
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e AppError) Unwrap() error {
	return e.Raw
}

// ErrInternal wraps an unexpected failure.
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

// ErrInvalidInput reports a missing or malformed request field.
func ErrInvalidInput(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_INPUT,
		Message:  message,
	}
}

// ErrUnsupportedMedia reports a request content type the endpoint does not
// accept.
func ErrUnsupportedMedia(contentType string) AppError {
	return AppError{
		HTTPCode: http.StatusUnsupportedMediaType,
		Code:     ErrorCode_UNSUPPORTED_MEDIA,
		Message:  fmt.Sprintf("Unsupported content type: %s", contentType),
	}
}

// ErrTranscriptionFailed reports that the transcription service did not
// complete or returned no speaker-segmented output.
func ErrTranscriptionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_TRANSCRIPTION_FAILED,
		Message:  "Audio transcription failed",
	}
}

// ErrModelInvocationFailed reports a network or auth failure calling the
// language model.
func ErrModelInvocationFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_MODEL_INVOCATION_FAILED,
		Message:  "Language model call failed",
	}
}

// ErrResponseParseFailed reports model output that is not valid JSON or does
// not match the Analysis shape. The raw parse error is surfaced, not
// swallowed.
func ErrResponseParseFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_RESPONSE_PARSE_FAILED,
		Message:  "Model response did not match the expected analysis shape",
	}
}
