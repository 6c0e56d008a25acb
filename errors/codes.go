package errors

// ErrorCode identifies a failure kind across the API surface.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK                 ErrorCode = 0
	ErrorCode_INTERNAL                ErrorCode = 1
	ErrorCode_INVALID_INPUT           ErrorCode = 2
	ErrorCode_UNSUPPORTED_MEDIA       ErrorCode = 3
	ErrorCode_TRANSCRIPTION_FAILED    ErrorCode = 4
	ErrorCode_MODEL_INVOCATION_FAILED ErrorCode = 5
	ErrorCode_RESPONSE_PARSE_FAILED   ErrorCode = 6
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                 "OK",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_INPUT:           "INVALID_INPUT",
	ErrorCode_UNSUPPORTED_MEDIA:       "UNSUPPORTED_MEDIA",
	ErrorCode_TRANSCRIPTION_FAILED:    "TRANSCRIPTION_FAILED",
	ErrorCode_MODEL_INVOCATION_FAILED: "MODEL_INVOCATION_FAILED",
	ErrorCode_RESPONSE_PARSE_FAILED:   "RESPONSE_PARSE_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
