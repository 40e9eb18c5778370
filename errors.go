package wirehttp

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Unique identifier for categorizing errors on both library and caller sides
type ErrorCode string

const (
	// Common errors
	ErrUnknown  ErrorCode = "err_unknown_error"
	ErrInternal ErrorCode = "err_internal_error"

	// Request construction errors
	ErrBadMethod ErrorCode = "err_bad_method"
	ErrBadTarget ErrorCode = "err_bad_target"

	// Wire errors
	ErrConnWrite ErrorCode = "err_conn_write"
	ErrConnRead  ErrorCode = "err_conn_read"

	// Response errors
	ErrNoResponse        ErrorCode = "err_no_response"
	ErrMalformedResponse ErrorCode = "err_malformed_response"
	ErrLineTooLong       ErrorCode = "err_line_too_long"
	ErrHeaderTooLarge    ErrorCode = "err_header_too_large"

	// Body errors
	ErrNoBody          ErrorCode = "err_no_body"
	ErrUnknownEncoding ErrorCode = "err_unknown_encoding"
	ErrInvalidJSON     ErrorCode = "err_invalid_json"
	ErrInvalidForm     ErrorCode = "err_invalid_form"
)

// Standardized error type with rich context for debugging
type WireError struct {
	Original error     // The underlying error being wrapped
	Code     ErrorCode // Stable error code
	Message  string    // Human-readable error message

	// Debug information automatically captured
	file     string
	line     int
	function string
}

// Maps error codes to default messages
type ErrorDef struct {
	Message string
}

var PredefinedErrors = map[ErrorCode]ErrorDef{
	ErrUnknown:           {"Unknown error"},
	ErrInternal:          {"Internal error"},
	ErrBadMethod:         {"Invalid request method"},
	ErrBadTarget:         {"Invalid request target"},
	ErrConnWrite:         {"Connection write failed"},
	ErrConnRead:          {"Connection read failed"},
	ErrNoResponse:        {"No response from server"},
	ErrMalformedResponse: {"Malformed response line"},
	ErrLineTooLong:       {"Response line too long"},
	ErrHeaderTooLarge:    {"Too many response headers"},
	ErrNoBody:            {"No response body available"},
	ErrUnknownEncoding:   {"Unknown content transfer encoding"},
	ErrInvalidJSON:       {"Invalid JSON"},
	ErrInvalidForm:       {"Invalid form data"},
}

func (e *WireError) Error() string {
	base := fmt.Sprintf("[wirehttp:%s] %s", e.Code, e.Message)
	if e.Original != nil {
		return fmt.Sprintf("%s: %v", base, e.Original)
	}
	return base
}

func (e *WireError) Unwrap() error {
	return e.Original
}

func New(code ErrorCode, msg string) *WireError {
	def, ok := PredefinedErrors[code]
	if !ok {
		def = PredefinedErrors[ErrUnknown]
	}

	if msg == "" {
		msg = def.Message
	}

	err := &WireError{
		Code:    code,
		Message: msg,
	}

	// Automatically capture caller information for debugging
	if pc, file, line, ok := runtime.Caller(1); ok {
		err.file = file
		err.line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			err.function = fn.Name()
		}
	}

	return err
}

func Newf(code ErrorCode, format string, args ...interface{}) *WireError {
	return New(code, fmt.Sprintf(format, args...))
}

func Wrap(err error, code ErrorCode, msg string) *WireError {
	if err == nil {
		return nil
	}

	// If already a WireError, update its fields instead of creating new one
	if wireErr, ok := err.(*WireError); ok {
		if code != "" {
			wireErr.Code = code
		}

		if msg != "" {
			wireErr.Message = msg
		}

		if pc, file, line, ok := runtime.Caller(1); ok {
			wireErr.file = file
			wireErr.line = line
			if fn := runtime.FuncForPC(pc); fn != nil {
				wireErr.function = fn.Name()
			}
		}

		return wireErr
	}

	// Create a new WireError wrapping the original
	wireErr := New(code, msg)
	wireErr.Original = err

	if pc, file, line, ok := runtime.Caller(1); ok {
		wireErr.file = file
		wireErr.line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			wireErr.function = fn.Name()
		}
	}

	return wireErr
}

func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WireError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	var wireErr *WireError
	if errors.As(err, &wireErr) {
		return wireErr.Code == code
	}

	return false
}

// Implements the safety rule of checking function preconditions and postconditions
func Assert(condition bool, code ErrorCode, message string) error {
	if !condition {
		return New(code, message)
	}
	return nil
}

// For critical assertions where failure indicates a programming error
func MustAssert(condition bool, message string) {
	if !condition {
		panic(New(ErrInternal, "Assertion failed: "+message))
	}
}

// Logs errors with appropriate context and stack trace
func LogError(logger *zerolog.Logger, err error) {
	logErrorInternal(logger, err, "", "")
}

// LogErrorWithTarget logs errors with request target context
func LogErrorWithTarget(logger *zerolog.Logger, err error, target string) {
	logErrorInternal(logger, err, target, "")
}

// LogErrorWithTargetID logs errors with request target and request id context
func LogErrorWithTargetID(logger *zerolog.Logger, err error, target string, requestID string) {
	logErrorInternal(logger, err, target, requestID)
}

// Internal function for error logging, supporting optional target and request id context
func logErrorInternal(logger *zerolog.Logger, err error, target string, requestID string) {
	if err == nil || logger == nil {
		return
	}

	event := logger.Error().Err(err)

	// Add request target if available
	if target != "" {
		event = event.Str("target", target)
	}

	// Add request id if available
	if requestID != "" {
		event = event.Str("request_id", requestID)
	}

	// Add caller information based on error type
	if _, ok := err.(*WireError); !ok {
		if pc, file, line, ok := runtime.Caller(2); ok {
			shortFile := file
			if idx := strings.LastIndex(file, "/"); idx >= 0 {
				shortFile = file[idx+1:]
			}

			funcName := "unknown"
			if fn := runtime.FuncForPC(pc); fn != nil {
				funcName = fn.Name()
				if idx := strings.LastIndex(funcName, "."); idx >= 0 {
					funcName = funcName[idx+1:]
				}
			}

			event = event.Str("file", shortFile).Int("line", line).Str("function", funcName)
		}
	} else {
		wireErr := err.(*WireError)
		event = event.
			Str("error_code", string(wireErr.Code)).
			Str("file", wireErr.file).
			Int("line", wireErr.line).
			Str("function", wireErr.function)
	}

	event.Msg("[wirehttp-error] Error occurred")
}
