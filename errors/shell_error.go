package errors

import "fmt"

// shellError is the concrete implementation of ShellError.
// It is private to enforce construction through package functions.
type shellError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if cause is present.
func (e *shellError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *shellError) Code() ErrorCode {
	return e.code
}

// Classification returns the error classification.
func (e *shellError) Classification() ErrorClassification {
	return e.classification
}

// Message returns the error message.
func (e *shellError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil when none is attached.
func (e *shellError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]interface{}, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *shellError) Unwrap() error {
	return e.cause
}
