package config

import (
	"github.com/janleigh/ms-dos-clone/errors"
)

// wrapLoadErrorWithContext wraps an error with CodeConfigLoadFailed and attaches context metadata.
func wrapLoadErrorWithContext(err error, message string, ctx map[string]interface{}) errors.ShellError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeConfigLoadFailed, message, ctx)
}

// wrapValidationErrorWithContext wraps an error with CodeConfigValidationFailed and attaches context metadata.
func wrapValidationErrorWithContext(err error, message string, ctx map[string]interface{}) errors.ShellError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeConfigValidationFailed, message, ctx)
}

// wrapDecodeErrorWithContext wraps an error with CodeConfigDecodeFailed and attaches context metadata.
func wrapDecodeErrorWithContext(err error, message string, ctx map[string]interface{}) errors.ShellError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeConfigDecodeFailed, message, ctx)
}

// wrapEncodeError wraps an error with CodeConfigEncodeFailed.
func wrapEncodeError(err error, message string) errors.ShellError {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, errors.CodeConfigEncodeFailed, message)
}

// makeContext builds a context map from alternating key/value pairs.
// Odd trailing keys are ignored.
func makeContext(kv ...interface{}) map[string]interface{} {
	ctx := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		ctx[key] = kv[i+1]
	}
	return ctx
}
