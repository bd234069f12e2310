// Package errors provides structured error handling for the shell.
//
// Every failure produced by the namespace store, the path resolver, the
// directory enumerator and the configuration layer is a ShellError: an error
// carrying a stable ErrorCode, a Classification, a human-readable message
// and optional context metadata. It stays fully compatible with the
// standard library (errors.Is, errors.As, errors.Unwrap).
//
// # Codes
//
// The store taxonomy maps one-to-one onto codes:
//
//   - CodeNotFound: the path is absent
//   - CodeAlreadyExists: create or rename target collision
//   - CodeWrongKind: a File was expected and a Directory found, or the reverse
//   - CodeCapacityExceeded: entry count, path length or content length bound hit
//   - CodeNotEmpty: directory removal precondition failed
//
// Input, configuration and host I/O failures use CodeInvalidInput,
// CodeInvalidPath, the CodeConfig* family and CodeIO.
//
// # Classification
//
// A USER error is reported to the person at the prompt as one line of
// command feedback and the session continues. A FATAL error aborts startup.
// Each code has a default classification that Wrap preserves from the cause.
//
// # Quick Start
//
//	err := errors.New(errors.CodeNotFound, "File not found: \\A.TXT")
//
//	if err := store.CreateFile(p, data); err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to import seed file")
//	}
//
//	if errors.GetCode(err) == errors.CodeAlreadyExists {
//	    // ...
//	}
//
// Commands print only Message(); Error() renders "[CODE] message: cause"
// for logs.
package errors
