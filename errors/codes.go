package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability in log output.
type ErrorCode string

const (
	// Namespace errors.

	// CodeNotFound indicates a path is absent from the namespace.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a create or rename target already exists.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeWrongKind indicates an operation expected a File and found a
	// Directory, or the reverse.
	CodeWrongKind ErrorCode = "WRONG_KIND"

	// CodeCapacityExceeded indicates the entry count, path length or content
	// length bound would be exceeded.
	CodeCapacityExceeded ErrorCode = "CAPACITY_EXCEEDED"

	// CodeNotEmpty indicates a directory still has entries beneath it.
	CodeNotEmpty ErrorCode = "NOT_EMPTY"

	// Input errors.

	// CodeInvalidInput indicates a command was given malformed arguments.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidPath indicates a path that can never name an entry
	// (empty, or an operation on the root that the root does not permit).
	CodeInvalidPath ErrorCode = "INVALID_PATH"

	// Configuration errors.

	// CodeConfigLoadFailed indicates the configuration file could not be read
	// or compiled.
	CodeConfigLoadFailed ErrorCode = "CONFIG_LOAD_FAILED"

	// CodeConfigValidationFailed indicates the configuration does not satisfy
	// the schema.
	CodeConfigValidationFailed ErrorCode = "CONFIG_VALIDATION_FAILED"

	// CodeConfigDecodeFailed indicates the configuration could not be decoded
	// into Go values.
	CodeConfigDecodeFailed ErrorCode = "CONFIG_DECODE_FAILED"

	// CodeConfigEncodeFailed indicates the configuration could not be
	// rendered as YAML.
	CodeConfigEncodeFailed ErrorCode = "CONFIG_ENCODE_FAILED"

	// System errors.

	// CodeIO indicates a host filesystem or terminal operation failed.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeInternal indicates an internal invariant was violated.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
