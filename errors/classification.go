package errors

// ErrorClassification decides what the shell does with a failure: print it
// and keep going, or stop.
type ErrorClassification string

const (
	// ClassificationUser marks failures reported as one line of command
	// feedback. The session continues.
	// Examples: missing file, name collision, full namespace.
	ClassificationUser ErrorClassification = "USER"

	// ClassificationFatal marks failures that abort startup.
	// Examples: unreadable configuration, schema violation, host I/O.
	ClassificationFatal ErrorClassification = "FATAL"
)

// IsFatal returns true if the classification ends the session.
func (c ErrorClassification) IsFatal() bool {
	return c == ClassificationFatal
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeNotFound:         ClassificationUser,
	CodeAlreadyExists:    ClassificationUser,
	CodeWrongKind:        ClassificationUser,
	CodeCapacityExceeded: ClassificationUser,
	CodeNotEmpty:         ClassificationUser,
	CodeInvalidInput:     ClassificationUser,
	CodeInvalidPath:      ClassificationUser,

	CodeConfigLoadFailed:       ClassificationFatal,
	CodeConfigValidationFailed: ClassificationFatal,
	CodeConfigDecodeFailed:     ClassificationFatal,
	CodeConfigEncodeFailed:     ClassificationFatal,

	CodeIO:       ClassificationFatal,
	CodeInternal: ClassificationFatal,
}

// getDefaultClassification returns the default classification for an error code.
// Codes missing from the map (including CodeUnknown) are USER errors so that
// an unexpected failure inside a command never tears down the session.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationUser
}
