package errors_test

import (
	"fmt"

	"github.com/janleigh/ms-dos-clone/errors"
)

func ExampleNew() {
	err := errors.New(errors.CodeNotFound, `File not found: \A.TXT`)
	fmt.Println(err.Error())
	// Output: [NOT_FOUND] File not found: \A.TXT
}

func ExampleNewf() {
	err := errors.Newf(errors.CodeCapacityExceeded, "content too long: %d bytes", 5000)
	fmt.Println(err.Message())
	// Output: content too long: 5000 bytes
}

func ExampleWrap() {
	cause := fmt.Errorf("permission denied")
	err := errors.Wrap(cause, errors.CodeIO, "failed to import host directory")

	fmt.Println(errors.GetCode(err), errors.IsFatal(err))
	// Output: IO_ERROR true
}

func ExampleWithContext() {
	err := errors.New(errors.CodeNotEmpty, "Directory not empty")
	err = errors.WithContext(err, "path", `\DOCUMENTS`)

	fmt.Println(err.Context()["path"])
	// Output: \DOCUMENTS
}

func ExampleHasCode() {
	inner := errors.New(errors.CodeAlreadyExists, "File already exists")
	err := errors.Wrap(inner, errors.CodeInvalidInput, "Copy failed")

	fmt.Println(errors.HasCode(err, errors.CodeAlreadyExists))
	// Output: true
}
