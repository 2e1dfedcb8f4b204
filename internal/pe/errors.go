package pe

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrChunkSize is returned when a decoder receives a buffer of the wrong length,
	// usually because the file ended before the requested bytes could be read.
	ErrChunkSize = errors.New("unexpected chunk size")

	// ErrRange is returned when an encoder receives a value wider than its target.
	ErrRange = errors.New("number out of range")
)

// Reasons carried by NotExecutableError.
const (
	ReasonNotExecutable = "not a valid executable"
	ReasonNotPE         = "not a valid PE file"
)

// NotExecutableError reports a failed MZ or PE signature check.
type NotExecutableError struct {
	Name   string
	Reason string
}

func (e *NotExecutableError) Error() string {
	return fmt.Sprintf("%s is %s", e.Name, e.Reason)
}

// IsNotExecutable reports whether err was caused by a failed signature check.
func IsNotExecutable(err error) bool {
	var target *NotExecutableError
	return errors.As(err, &target)
}
