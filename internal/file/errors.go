package file

import "fmt"

// ReadError means the input could not be read or parsed: missing file,
// truncated container, or structurally invalid track data. The conversion
// produced nothing.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read %v: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError means the output could not be written. Whatever was partially
// written must not be treated as a valid chart.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not write %v: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
