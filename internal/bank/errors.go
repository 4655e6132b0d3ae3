package bank

import "fmt"

// DataError indicates the question data is malformed or violates a bank
// invariant. A bank is either fully valid or not loaded at all; there
// are no partial loads.
type DataError struct {
	Source string // file path or data origin
	Err    error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("question data %s: %v", e.Source, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }
