package levels

import "fmt"

// DataError indicates a malformed level catalog. The catalog is either
// fully valid or rejected; there are no partial loads.
type DataError struct {
	Source string // file path or data origin
	Err    error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("level catalog %s: %v", e.Source, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }
