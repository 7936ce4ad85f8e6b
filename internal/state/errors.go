package state

import "fmt"

// InvalidPathError rejects a path prompt entry that is not an existing
// directory.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid path %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid path %s", e.Path)
}

func (e *InvalidPathError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
