package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"syscall"

	"golang.org/x/text/unicode/norm"
)

// ListReason classifies why a directory could not be listed.
type ListReason string

const (
	ReasonNotFound     ListReason = "not found"
	ReasonNotDirectory ListReason = "not a directory"
	ReasonPermission   ListReason = "permission denied"
	ReasonIO           ListReason = "read failed"
)

// ListError is returned by List when a directory cannot be read.
type ListError struct {
	Path   string
	Reason ListReason
	Err    error
}

func (e *ListError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil && e.Reason == ReasonIO {
		return fmt.Sprintf("cannot read directory %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot read directory %s: %s", e.Path, e.Reason)
}

func (e *ListError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// List returns the immediate children of path in the order the filesystem
// reports them. Entries the platform never shows (see ShouldHideFromListing)
// are skipped; hidden entries are kept.
func List(path string) ([]Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, newListError(path, err)
	}
	if !info.IsDir() {
		return nil, &ListError{Path: path, Reason: ReasonNotDirectory}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, newListError(path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, newListError(path, err)
	}

	entries := make([]Entry, 0, len(names))
	for _, raw := range names {
		fullPath := filepath.Join(path, raw)
		if ShouldHideFromListing(fullPath, raw) {
			continue
		}
		entries = append(entries, Entry{
			Name:     norm.NFC.String(raw),
			FullPath: fullPath,
		})
	}
	return entries, nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func newListError(path string, err error) *ListError {
	reason := ReasonIO
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		reason = ReasonNotFound
	case errors.Is(err, syscall.ENOTDIR):
		reason = ReasonNotDirectory
	case errors.Is(err, iofs.ErrPermission):
		reason = ReasonPermission
	}
	return &ListError{Path: path, Reason: reason, Err: err}
}
