package fs

import (
	"os"
)

// Entry is a single child of a listed directory. Its kind is not stored;
// callers query the filesystem when they need it.
type Entry struct {
	Name     string
	FullPath string
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.FullPath, e.Name)
}

// IsDirectory stats the entry (following symlinks) and reports whether it is a
// directory. Entries that cannot be stat'ed are treated as files.
func (e Entry) IsDirectory() bool {
	info, err := os.Stat(e.FullPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsSymlink reports whether the entry itself is a symbolic link.
func (e Entry) IsSymlink() bool {
	info, err := os.Lstat(e.FullPath)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}
