package state

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/rpeek/internal/fs"
)

// listDirectoryFn is fs.List, overridable in tests.
var listDirectoryFn = fsutil.List

// LoadDirectory lists dirPath into state. On failure state is left untouched
// and the *fs.ListError is returned.
func LoadDirectory(state *AppState, dirPath string) error {
	dirPath = filepath.Clean(dirPath)
	entries, err := listDirectoryFn(dirPath)
	if err != nil {
		return err
	}

	state.CurrentPath = dirPath
	state.Files = entries
	state.invalidateDisplayFilesCache()
	state.resetViewport()
	return nil
}
