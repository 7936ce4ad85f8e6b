package state

import (
	"path/filepath"
)

func (s *AppState) resetViewport() {
	s.SelectedIndex = 0
	s.ScrollOffset = 0
	if len(s.Files) == 0 {
		s.SelectedIndex = -1
		return
	}

	if s.HideHiddenFiles && s.Files[0].IsHidden() {
		s.SelectedIndex = -1
		for i, f := range s.Files {
			if !f.IsHidden() {
				s.SelectedIndex = i
				break
			}
		}
	}
}

func (s *AppState) getCurrentFile() *FileEntry {
	displayFiles := s.getDisplayFiles()
	displayIdx := s.getDisplaySelectedIndex()

	if displayIdx >= 0 && displayIdx < len(displayFiles) {
		return &displayFiles[displayIdx]
	}
	return nil
}

// CurrentFile returns the selected entry, or nil when nothing is selected.
func (s *AppState) CurrentFile() *FileEntry {
	return s.getCurrentFile()
}

func (s *AppState) CurrentFilePath() string {
	file := s.getCurrentFile()
	current := s.CurrentPath
	if current == "" {
		current = "."
	}
	if file != nil {
		current = filepath.Join(current, file.Name)
	}
	return filepath.Clean(current)
}

func (s *AppState) selectByName(name string) bool {
	if idx := findFileIndexByName(s.Files, name); idx >= 0 {
		s.SelectedIndex = idx
		return true
	}
	return false
}

// ensureSelectionVisible moves a selection that landed on a hidden entry to
// the closest visible one.
func (s *AppState) ensureSelectionVisible() {
	if !s.HideHiddenFiles {
		return
	}
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Files) {
		return
	}
	if !s.Files[s.SelectedIndex].IsHidden() {
		return
	}

	for i := s.SelectedIndex - 1; i >= 0; i-- {
		if !s.Files[i].IsHidden() {
			s.SelectedIndex = i
			return
		}
	}
	for i := s.SelectedIndex + 1; i < len(s.Files); i++ {
		if !s.Files[i].IsHidden() {
			s.SelectedIndex = i
			return
		}
	}

	// No visible files remain
	s.SelectedIndex = -1
}

func findFileIndexByName(files []FileEntry, name string) int {
	for idx, file := range files {
		if file.Name == name {
			return idx
		}
	}
	return -1
}
