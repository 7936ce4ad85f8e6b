package state

// Rows taken by the header line and the status line.
const chromeRows = 2

// invalidateDisplayFilesCache marks the display files cache as dirty.
// Call it whenever Files or HideHiddenFiles changes.
func (s *AppState) invalidateDisplayFilesCache() {
	s.displayFilesDirty = true
	s.displayFilesCache = nil
}

func (s *AppState) getDisplayFiles() []FileEntry {
	if !s.displayFilesDirty && s.displayFilesCache != nil {
		result := make([]FileEntry, len(s.displayFilesCache))
		copy(result, s.displayFilesCache)
		return result
	}

	files := s.Files
	if s.HideHiddenFiles {
		var visible []FileEntry
		for _, f := range files {
			if !f.IsHidden() {
				visible = append(visible, f)
			}
		}
		files = visible
	}

	s.displayFilesCache = files
	s.displayFilesDirty = false

	result := make([]FileEntry, len(files))
	copy(result, files)
	return result
}

// DisplayFiles returns the entries shown in the list, hidden files removed
// when HideHiddenFiles is set.
func (s *AppState) DisplayFiles() []FileEntry {
	return s.getDisplayFiles()
}

func (s *AppState) getDisplaySelectedIndex() int {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Files) {
		return -1
	}

	if s.HideHiddenFiles {
		if s.Files[s.SelectedIndex].IsHidden() {
			return -1
		}
		displayIdx := 0
		for i := 0; i < s.SelectedIndex; i++ {
			if !s.Files[i].IsHidden() {
				displayIdx++
			}
		}
		return displayIdx
	}

	return s.SelectedIndex
}

func (s *AppState) DisplaySelectedIndex() int {
	return s.getDisplaySelectedIndex()
}

func (s *AppState) getActualIndexFromDisplayIndex(displayIdx int) int {
	if displayIdx < 0 {
		return -1
	}

	if !s.HideHiddenFiles {
		if displayIdx < len(s.Files) {
			return displayIdx
		}
		return -1
	}

	visibleCount := 0
	for i := 0; i < len(s.Files); i++ {
		if s.Files[i].IsHidden() {
			continue
		}
		if visibleCount == displayIdx {
			return i
		}
		visibleCount++
	}
	return -1
}

// ActualIndexFromDisplayIndex maps a row of the visible list back to an
// index into Files, or -1 when the row is empty.
func (s *AppState) ActualIndexFromDisplayIndex(displayIdx int) int {
	return s.getActualIndexFromDisplayIndex(displayIdx)
}

func (s *AppState) setDisplaySelectedIndex(displayIdx int) {
	if idx := s.getActualIndexFromDisplayIndex(displayIdx); idx >= 0 {
		s.SelectedIndex = idx
	}
}

// ListHeight is the number of rows available to the file list and the
// preview panel.
func (s *AppState) ListHeight() int {
	h := s.ScreenHeight - chromeRows
	if h < 1 {
		return 1
	}
	return h
}

func (s *AppState) clampScroll() {
	maxOffset := len(s.getDisplayFiles()) - s.ListHeight()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ScrollOffset > maxOffset {
		s.ScrollOffset = maxOffset
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

func (s *AppState) updateScrollVisibility() {
	displayIdx := s.getDisplaySelectedIndex()
	visibleLines := s.ListHeight()

	if displayIdx < 0 {
		return
	}

	if displayIdx < s.ScrollOffset {
		s.ScrollOffset = displayIdx
	} else if displayIdx >= s.ScrollOffset+visibleLines {
		s.ScrollOffset = displayIdx - visibleLines + 1
	}
	s.clampScroll()
}

func (s *AppState) centerScrollOnSelection() {
	displayIdx := s.getDisplaySelectedIndex()
	if displayIdx < 0 {
		return
	}
	s.ScrollOffset = displayIdx - s.ListHeight()/2
	s.clampScroll()
}

func (s *AppState) clampPreviewScroll() {
	maxOffset := len(s.PreviewLines) - s.ListHeight()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.PreviewScrollOffset > maxOffset {
		s.PreviewScrollOffset = maxOffset
	}
	if s.PreviewScrollOffset < 0 {
		s.PreviewScrollOffset = 0
	}
}
