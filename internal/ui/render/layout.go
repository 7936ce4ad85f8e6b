package render

import (
	"path/filepath"
	"strings"
)

type layoutMetrics struct {
	listWidth      int
	separatorWidth int
	previewStart   int
	previewWidth   int
	showPreview    bool
}

const (
	minListPanelWidth    = 20
	maxListPanelWidth    = 48
	minPreviewPanelWidth = 20
	listWidthRatio       = 0.35
	previewInnerPadding  = 1
)

// ListPanelWidth returns the width of the file list column for a terminal
// w cells wide. The list takes the whole width when no preview fits.
func ListPanelWidth(w int) int {
	return computeLayout(w).listWidth
}

func computeLayout(w int) layoutMetrics {
	if w <= 0 {
		return layoutMetrics{}
	}

	listWidth := int(float64(w)*listWidthRatio + 0.5)
	if listWidth < minListPanelWidth {
		listWidth = minListPanelWidth
	}
	if listWidth > maxListPanelWidth {
		listWidth = maxListPanelWidth
	}

	const separator = 1
	if w-listWidth-separator < minPreviewPanelWidth {
		return layoutMetrics{listWidth: w}
	}

	return layoutMetrics{
		listWidth:      listWidth,
		separatorWidth: separator,
		previewStart:   listWidth + separator,
		previewWidth:   w - listWidth - separator,
		showPreview:    true,
	}
}

// FormatBreadcrumbSegments splits path into the segments shown in the header.
// A leading "/" is its own segment.
func FormatBreadcrumbSegments(path string) []string {
	if path == "" {
		return []string{"/"}
	}

	cleanPath := filepath.Clean(path)
	if cleanPath == "." {
		cleanPath = "/"
	}

	slashed := filepath.ToSlash(cleanPath)
	if slashed == "/" {
		return []string{"/"}
	}

	var segments []string

	if strings.HasPrefix(slashed, "/") {
		segments = append(segments, "/")
		slashed = strings.TrimPrefix(slashed, "/")
	}

	for _, part := range strings.Split(slashed, "/") {
		if part == "" {
			continue
		}
		segments = append(segments, part)
	}

	if len(segments) == 0 {
		return []string{cleanPath}
	}

	return segments
}
