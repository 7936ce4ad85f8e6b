package render

import (
	"fmt"
	"strings"

	statepkg "github.com/kk-code-lab/rpeek/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles context-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	segments := contextualHelpSegments(state)
	segments = append(segments, persistentHelpSegments(state)...)

	return segments
}

func contextualHelpSegments(state *statepkg.AppState) []string {
	if state.HasVideo() {
		action := "play"
		if state.VideoPlaying {
			action = "pause"
		}
		return []string{
			"space: " + action,
			"↑/↓/↵/←: navigate",
			"[]: history",
		}
	}

	return []string{
		"↑/↓/↵/→/←: navigate",
		"[]: history",
		"g: go to",
		"J/K: scroll preview",
		"r: refresh",
	}
}

func persistentHelpSegments(state *statepkg.AppState) []string {
	hiddenStatus := "visible"
	if state.HideHiddenFiles {
		hiddenStatus = "hidden"
	}

	return []string{
		fmt.Sprintf(".: toggle %s", hiddenStatus),
		"?: help",
		"q: quit",
	}
}
