package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background    tcell.Color
	Foreground    tcell.Color
	ListBg        tcell.Color
	ListFg        tcell.Color
	HiddenFg      tcell.Color
	SelectionBg   tcell.Color
	SelectionFg   tcell.Color
	DirectoryFg   tcell.Color
	SymlinkFg     tcell.Color
	FileFg        tcell.Color
	FooterBg      tcell.Color
	FooterFg      tcell.Color
	PreviewBg     tcell.Color
	PreviewFg     tcell.Color
	PlaceholderFg tcell.Color
	ErrorBg       tcell.Color
	ErrorFg       tcell.Color
	PromptBg      tcell.Color
	PromptFg      tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:    tcell.ColorDefault,
		Foreground:    tcell.ColorDefault,
		ListBg:        tcell.ColorDefault,
		ListFg:        tcell.ColorDefault,
		HiddenFg:      tcell.ColorLightSlateGray,
		SelectionBg:   tcell.Color33,
		SelectionFg:   tcell.ColorWhite,
		DirectoryFg:   tcell.Color33,
		SymlinkFg:     tcell.Color51,
		FileFg:        tcell.ColorDefault,
		FooterBg:      tcell.ColorDefault,
		FooterFg:      tcell.ColorDefault,
		PreviewBg:     tcell.ColorDefault,
		PreviewFg:     tcell.ColorDefault,
		PlaceholderFg: tcell.ColorLightSlateGray,
		ErrorBg:       tcell.Color124, // dark red
		ErrorFg:       tcell.ColorWhite,
		PromptBg:      tcell.Color236,
		PromptFg:      tcell.ColorWhite,
	}
}
