package textutil

import "strings"

// Bidi overrides and zero-width runes are shown by name instead of being
// passed to the terminal, where they could disguise a file name.
var formattingRuneLabels = map[rune]string{
	0x00AD: "⟪SHY⟫",
	0x061C: "⟪ALM⟫",
	0x180E: "⟪MVS⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2060: "⟪WJ⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// SanitizeTerminalText replaces control characters so user-controlled text cannot
// inject terminal escape sequences when rendered. Tabs are kept.
func SanitizeTerminalText(text string) string {
	var b *strings.Builder
	for i, r := range text {
		repl, ok := replacement(r)
		if !ok {
			if b != nil {
				b.WriteRune(r)
			}
			continue
		}
		if b == nil {
			b = &strings.Builder{}
			b.Grow(len(text) + 8)
			b.WriteString(text[:i])
		}
		b.WriteString(repl)
	}
	if b == nil {
		return text
	}
	return b.String()
}

func replacement(r rune) (string, bool) {
	if label, ok := formattingRuneLabels[r]; ok {
		return label, true
	}
	switch {
	case r == '\t':
		return "", false
	case r == '\n' || r == '\r':
		return " ", true
	case r < 0x20 || r == 0x7f:
		return "?", true
	}
	return "", false
}
