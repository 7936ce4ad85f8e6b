package textutil

import (
	"slices"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "single line", text: "hello", want: []string{"hello"}},
		{name: "trailing newline dropped", text: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", text: "a\r\nb", want: []string{"a", "b"}},
		{name: "blank lines kept", text: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "tabs expanded", text: "a\tb", want: []string{"a   b"}},
		{name: "stray carriage return", text: "a\rb", want: []string{"a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLines(tt.text, DefaultTabWidth); !slices.Equal(got, tt.want) {
				t.Fatalf("SplitLines(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExpandTabsUsesColumns(t *testing.T) {
	if got := ExpandTabs("你\tx", 4); got != "你  x" {
		t.Fatalf("expected wide rune to count two columns, got %q", got)
	}
	if got := ExpandTabs("\t", 0); got != "\t" {
		t.Fatalf("expected tabs untouched for zero width, got %q", got)
	}
}
