//go:build !windows

package fs

// IsHidden uses the dot-prefix convention.
func IsHidden(_ string, name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// ShouldHideFromListing keeps every entry outside Windows.
func ShouldHideFromListing(_, _ string) bool {
	return false
}
