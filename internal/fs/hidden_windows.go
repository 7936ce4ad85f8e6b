//go:build windows

package fs

import "golang.org/x/sys/windows"

// Compatibility junctions such as "Application Data" carry both bits.
const junctionAttrs = windows.FILE_ATTRIBUTE_SYSTEM | windows.FILE_ATTRIBUTE_REPARSE_POINT

func fileAttributes(fullPath string) (uint32, bool) {
	if fullPath == "" {
		return 0, false
	}
	p, err := windows.UTF16PtrFromString(fullPath)
	if err != nil {
		return 0, false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return 0, false
	}
	return attrs, true
}

// IsHidden reports the hidden attribute. When the attributes cannot be read
// the Unix dot convention is used instead.
func IsHidden(fullPath string, name string) bool {
	attrs, ok := fileAttributes(fullPath)
	if !ok {
		return len(name) > 0 && name[0] == '.'
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}

// ShouldHideFromListing drops system junctions that only redirect elsewhere.
func ShouldHideFromListing(fullPath, _ string) bool {
	attrs, ok := fileAttributes(fullPath)
	return ok && attrs&junctionAttrs == junctionAttrs
}
