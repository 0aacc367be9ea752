//go:build windows

package winutil

import "golang.org/x/sys/windows"

// IsElevated reports whether the process token carries administrator
// rights. Diagnostic locations under %WINDIR% are usually unreadable
// without elevation.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
