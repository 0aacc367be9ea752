//go:build !windows

package winutil

// IsElevated reports true off Windows; elevation is a Windows concept
// and the scan layer already tolerates permission-denied subtrees.
func IsElevated() bool {
	return true
}
