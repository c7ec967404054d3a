//go:build !windows

package spreadsheet

// isSharingViolation is always false: other systems let a process delete a
// file that is open elsewhere.
func isSharingViolation(err error) bool { return false }
