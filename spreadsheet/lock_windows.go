//go:build windows

package spreadsheet

import (
	"errors"

	"golang.org/x/sys/windows"
)

// isSharingViolation reports whether err is Windows refusing to delete a
// file another process holds open.
func isSharingViolation(err error) bool {
	return errors.Is(err, windows.ERROR_SHARING_VIOLATION) || errors.Is(err, windows.ERROR_LOCK_VIOLATION)
}
