//go:build windows

package spreadsheet

import (
	"fmt"
	"io/fs"
	"testing"

	"golang.org/x/sys/windows"
)

func TestIsSharingViolation(t *testing.T) {
	testCases := []struct {
		err  error
		want bool
	}{
		{&fs.PathError{Op: "remove", Path: FileName, Err: windows.ERROR_SHARING_VIOLATION}, true},
		{fmt.Errorf("wrapped: %w", windows.ERROR_LOCK_VIOLATION), true},
		{&fs.PathError{Op: "remove", Path: FileName, Err: windows.ERROR_ACCESS_DENIED}, false},
		{fs.ErrNotExist, false},
	}
	for _, tc := range testCases {
		if got := isSharingViolation(tc.err); got != tc.want {
			t.Errorf("isSharingViolation(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
