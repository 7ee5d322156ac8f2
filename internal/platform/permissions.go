package platform

import (
	"os"
	"runtime"
)

// Chmod sets the permissions of name inside root. On Windows this is a no-op
// because Windows does not support Unix-style permission bits.
func Chmod(root *os.Root, name string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return root.Chmod(name, mode.Perm())
}
