package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// CreateSymlink creates link inside root pointing to target. Relative
// targets are interpreted against the directory containing link, as
// os.Symlink does. On Windows, when a native symlink cannot be created, the
// target file is copied to link instead.
func CreateSymlink(root *os.Root, target, link string) error {
	err := root.Symlink(target, link)
	if err == nil || runtime.GOOS != "windows" {
		return err
	}

	if copyErr := copyLinkTarget(root, target, link); copyErr != nil {
		return fmt.Errorf("symlink fallback (copy) failed: %w", copyErr)
	}
	return nil
}

func copyLinkTarget(root *os.Root, target, link string) error {
	if filepath.IsAbs(target) {
		return fmt.Errorf("absolute link target %s", target)
	}

	in, err := root.Open(filepath.Join(filepath.Dir(link), target))
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := root.Create(link)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
