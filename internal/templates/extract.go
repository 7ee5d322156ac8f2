package templates

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cartesi/cli/internal/platform"
)

// extract unpacks the entries of a repository tarball that live under subdir
// into dest. The tarball's single top-level directory and subdir are both
// stripped. Every write goes through an *os.Root on dest, so an entry that
// reaches outside it, directly or through a link extracted earlier, fails.
// It returns the extracted file paths relative to dest, in archive order.
func extract(r io.Reader, subdir, dest string) ([]string, error) {
	root, err := os.OpenRoot(dest)
	if err != nil {
		return nil, fmt.Errorf("opening destination %s: %w", dest, err)
	}
	defer root.Close()

	tr := tar.NewReader(r)
	prefix := subdir + "/"
	var files []string

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return files, fmt.Errorf("reading tar entry: %w", err)
		}

		_, inRepo, ok := strings.Cut(hdr.Name, "/")
		if !ok || !strings.HasPrefix(inRepo, prefix) {
			continue
		}
		rel := path.Clean(strings.TrimPrefix(inRepo, prefix))
		if rel == "." {
			continue
		}
		if !isLocal(rel) {
			return files, fmt.Errorf("archive entry %q escapes the destination", hdr.Name)
		}
		name := filepath.FromSlash(rel)

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := root.MkdirAll(name, 0755); err != nil {
				return files, fmt.Errorf("creating directory %s: %w", rel, err)
			}
		case tar.TypeReg:
			if err := writeFile(root, name, tr, hdr.FileInfo().Mode()); err != nil {
				return files, fmt.Errorf("extracting %s: %w", rel, err)
			}
			files = append(files, rel)
		case tar.TypeSymlink:
			if !isLocal(path.Join(path.Dir(rel), hdr.Linkname)) || path.IsAbs(hdr.Linkname) {
				return files, fmt.Errorf("symlink %q points outside the destination", hdr.Name)
			}
			if err := mkdirParent(root, name); err != nil {
				return files, fmt.Errorf("creating directory for %s: %w", rel, err)
			}
			if err := platform.CreateSymlink(root, filepath.FromSlash(hdr.Linkname), name); err != nil {
				return files, fmt.Errorf("linking %s: %w", rel, err)
			}
			files = append(files, rel)
		}
	}

	return files, nil
}

func mkdirParent(root *os.Root, name string) error {
	if dir := filepath.Dir(name); dir != "." {
		return root.MkdirAll(dir, 0755)
	}
	return nil
}

func writeFile(root *os.Root, name string, r io.Reader, mode os.FileMode) error {
	if mode.Perm() == 0 {
		mode = 0644
	}
	if err := mkdirParent(root, name); err != nil {
		return err
	}

	out, err := root.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return platform.Chmod(root, name, mode)
}

// isLocal reports whether a cleaned slash path stays inside its root.
func isLocal(p string) bool {
	p = path.Clean(p)
	return p != ".." && !strings.HasPrefix(p, "../") && !path.IsAbs(p)
}
