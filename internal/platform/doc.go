// Package platform hides the filesystem differences between Unix and Windows
// that matter when unpacking an application template: permission bits and
// symbolic links. Every operation is confined to an *os.Root, so a path or a
// link created earlier cannot lead outside it. On Windows, where symlinks
// need developer mode, links fall back to a copy of their target.
package platform
