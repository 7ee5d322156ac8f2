package templates

import (
	"fmt"
	"slices"
	"strings"
)

// ProviderName is the name templates are addressed under, as in "cartesi:python".
const ProviderName = "cartesi"

// Names lists the templates published in the application-templates repository.
var Names = []string{
	"cpp",
	"cpp-low-level",
	"go",
	"javascript",
	"lua",
	"python",
	"ruby",
	"rust",
	"typescript",
	"onnx-python",
}

// IsKnown reports whether name is a published template.
func IsKnown(name string) bool {
	return slices.Contains(Names, name)
}

// Source describes where a template lives.
type Source struct {
	Name   string // provider name
	Subdir string // template directory inside the repository
	URL    string // repository web URL
	Tar    string // tarball URL for the branch
}

// NewSource resolves template on branch of repo ("owner/name"), with tarballs
// served from baseURL (e.g. https://codeload.github.com).
func NewSource(template, branch, repo, baseURL string) Source {
	return Source{
		Name:   ProviderName,
		Subdir: template,
		URL:    "https://github.com/" + repo,
		Tar:    fmt.Sprintf("%s/%s/tar.gz/refs/heads/%s", strings.TrimRight(baseURL, "/"), repo, branch),
	}
}
