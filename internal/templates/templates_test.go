package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKnown(t *testing.T) {
	for _, name := range []string{"cpp", "cpp-low-level", "go", "javascript", "lua", "python", "ruby", "rust", "typescript", "onnx-python"} {
		assert.True(t, IsKnown(name), name)
	}
	assert.False(t, IsKnown("cobol"))
	assert.False(t, IsKnown(""))
}

func TestNewSource(t *testing.T) {
	src := NewSource("python", "sdk-0.6", "sarmentow/application-templates", "https://codeload.github.com/")

	assert.Equal(t, "cartesi", src.Name)
	assert.Equal(t, "python", src.Subdir)
	assert.Equal(t, "https://github.com/sarmentow/application-templates", src.URL)
	assert.Equal(t, "https://codeload.github.com/sarmentow/application-templates/tar.gz/refs/heads/sdk-0.6", src.Tar)
}
