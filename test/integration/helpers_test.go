//go:build integration

package integration_test

import (
	"archive/tar"
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/viper"
)

// fakeDocker answers the invocations the requirement checks make. Its
// behavior is driven by FAKE_* environment variables.
const fakeDocker = `#!/bin/sh
case "$1" in
  version)
    echo "\"${FAKE_DOCKER_VERSION:-25.0.3}\""
    ;;
  compose)
    if [ -n "$FAKE_COMPOSE_EXIT" ]; then
      echo "docker: 'compose' is not a docker command." >&2
      exit "$FAKE_COMPOSE_EXIT"
    fi
    echo "${FAKE_COMPOSE_VERSION:-v2.24.6}"
    ;;
  buildx)
    if [ "$2" = "ls" ]; then
      echo "${FAKE_PLATFORMS:-linux/amd64, linux/arm64, linux/riscv64}"
    else
      echo "github.com/docker/buildx v${FAKE_BUILDX_VERSION:-0.13.1} 788433953af10f2a698f5c07611dddce2e08c7a0"
    fi
    ;;
  *)
    exit 1
    ;;
esac
`

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // CARTESI_HOME
	BinDir     string // sole PATH entry
	ProjectDir string // parent of created applications
}

// setupTestEnv sandboxes config and PATH. Pass withDocker=false to leave
// PATH without a docker executable.
func setupTestEnv(t *testing.T, withDocker bool) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake docker is a shell script")
	}

	env := &testEnv{
		HomeDir:    t.TempDir(),
		BinDir:     t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("CARTESI_HOME", env.HomeDir)
	t.Setenv("PATH", env.BinDir)
	viper.Reset()
	t.Cleanup(viper.Reset)

	if withDocker {
		path := filepath.Join(env.BinDir, "docker")
		if err := os.WriteFile(path, []byte(fakeDocker), 0755); err != nil {
			t.Fatalf("writing fake docker: %v", err)
		}
	}
	return env
}

// serveTemplates starts a codeload-like server for branch sdk-0.6 holding
// a python and a rust template.
func serveTemplates(t *testing.T) *httptest.Server {
	t.Helper()

	files := []struct{ name, body string }{
		{"application-templates-sdk-0.6/README.md", "# Application templates\n"},
		{"application-templates-sdk-0.6/python/dapp.py", "import os\n"},
		{"application-templates-sdk-0.6/python/requirements.txt", "requests==2.32.3\n"},
		{"application-templates-sdk-0.6/rust/Cargo.toml", "[package]\nname = \"dapp\"\n"},
		{"application-templates-sdk-0.6/rust/src/main.rs", "fn main() {}\n"},
	}

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	for _, f := range files {
		hdr := &tar.Header{Name: f.name, Mode: 0644, Size: int64(len(f.body)), Typeflag: tar.TypeReg}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("writing tar header: %v", err)
		}
		if _, err := tw.Write([]byte(f.body)); err != nil {
			t.Fatalf("writing tar body: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("closing tar: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("closing gzip: %v", err)
	}
	archive := buf.Bytes()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/tar.gz/refs/heads/sdk-0.6") {
			http.NotFound(w, r)
			return
		}
		w.Write(archive)
	}))
	t.Cleanup(server.Close)
	return server
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("%s = %q, want %q", path, string(data), want)
	}
}
