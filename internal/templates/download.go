package templates

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/cartesi/cli/internal/branding"
	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
)

// Request names a template to scaffold and where to put it.
type Request struct {
	Template string
	Branch   string
	Dir      string
}

// Result holds the outcome of a scaffold.
type Result struct {
	// Dir is the absolute path of the created application.
	Dir   string
	Files []string
}

// Downloader fetches templates over HTTP.
type Downloader struct {
	httpClient *http.Client
	repository string
	baseURL    string
	logger     *zap.Logger
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(d *Downloader) {
		d.httpClient = c
	}
}

// WithRepository sets the "owner/name" repository holding the templates.
func WithRepository(repo string) Option {
	return func(d *Downloader) {
		if repo != "" {
			d.repository = repo
		}
	}
}

// WithBaseURL sets the host serving tarballs, e.g. a mirror of codeload.
func WithBaseURL(url string) Option {
	return func(d *Downloader) {
		if url != "" {
			d.baseURL = url
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(d *Downloader) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDownloader creates a Downloader with the given options.
func NewDownloader(opts ...Option) *Downloader {
	d := &Downloader{
		httpClient: http.DefaultClient,
		repository: branding.TemplatesRepo(),
		baseURL:    branding.TemplatesHost(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Download scaffolds req.Template from req.Branch into req.Dir. The
// destination must not exist or be empty. On failure, a destination created
// by this call is removed again and an existing one is emptied.
func (d *Downloader) Download(ctx context.Context, req Request) (*Result, error) {
	if !IsKnown(req.Template) {
		return nil, fmt.Errorf("unknown template %q (available: %s)", req.Template, strings.Join(Names, ", "))
	}
	if req.Branch == "" {
		return nil, errors.New("branch is required")
	}
	if req.Dir == "" {
		return nil, errors.New("destination directory is required")
	}

	dest, err := filepath.Abs(req.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolving destination %s: %w", req.Dir, err)
	}

	created, err := prepareDestination(dest)
	if err != nil {
		return nil, err
	}

	src := NewSource(req.Template, req.Branch, d.repository, d.baseURL)
	files, err := d.fetch(ctx, src, dest)
	if err != nil {
		if created {
			os.RemoveAll(dest) // best-effort
		} else {
			emptyDir(dest)
		}
		return nil, err
	}

	d.logger.Debug("template extracted",
		zap.String("template", req.Template),
		zap.String("dir", dest),
		zap.Int("files", len(files)),
	)
	return &Result{Dir: dest, Files: files}, nil
}

// prepareDestination creates dest when missing and rejects a non-empty one.
// It reports whether the directory was created.
func prepareDestination(dest string) (bool, error) {
	entries, err := os.ReadDir(dest)
	switch {
	case err == nil && len(entries) > 0:
		return false, fmt.Errorf("destination %s already exists and is not empty", dest)
	case err == nil:
		return false, nil
	case !os.IsNotExist(err):
		return false, fmt.Errorf("reading destination %s: %w", dest, err)
	}

	if err := os.MkdirAll(dest, 0755); err != nil {
		return false, fmt.Errorf("creating destination %s: %w", dest, err)
	}
	return true, nil
}

// emptyDir removes everything inside dir, keeping dir itself. Best-effort.
func emptyDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		os.RemoveAll(filepath.Join(dir, e.Name()))
	}
}

func (d *Downloader) fetch(ctx context.Context, src Source, dest string) ([]string, error) {
	d.logger.Debug("downloading template", zap.String("url", src.Tar), zap.String("subdir", src.Subdir))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.Tar, nil)
	if err != nil {
		return nil, fmt.Errorf("creating download request: %w", err)
	}
	req.Header.Set("User-Agent", branding.CLIName()+"-cli")
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("Authorization", "token "+token)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", src.Tar, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("templates not found at %s (check the branch name)", src.Tar)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("creating gzip reader: %w", err)
	}
	defer gz.Close()

	files, err := extract(gz, src.Subdir, dest)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("template %q not found in %s", src.Subdir, src.URL)
	}
	return files, nil
}
