// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only has to edit that file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	GitHubRepo    string `yaml:"github_repo"`
	TemplatesRepo string `yaml:"templates_repo"`
	TemplatesHost string `yaml:"templates_host"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:       "cartesi",
			DisplayName:   "Cartesi",
			Description:   "Cartesi rollups application development tool",
			HomeDir:       ".cartesi",
			EnvPrefix:     "CARTESI",
			GitHubRepo:    "cartesi/cli",
			TemplatesRepo: "sarmentow/application-templates",
			TemplatesHost: "https://codeload.github.com",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "cartesi").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Cartesi").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".cartesi").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CARTESI").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" of the CLI itself.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// TemplatesRepo returns the "owner/repo" holding the application templates.
func TemplatesRepo() string { load(); return defaults.TemplatesRepo }

// TemplatesHost returns the base URL serving repository tarballs.
func TemplatesHost() string { load(); return defaults.TemplatesHost }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "CARTESI_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
