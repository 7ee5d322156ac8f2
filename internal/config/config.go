package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cartesi/cli/internal/branding"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyTemplatesBranch     = "templates.branch"
	KeyTemplatesRepository = "templates.repository"
	KeyTemplatesBaseURL    = "templates.base_url"
	KeyDoctorTimeout       = "doctor.timeout"
)

// DefaultTemplatesBranch is the application-templates branch matching this SDK.
const DefaultTemplatesBranch = "sdk-0.6"

var defaults = map[string]any{
	KeyTemplatesBranch:     DefaultTemplatesBranch,
	KeyTemplatesRepository: branding.TemplatesRepo(),
	KeyTemplatesBaseURL:    branding.TemplatesHost(),
	KeyDoctorTimeout:       "0s",
}

// Settings is the typed view of the configuration.
type Settings struct {
	Templates TemplateSettings `mapstructure:"templates"`
	Doctor    DoctorSettings   `mapstructure:"doctor"`
}

// TemplateSettings controls where `create` fetches templates from.
type TemplateSettings struct {
	Branch     string `mapstructure:"branch"`
	Repository string `mapstructure:"repository"`
	BaseURL    string `mapstructure:"base_url"`
}

// DoctorSettings controls the requirement verifier.
type DoctorSettings struct {
	// Timeout bounds each tool invocation. Zero means no bound.
	Timeout time.Duration `mapstructure:"timeout"`
}

// Dir returns the config directory: $CARTESI_HOME when set, else ~/.cartesi/.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current decodes the loaded configuration into Settings.
func Current() (*Settings, error) {
	var s Settings
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	)
	if err := viper.Unmarshal(&s, viper.DecodeHook(hook)); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	return &s, nil
}

// Keys returns the recognized configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if _, ok := defaults[key]; !ok {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if key == KeyDoctorTimeout {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
