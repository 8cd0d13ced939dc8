package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/harehare/mq-task/internal/branding"
)

const (
	fileName = "installer"
	fileType = "yaml"

	defaultChecksumAsset       = "checksums.txt"
	defaultManifestKeyTemplate = "{{name}}/{{artifact}}"
	defaultHTTPTimeoutSeconds  = 300
)

// Config carries every knob the installer pipeline needs. It is built once
// at process start and passed explicitly to each component; nothing reads
// viper (or any other ambient state) after Load returns.
type Config struct {
	// InstallRoot is the directory the tool is installed under (~/.mq-task).
	InstallRoot string
	// Repo is the "owner/repo" GitHub repository releases are fetched from.
	Repo string
	// CommandName is the canonical command name of the installed tool.
	CommandName string
	// APIBaseURL is the GitHub API host for release resolution.
	APIBaseURL string
	// DownloadBaseURL is the host release assets are downloaded from.
	DownloadBaseURL string
	// ChecksumAsset is the name of the checksum manifest release asset.
	ChecksumAsset string
	// ManifestKeyTemplate renders the lookup key inside the checksum
	// manifest. Placeholders: {{name}} (command name), {{artifact}}
	// (artifact file name). Released manifests key entries as
	// "mq-task/mq-task-<triple>", but that convention is not guaranteed
	// stable across releases, so it stays configurable.
	ManifestKeyTemplate string
	// HTTPTimeout bounds every HTTP request, including the artifact download.
	HTTPTimeout time.Duration
	// LogLevel selects the minimum log level (debug, info, warn, error).
	LogLevel string
}

// BinDir returns the directory the binary and command symlink live in.
func (c *Config) BinDir() string {
	return filepath.Join(c.InstallRoot, "bin")
}

// BinaryPath returns the full path of the installed versioned binary file.
func (c *Config) BinaryPath(artifactName string) string {
	return filepath.Join(c.BinDir(), artifactName)
}

// SymlinkPath returns the full path of the stable command-name symlink.
// exeSuffix is ".exe" on Windows and "" elsewhere.
func (c *Config) SymlinkPath(exeSuffix string) string {
	return filepath.Join(c.BinDir(), c.CommandName+exeSuffix)
}

// ManifestKey renders ManifestKeyTemplate for the given artifact name.
func (c *Config) ManifestKey(artifactName string) string {
	return strings.NewReplacer(
		"{{name}}", c.CommandName,
		"{{artifact}}", artifactName,
	).Replace(c.ManifestKeyTemplate)
}

// Dir returns the path to the mq-task home directory (~/.mq-task).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the optional installer config file
// (~/.mq-task/installer.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the mq-task home directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load builds the Config from branding defaults, the optional installer.yaml
// file, and MQ_TASK_* environment variables, in increasing precedence.
// A config file that exists but fails schema validation is a hard error:
// installing with half-read settings is worse than stopping.
func Load() (*Config, error) {
	return LoadFrom(FilePath())
}

// LoadFrom is Load with an explicit config file path, for tests.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("install_root", Dir())
	v.SetDefault("github_repo", branding.GitHubRepo())
	v.SetDefault("command_name", branding.CommandName())
	v.SetDefault("api_base_url", branding.APIBaseURL())
	v.SetDefault("download_base_url", branding.DownloadBaseURL())
	v.SetDefault("checksum_asset", defaultChecksumAsset)
	v.SetDefault("manifest_key_template", defaultManifestKeyTemplate)
	v.SetDefault("http_timeout_seconds", defaultHTTPTimeoutSeconds)
	v.SetDefault("log_level", "info")

	data, err := os.ReadFile(path)
	switch {
	case err != nil && os.IsNotExist(err):
		// No config file is the normal case.
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		result, verr := Validate(data)
		if verr != nil {
			return nil, fmt.Errorf("validating config file %s: %w", path, verr)
		}
		if !result.Valid {
			return nil, fmt.Errorf("config file %s: %s", path, result.Summary())
		}
		if rerr := v.ReadConfig(bytes.NewReader(data)); rerr != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, rerr)
		}
	}

	cfg := &Config{
		InstallRoot:         v.GetString("install_root"),
		Repo:                v.GetString("github_repo"),
		CommandName:         v.GetString("command_name"),
		APIBaseURL:          strings.TrimRight(v.GetString("api_base_url"), "/"),
		DownloadBaseURL:     strings.TrimRight(v.GetString("download_base_url"), "/"),
		ChecksumAsset:       v.GetString("checksum_asset"),
		ManifestKeyTemplate: v.GetString("manifest_key_template"),
		HTTPTimeout:         time.Duration(v.GetInt("http_timeout_seconds")) * time.Second,
		LogLevel:            v.GetString("log_level"),
	}

	// Tolerate a "~/..." install root in hand-written config files.
	if strings.HasPrefix(cfg.InstallRoot, "~") {
		if home, herr := os.UserHomeDir(); herr == nil {
			cfg.InstallRoot = filepath.Join(home, strings.TrimPrefix(cfg.InstallRoot, "~"))
		}
	}

	return cfg, nil
}
