// Package branding provides compile-time identity values for the installer.
//
// Forks edit branding.yaml in this package, then rebuild. Go's //go:embed
// bakes the file into the binary, so a rebranded installer needs no runtime
// configuration to know which tool it installs.
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
	CLIName         string `yaml:"cli_name"`
	CommandName     string `yaml:"command_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
	GoModule        string `yaml:"go_module"`
	GitHubRepo      string `yaml:"github_repo"`
	APIBaseURL      string `yaml:"api_base_url"`
	DownloadBaseURL string `yaml:"download_base_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:         "mq-task-installer",
			CommandName:     "mq-task",
			DisplayName:     "mq-task",
			Description:     "Bootstrap installer for the mq-task command line tool",
			HomeDir:         ".mq-task",
			EnvPrefix:       "MQ_TASK",
			GoModule:        "github.com/harehare/mq-task",
			GitHubRepo:      "harehare/mq-task",
			APIBaseURL:      "https://api.github.com",
			DownloadBaseURL: "https://github.com",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the installer command name (e.g., "mq-task-installer").
func CLIName() string { load(); return defaults.CLIName }

// CommandName returns the name of the tool being installed (e.g., "mq-task").
func CommandName() string { load(); return defaults.CommandName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".mq-task").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "MQ_TASK").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by rebranding scripts and not
// consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string releases are fetched from.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// APIBaseURL returns the GitHub API base URL (e.g., "https://api.github.com").
func APIBaseURL() string { load(); return defaults.APIBaseURL }

// DownloadBaseURL returns the host release assets are downloaded from
// (e.g., "https://github.com").
func DownloadBaseURL() string { load(); return defaults.DownloadBaseURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("LOG_LEVEL") → "MQ_TASK_LOG_LEVEL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
