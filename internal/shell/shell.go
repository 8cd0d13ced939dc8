package shell

import (
	"path/filepath"
	"strings"
)

// Shell represents a supported shell family.
type Shell string

const (
	// ShellBash represents the Bash shell.
	ShellBash Shell = "bash"
	// ShellZsh represents the Z shell.
	ShellZsh Shell = "zsh"
	// ShellFish represents the Fish shell.
	ShellFish Shell = "fish"
	// ShellUnknown represents an unknown or unsupported shell.
	ShellUnknown Shell = "unknown"
)

// String returns the string representation of the shell.
func (s Shell) String() string {
	return string(s)
}

// IsValid returns true if the shell family is supported.
func (s Shell) IsValid() bool {
	switch s {
	case ShellBash, ShellZsh, ShellFish:
		return true
	default:
		return false
	}
}

// Classify extracts the shell family from a shell binary path, e.g.
// "/usr/bin/zsh" -> ShellZsh. Pure: no environment or filesystem access.
func Classify(shellPath string) Shell {
	base := strings.ToLower(filepath.Base(strings.TrimSpace(shellPath)))
	switch base {
	case "bash":
		return ShellBash
	case "zsh":
		return ShellZsh
	case "fish":
		return ShellFish
	default:
		return ShellUnknown
	}
}

// ProfileCandidates returns the profile files considered for a shell, in
// priority order, under the given home directory. The first existing
// candidate wins. Pure: no filesystem access.
func ProfileCandidates(s Shell, home string) []string {
	switch s {
	case ShellBash:
		return []string{
			filepath.Join(home, ".bashrc"),
			filepath.Join(home, ".bash_profile"),
			filepath.Join(home, ".profile"),
		}
	case ShellZsh:
		return []string{
			filepath.Join(home, ".zshrc"),
			filepath.Join(home, ".zprofile"),
		}
	case ShellFish:
		return []string{
			filepath.Join(home, ".config", "fish", "config.fish"),
		}
	default:
		return nil
	}
}

// PathLine returns the shell-appropriate statement that prepends dir to PATH.
func PathLine(s Shell, dir string) string {
	if s == ShellFish {
		return "fish_add_path " + dir
	}
	return `export PATH="` + dir + `:$PATH"`
}
