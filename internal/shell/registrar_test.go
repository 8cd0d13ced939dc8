package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProfile(t *testing.T, home, name, content string) string {
	t.Helper()
	path := filepath.Join(home, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRegisterPath(t *testing.T) {
	home := t.TempDir()
	profile := writeProfile(t, home, ".bashrc", "# existing content\nalias ll='ls -l'\n")

	r := NewRegistrarFor("mq-task", "/bin/bash", home, "linux")
	binDir := filepath.Join(home, ".mq-task", "bin")

	result := r.RegisterPath(binDir)
	if result.Outcome != Registered {
		t.Fatalf("Outcome = %v (%s), want Registered", result.Outcome, result.Reason)
	}
	if result.Profile != profile {
		t.Errorf("Profile = %q, want %q", result.Profile, profile)
	}

	data, err := os.ReadFile(profile)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.Contains(content, "# existing content") {
		t.Error("existing content was lost")
	}
	if !strings.Contains(content, "# Added by the mq-task installer") {
		t.Error("marker comment missing")
	}
	if !strings.Contains(content, `export PATH="`+binDir+`:$PATH"`) {
		t.Error("PATH line missing")
	}
}

func TestRegisterPathIdempotent(t *testing.T) {
	home := t.TempDir()
	profile := writeProfile(t, home, ".zshrc", "")

	r := NewRegistrarFor("mq-task", "/usr/bin/zsh", home, "linux")
	binDir := filepath.Join(home, ".mq-task", "bin")

	if result := r.RegisterPath(binDir); result.Outcome != Registered {
		t.Fatalf("first run Outcome = %v, want Registered", result.Outcome)
	}
	if result := r.RegisterPath(binDir); result.Outcome != AlreadyRegistered {
		t.Fatalf("second run Outcome = %v, want AlreadyRegistered", result.Outcome)
	}

	data, err := os.ReadFile(profile)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), binDir); got != 1 {
		t.Errorf("install dir appears %d times, want exactly 1", got)
	}
}

func TestRegisterPathFirstCandidateWins(t *testing.T) {
	home := t.TempDir()
	// Only .bash_profile exists; .bashrc does not.
	profile := writeProfile(t, home, ".bash_profile", "")

	r := NewRegistrarFor("mq-task", "/bin/bash", home, "linux")

	result := r.RegisterPath("/opt/mq-task/bin")
	if result.Outcome != Registered {
		t.Fatalf("Outcome = %v, want Registered", result.Outcome)
	}
	if result.Profile != profile {
		t.Errorf("Profile = %q, want %q", result.Profile, profile)
	}
}

func TestRegisterPathFish(t *testing.T) {
	home := t.TempDir()
	profile := writeProfile(t, home, filepath.Join(".config", "fish", "config.fish"), "")

	r := NewRegistrarFor("mq-task", "/usr/bin/fish", home, "linux")

	result := r.RegisterPath("/opt/mq-task/bin")
	if result.Outcome != Registered {
		t.Fatalf("Outcome = %v, want Registered", result.Outcome)
	}

	data, err := os.ReadFile(profile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "fish_add_path /opt/mq-task/bin") {
		t.Error("fish_add_path line missing")
	}
}

func TestRegisterPathManualAction(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *Registrar
	}{
		{"unknown shell", func(t *testing.T) *Registrar {
			return NewRegistrarFor("mq-task", "/bin/tcsh", t.TempDir(), "linux")
		}},
		{"no profile file", func(t *testing.T) *Registrar {
			return NewRegistrarFor("mq-task", "/bin/bash", t.TempDir(), "linux")
		}},
		{"empty home", func(t *testing.T) *Registrar {
			return NewRegistrarFor("mq-task", "/bin/bash", "", "linux")
		}},
		{"windows", func(t *testing.T) *Registrar {
			return NewRegistrarFor("mq-task", "", t.TempDir(), "windows")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.setup(t).RegisterPath("/opt/mq-task/bin")
			if result.Outcome != ManualActionRequired {
				t.Errorf("Outcome = %v, want ManualActionRequired", result.Outcome)
			}
			if result.Reason == "" {
				t.Error("ManualActionRequired result should carry a reason")
			}
		})
	}
}

func TestRegisterPathAppendsNewlineBeforeSection(t *testing.T) {
	home := t.TempDir()
	// Profile without a trailing newline.
	profile := writeProfile(t, home, ".bashrc", "alias ll='ls -l'")

	r := NewRegistrarFor("mq-task", "/bin/bash", home, "linux")
	if result := r.RegisterPath("/opt/mq-task/bin"); result.Outcome != Registered {
		t.Fatalf("Outcome = %v, want Registered", result.Outcome)
	}

	data, err := os.ReadFile(profile)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "-l'\n\n\n") || strings.Contains(string(data), "-l'#") {
		t.Errorf("section badly joined: %q", data)
	}
	if !strings.Contains(string(data), "alias ll='ls -l'\n") {
		t.Errorf("original line not terminated: %q", data)
	}
}
