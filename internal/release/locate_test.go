package release

import (
	"testing"

	"github.com/harehare/mq-task/internal/platform"
)

func TestLocateArtifact(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name     string
		platform platform.Platform
		wantName string
		wantURL  string
		wantKey  string
	}{
		{
			name:     "linux x86_64",
			platform: platform.Platform{OS: platform.OSLinux, Arch: platform.ArchX8664},
			wantName: "mq-task-x86_64-unknown-linux-gnu",
			wantURL:  "https://github.com/harehare/mq-task/releases/download/v1.2.0/mq-task-x86_64-unknown-linux-gnu",
			wantKey:  "mq-task/mq-task-x86_64-unknown-linux-gnu",
		},
		{
			name:     "darwin aarch64",
			platform: platform.Platform{OS: platform.OSDarwin, Arch: platform.ArchAarch64},
			wantName: "mq-task-aarch64-apple-darwin",
			wantURL:  "https://github.com/harehare/mq-task/releases/download/v1.2.0/mq-task-aarch64-apple-darwin",
			wantKey:  "mq-task/mq-task-aarch64-apple-darwin",
		},
		{
			name:     "windows x86_64",
			platform: platform.Platform{OS: platform.OSWindows, Arch: platform.ArchX8664},
			wantName: "mq-task-x86_64-pc-windows-msvc.exe",
			wantURL:  "https://github.com/harehare/mq-task/releases/download/v1.2.0/mq-task-x86_64-pc-windows-msvc.exe",
			wantKey:  "mq-task/mq-task-x86_64-pc-windows-msvc.exe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocateArtifact(cfg, "v1.2.0", tt.platform)

			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if got.URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", got.URL, tt.wantURL)
			}
			if got.ManifestKey != tt.wantKey {
				t.Errorf("ManifestKey = %q, want %q", got.ManifestKey, tt.wantKey)
			}
			if want := "https://github.com/harehare/mq-task/releases/download/v1.2.0/checksums.txt"; got.ChecksumURL != want {
				t.Errorf("ChecksumURL = %q, want %q", got.ChecksumURL, want)
			}
		})
	}
}

func TestLocateArtifactDeterministic(t *testing.T) {
	cfg := testConfig()
	p := platform.Platform{OS: platform.OSLinux, Arch: platform.ArchAarch64}

	first := LocateArtifact(cfg, "v2.0.0", p)
	second := LocateArtifact(cfg, "v2.0.0", p)

	if first != second {
		t.Errorf("LocateArtifact is not deterministic: %+v vs %+v", first, second)
	}
}

func TestLocateArtifactCustomTemplate(t *testing.T) {
	cfg := testConfig()
	cfg.ManifestKeyTemplate = "{{artifact}}"

	got := LocateArtifact(cfg, "v1.0.0", platform.Platform{OS: platform.OSLinux, Arch: platform.ArchX8664})
	if got.ManifestKey != "mq-task-x86_64-unknown-linux-gnu" {
		t.Errorf("ManifestKey = %q with flat template", got.ManifestKey)
	}
}
