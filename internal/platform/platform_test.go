package platform

import (
	"context"
	"testing"
)

func TestTriple(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		want     string
	}{
		{"linux x86_64", Platform{OS: OSLinux, Arch: ArchX8664}, "x86_64-unknown-linux-gnu"},
		{"linux aarch64", Platform{OS: OSLinux, Arch: ArchAarch64}, "aarch64-unknown-linux-gnu"},
		{"darwin x86_64", Platform{OS: OSDarwin, Arch: ArchX8664}, "x86_64-apple-darwin"},
		{"darwin aarch64", Platform{OS: OSDarwin, Arch: ArchAarch64}, "aarch64-apple-darwin"},
		{"windows x86_64", Platform{OS: OSWindows, Arch: ArchX8664}, "x86_64-pc-windows-msvc"},
		{"windows aarch64", Platform{OS: OSWindows, Arch: ArchAarch64}, "aarch64-pc-windows-msvc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.platform.Triple(); got != tt.want {
				t.Errorf("Triple() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExeSuffix(t *testing.T) {
	if got := (Platform{OS: OSWindows, Arch: ArchX8664}).ExeSuffix(); got != ".exe" {
		t.Errorf("windows ExeSuffix() = %q, want %q", got, ".exe")
	}
	if got := (Platform{OS: OSLinux, Arch: ArchX8664}).ExeSuffix(); got != "" {
		t.Errorf("linux ExeSuffix() = %q, want empty", got)
	}
	if got := (Platform{OS: OSDarwin, Arch: ArchAarch64}).ExeSuffix(); got != "" {
		t.Errorf("darwin ExeSuffix() = %q, want empty", got)
	}
}

func TestString(t *testing.T) {
	p := Platform{OS: OSLinux, Arch: ArchAarch64}
	if got := p.String(); got != "linux/aarch64" {
		t.Errorf("String() = %q, want %q", got, "linux/aarch64")
	}
}

// TestDetect runs detection on the host running the tests. Supported CI
// platforms must produce a canonical platform without error.
func TestDetect(t *testing.T) {
	p, err := NewDetector().Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	switch p.OS {
	case OSLinux, OSDarwin, OSWindows:
	default:
		t.Errorf("Detect returned unexpected OS %q", p.OS)
	}

	switch p.Arch {
	case ArchX8664, ArchAarch64:
	default:
		t.Errorf("Detect returned unexpected arch %q", p.Arch)
	}

	if p.Triple() == "" {
		t.Error("detected platform has no target triple")
	}
}
