package platform

import (
	"fmt"
	"strings"
)

// NormalizeOS maps operating system name variants to a canonical identifier.
// It accepts Go runtime names as well as uname-style spellings, including the
// MinGW/MSYS/Cygwin family names Windows environments report.
func NormalizeOS(osName string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(osName))
	switch {
	case s == "linux":
		return OSLinux, nil
	case s == "darwin" || s == "macos" || s == "osx":
		return OSDarwin, nil
	case s == "windows" || s == "windows_nt":
		return OSWindows, nil
	case strings.HasPrefix(s, "mingw") || strings.HasPrefix(s, "msys") || strings.HasPrefix(s, "cygwin"):
		return OSWindows, nil
	default:
		return "", fmt.Errorf("%w: operating system %q", ErrUnsupportedPlatform, osName)
	}
}

// NormalizeArch maps architecture aliases to a canonical identifier.
// Builds are published for x86_64 and aarch64 only.
func NormalizeArch(arch string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(arch)) {
	case "x86_64", "amd64", "x64":
		return ArchX8664, nil
	case "aarch64", "arm64":
		return ArchAarch64, nil
	default:
		return "", fmt.Errorf("%w: architecture %q", ErrUnsupportedPlatform, arch)
	}
}
