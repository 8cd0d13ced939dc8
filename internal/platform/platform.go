package platform

import "errors"

// Canonical operating system identifiers as they appear in release artifact names.
const (
	OSLinux   = "linux"
	OSDarwin  = "darwin"
	OSWindows = "windows"
)

// Canonical CPU architecture identifiers as they appear in release artifact names.
const (
	ArchX8664   = "x86_64"
	ArchAarch64 = "aarch64"
)

// ErrUnsupportedPlatform is returned when the host OS or architecture has no
// published mq-task build.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Platform identifies a host by canonical OS and architecture.
type Platform struct {
	OS   string
	Arch string
}

// String returns "os/arch", e.g. "linux/x86_64".
func (p Platform) String() string {
	return p.OS + "/" + p.Arch
}

// Triple returns the target triple release artifacts are named after,
// e.g. "x86_64-unknown-linux-gnu" or "aarch64-apple-darwin".
func (p Platform) Triple() string {
	switch p.OS {
	case OSLinux:
		return p.Arch + "-unknown-linux-gnu"
	case OSDarwin:
		return p.Arch + "-apple-darwin"
	case OSWindows:
		return p.Arch + "-pc-windows-msvc"
	default:
		return ""
	}
}

// ExeSuffix returns ".exe" on Windows and "" elsewhere.
func (p Platform) ExeSuffix() string {
	if p.OS == OSWindows {
		return ".exe"
	}
	return ""
}

// IsWindows returns true if the platform is Windows.
func (p Platform) IsWindows() bool {
	return p.OS == OSWindows
}
