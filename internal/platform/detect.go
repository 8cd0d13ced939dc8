package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// Detector resolves the canonical platform of a host.
type Detector interface {
	Detect(ctx context.Context) (Platform, error)
}

// HostDetector implements Detector using the running host's properties.
type HostDetector struct{}

// NewDetector creates a detector for the running host.
func NewDetector() *HostDetector {
	return &HostDetector{}
}

// Detect queries the host for its machine architecture and normalizes OS and
// architecture to their canonical identifiers. Hosts with no published build
// fail with ErrUnsupportedPlatform before any network activity happens.
func (d *HostDetector) Detect(ctx context.Context) (Platform, error) {
	osName, err := NormalizeOS(runtime.GOOS)
	if err != nil {
		return Platform{}, err
	}

	// Prefer the kernel's own uname-style machine string. Fall back to the
	// Go toolchain's view if the query fails.
	rawArch, archErr := host.KernelArch()
	if archErr != nil || strings.TrimSpace(rawArch) == "" {
		if ctx.Err() != nil {
			return Platform{}, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
		}
		rawArch = runtime.GOARCH
	}

	arch, err := NormalizeArch(rawArch)
	if err != nil {
		return Platform{}, err
	}

	return Platform{OS: osName, Arch: arch}, nil
}
