package installer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

const receiptFileName = "install-receipt.json"

// Receipt records what the last successful run installed. It is purely
// informational: the next run re-resolves and reinstalls regardless.
type Receipt struct {
	Version     string    `json:"version"`
	Triple      string    `json:"triple"`
	Artifact    string    `json:"artifact"`
	Checksum    string    `json:"checksum"`
	InstalledAt time.Time `json:"installed_at"`
}

// LoadReceipt reads the receipt from the install root.
// Returns nil, nil if no receipt exists (first install).
func LoadReceipt(installRoot string) (*Receipt, error) {
	path := filepath.Join(installRoot, receiptFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading install receipt: %w", err)
	}

	var r Receipt
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing install receipt: %w", err)
	}
	return &r, nil
}

// SaveReceipt writes the receipt to the install root, stamping InstalledAt.
func SaveReceipt(installRoot string, r *Receipt) error {
	if err := os.MkdirAll(installRoot, 0o755); err != nil {
		return fmt.Errorf("creating install root: %w", err)
	}

	r.InstalledAt = time.Now().UTC()

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling install receipt: %w", err)
	}

	path := filepath.Join(installRoot, receiptFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing install receipt: %w", err)
	}
	return nil
}

// describeTransition compares the previous receipt against the version about
// to be installed, for the install log. Unparseable versions fall back to a
// plain message rather than failing the run.
func describeTransition(prev *Receipt, version string) string {
	if prev == nil {
		return fmt.Sprintf("Fresh install of %s", version)
	}

	pv, perr := semver.NewVersion(strings.TrimPrefix(prev.Version, "v"))
	nv, nerr := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if perr != nil || nerr != nil {
		return fmt.Sprintf("Installing %s (previously %s)", version, prev.Version)
	}

	switch nv.Compare(pv) {
	case 1:
		return fmt.Sprintf("Upgrading %s -> %s", prev.Version, version)
	case -1:
		return fmt.Sprintf("Downgrading %s -> %s", prev.Version, version)
	default:
		return fmt.Sprintf("Reinstalling %s", version)
	}
}
