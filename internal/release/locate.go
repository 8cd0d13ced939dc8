package release

import (
	"fmt"

	"github.com/harehare/mq-task/internal/config"
	"github.com/harehare/mq-task/internal/platform"
)

// Artifact identifies one downloadable release binary and where its digest
// lives in the checksum manifest.
type Artifact struct {
	// Name is the artifact file name, e.g. "mq-task-x86_64-unknown-linux-gnu".
	Name string
	// URL is the full download URL of the artifact.
	URL string
	// ManifestKey is the lookup key inside the checksum manifest.
	ManifestKey string
	// ChecksumURL is the download URL of the checksum manifest asset.
	ChecksumURL string
}

// LocateArtifact maps a version tag and platform to the release artifact for
// that target. Pure string construction: no network, no filesystem, and the
// same inputs always produce the same Artifact.
func LocateArtifact(cfg *config.Config, version string, p platform.Platform) Artifact {
	name := cfg.CommandName + "-" + p.Triple() + p.ExeSuffix()
	base := fmt.Sprintf("%s/%s/releases/download/%s", cfg.DownloadBaseURL, cfg.Repo, version)

	return Artifact{
		Name:        name,
		URL:         base + "/" + name,
		ManifestKey: cfg.ManifestKey(name),
		ChecksumURL: base + "/" + cfg.ChecksumAsset,
	}
}
