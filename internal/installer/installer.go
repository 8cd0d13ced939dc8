package installer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/harehare/mq-task/internal/checksum"
	"github.com/harehare/mq-task/internal/config"
	"github.com/harehare/mq-task/internal/logger"
	"github.com/harehare/mq-task/internal/platform"
	"github.com/harehare/mq-task/internal/release"
	"github.com/harehare/mq-task/internal/shell"
)

// Installer drives the installation pipeline. Construct it with New and run
// it once; it holds no state across runs beyond its collaborators.
type Installer struct {
	cfg       *config.Config
	detector  platform.Detector
	resolver  *release.Resolver
	digest    checksum.Digest
	registrar *shell.Registrar
	out       io.Writer
}

// Option configures an Installer.
type Option func(*Installer)

// WithDetector replaces the host platform detector (useful for testing).
func WithDetector(d platform.Detector) Option {
	return func(i *Installer) {
		i.detector = d
	}
}

// WithResolver replaces the release resolver (useful for testing).
func WithResolver(r *release.Resolver) Option {
	return func(i *Installer) {
		i.resolver = r
	}
}

// WithHTTPClient sets the HTTP client of the default resolver.
func WithHTTPClient(c *http.Client) Option {
	return func(i *Installer) {
		i.resolver = release.NewResolver(i.cfg, release.WithHTTPClient(c))
	}
}

// WithDigest replaces the artifact digest implementation (useful for testing).
func WithDigest(d checksum.Digest) Option {
	return func(i *Installer) {
		i.digest = d
	}
}

// WithRegistrar replaces the shell PATH registrar (useful for testing).
func WithRegistrar(r *shell.Registrar) Option {
	return func(i *Installer) {
		i.registrar = r
	}
}

// WithOutput redirects the user-facing epilogue (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(i *Installer) {
		i.out = w
	}
}

// New creates an Installer wired with production collaborators.
func New(cfg *config.Config, opts ...Option) *Installer {
	i := &Installer{
		cfg:       cfg,
		detector:  platform.NewDetector(),
		resolver:  release.NewResolver(cfg),
		digest:    checksum.SHA256{},
		registrar: shell.NewRegistrar(cfg.CommandName),
		out:       os.Stdout,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Run executes one installation pass. Every stage failure aborts the
// remaining pipeline; only shell PATH registration is advisory.
func (i *Installer) Run(ctx context.Context) error {
	ctx = logger.WithName(ctx, "installer")

	logger.Info(ctx, "Detecting platform")

	plat, err := i.detector.Detect(ctx)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Platform detected", "platform", plat.String(), "triple", plat.Triple())

	i.warnIfRunning(ctx)

	logger.Infof(ctx, "Resolving latest release of %s", i.cfg.Repo)

	version, err := i.resolver.ResolveLatest(ctx)
	if err != nil {
		return err
	}

	artifact := release.LocateArtifact(i.cfg, version, plat)

	logger.InfoKV(ctx, "Release resolved", "version", version, "artifact", artifact.Name)

	prev, _ := LoadReceipt(i.cfg.InstallRoot)
	logger.Info(ctx, describeTransition(prev, version))

	// All downloads land in one temp directory removed on every exit path.
	tmpDir, err := os.MkdirTemp("", i.cfg.CommandName+"-install-*")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	logger.Infof(ctx, "Downloading checksum manifest %s", i.cfg.ChecksumAsset)

	manifestPath := filepath.Join(tmpDir, i.cfg.ChecksumAsset)
	if err := i.resolver.Download(ctx, artifact.ChecksumURL, manifestPath); err != nil {
		return fmt.Errorf("%w: %v", checksum.ErrManifestUnavailable, err)
	}

	manifest, err := parseManifestFile(manifestPath)
	if err != nil {
		return err
	}

	logger.Infof(ctx, "Downloading %s", artifact.URL)

	artifactPath := filepath.Join(tmpDir, artifact.Name)
	if err := i.resolver.Download(ctx, artifact.URL, artifactPath); err != nil {
		return err
	}

	logger.Info(ctx, "Verifying checksum")

	if err := checksum.Verify(artifactPath, manifest, artifact.ManifestKey, i.digest); err != nil {
		return err
	}

	logger.Infof(ctx, "Installing into %s", i.cfg.BinDir())

	expected := manifest[artifact.ManifestKey]
	if err := i.installBinary(artifactPath, artifact.Name, plat, expected); err != nil {
		return err
	}

	regResult := i.registrar.RegisterPath(i.cfg.BinDir())
	i.reportRegistration(ctx, regResult)

	logger.Info(ctx, "Verifying installation")

	if err := i.verifyInstall(artifact.Name, plat); err != nil {
		return err
	}

	receipt := &Receipt{
		Version:  version,
		Triple:   plat.Triple(),
		Artifact: artifact.Name,
		Checksum: expected,
	}
	if err := SaveReceipt(i.cfg.InstallRoot, receipt); err != nil {
		logger.Warnf(ctx, "Could not write install receipt: %v", err)
	}

	i.printEpilogue(version, regResult)

	return nil
}

// parseManifestFile opens and parses the downloaded checksum manifest.
func parseManifestFile(path string) (checksum.Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", checksum.ErrManifestUnavailable, err)
	}
	defer f.Close()

	return checksum.ParseManifest(f)
}

// reportRegistration logs the PATH registration outcome. Registration never
// fails the installation.
func (i *Installer) reportRegistration(ctx context.Context, result shell.Result) {
	switch result.Outcome {
	case shell.Registered:
		logger.InfoKV(ctx, "Added install directory to PATH", "profile", result.Profile)
	case shell.AlreadyRegistered:
		logger.InfoKV(ctx, "Install directory already on PATH", "profile", result.Profile)
	case shell.ManualActionRequired:
		logger.Warnf(ctx, "Could not update shell profile: %s", result.Reason)
	}
}

// printEpilogue tells the user what happened and what to do next.
func (i *Installer) printEpilogue(version string, reg shell.Result) {
	fmt.Fprintf(i.out, "%s %s installed to %s\n", i.cfg.CommandName, version, i.cfg.BinDir())

	switch reg.Outcome {
	case shell.Registered:
		fmt.Fprintf(i.out, "Added %s to PATH in %s\n", i.cfg.BinDir(), reg.Profile)
		fmt.Fprintf(i.out, "Restart your shell or run: source %s\n", reg.Profile)
	case shell.ManualActionRequired:
		fmt.Fprintf(i.out, "Add %s to your PATH manually, e.g.:\n", i.cfg.BinDir())
		fmt.Fprintf(i.out, "  %s\n", shell.PathLine(shell.ShellBash, i.cfg.BinDir()))
	}

	fmt.Fprintf(i.out, "Run '%s --help' to get started\n", i.cfg.CommandName)
}
