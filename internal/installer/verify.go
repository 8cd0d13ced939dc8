package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harehare/mq-task/internal/platform"
)

// ErrVerification is returned when the final filesystem check fails even
// though every upstream stage reported success.
var ErrVerification = errors.New("installation verification failed")

// verifyInstall is the acceptance gate for the whole run: the binary must
// exist as an executable regular file and the command symlink must resolve
// to it. Checks are filesystem-only; the installed tool is never executed.
func (i *Installer) verifyInstall(artifactName string, plat platform.Platform) error {
	binaryPath := i.cfg.BinaryPath(artifactName)

	info, err := os.Stat(binaryPath)
	if err != nil {
		return fmt.Errorf("%w: binary missing at %s: %v", ErrVerification, binaryPath, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrVerification, binaryPath)
	}
	if !plat.IsWindows() && info.Mode().Perm()&0o111 == 0 {
		return fmt.Errorf("%w: %s is not executable", ErrVerification, binaryPath)
	}

	linkPath := i.cfg.SymlinkPath(plat.ExeSuffix())
	if _, err := os.Lstat(linkPath); err != nil {
		return fmt.Errorf("%w: symlink missing at %s: %v", ErrVerification, linkPath, err)
	}

	target, err := platform.ReadSymlinkTarget(linkPath)
	if err != nil {
		return fmt.Errorf("%w: %s is not a symlink: %v", ErrVerification, linkPath, err)
	}

	resolved := target
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(linkPath), resolved)
	}
	if filepath.Clean(resolved) != filepath.Clean(binaryPath) {
		return fmt.Errorf("%w: symlink resolves to %s, want %s", ErrVerification, resolved, binaryPath)
	}

	return nil
}
