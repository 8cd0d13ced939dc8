package installer

import (
	"crypto"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	goupdate "github.com/doitdistributed/go-update"

	"github.com/harehare/mq-task/internal/platform"
)

// ErrInstall is returned when a step of binary placement fails. The wrapped
// message names the failing step; no rollback of earlier steps is attempted.
var ErrInstall = errors.New("install failed")

// binaryFileMode is the permission set for the installed binary.
const binaryFileMode os.FileMode = 0o755

// installBinary places the verified artifact under the bin directory and
// points the stable command-name symlink at it. The artifact's SHA-256 is
// re-checked at placement time: the bytes that land on disk are the bytes
// that were verified, even if the temp file changed underneath us.
func (i *Installer) installBinary(artifactPath, artifactName string, plat platform.Platform, expectedHex string) error {
	binDir := i.cfg.BinDir()
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("%w: creating install directory %s: %v", ErrInstall, binDir, err)
	}

	expected, err := hex.DecodeString(expectedHex)
	if err != nil {
		return fmt.Errorf("%w: decoding expected checksum: %v", ErrInstall, err)
	}

	src, err := os.Open(artifactPath)
	if err != nil {
		return fmt.Errorf("%w: opening verified artifact: %v", ErrInstall, err)
	}
	defer src.Close()

	binaryPath := i.cfg.BinaryPath(artifactName)
	options := goupdate.Options{
		TargetPath: binaryPath,
		TargetMode: binaryFileMode,
		Checksum:   expected,
		Hash:       crypto.SHA256,
	}
	if err := goupdate.Apply(src, options); err != nil {
		return fmt.Errorf("%w: placing binary at %s: %v", ErrInstall, binaryPath, err)
	}

	if err := platform.Chmod(binaryPath, binaryFileMode); err != nil {
		return fmt.Errorf("%w: setting executable bit on %s: %v", ErrInstall, binaryPath, err)
	}

	// go-update leaves the previous binary as ".old" when replacing.
	oldPath := binaryPath + ".old"
	if _, err := os.Stat(oldPath); err == nil {
		_ = os.Remove(oldPath)
	}

	linkPath := i.cfg.SymlinkPath(plat.ExeSuffix())
	if _, err := os.Lstat(linkPath); err == nil {
		if err := platform.RemoveSymlink(linkPath); err != nil {
			return fmt.Errorf("%w: removing existing symlink %s: %v", ErrInstall, linkPath, err)
		}
	}

	// Relative target keeps the link valid if the install root moves.
	if err := platform.CreateSymlink(artifactName, linkPath); err != nil {
		return fmt.Errorf("%w: creating symlink %s: %v", ErrInstall, linkPath, err)
	}

	return nil
}
