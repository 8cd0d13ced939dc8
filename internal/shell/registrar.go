package shell

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Outcome describes how PATH registration ended.
type Outcome string

const (
	// Registered means a PATH line was appended to a profile file.
	Registered Outcome = "registered"
	// AlreadyRegistered means the profile already mentions the install dir.
	AlreadyRegistered Outcome = "already-registered"
	// ManualActionRequired means the user has to update PATH themselves.
	ManualActionRequired Outcome = "manual-action-required"
)

// Result reports what the registrar did (or could not do).
type Result struct {
	Outcome Outcome
	Shell   Shell
	// Profile is the profile file that was modified or found up to date.
	Profile string
	// Line is the PATH statement that was (or would be) appended.
	Line string
	// Reason explains a ManualActionRequired outcome.
	Reason string
}

// Registrar appends a PATH-extension line to the user's shell profile.
type Registrar struct {
	commandName string
	shellPath   string
	home        string
	goos        string
}

// NewRegistrar builds a Registrar from the process environment: $SHELL for
// the shell family and the user's home directory for profile locations.
func NewRegistrar(commandName string) *Registrar {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &Registrar{
		commandName: commandName,
		shellPath:   os.Getenv("SHELL"),
		home:        home,
		goos:        runtime.GOOS,
	}
}

// NewRegistrarFor is NewRegistrar with explicit inputs, for tests.
func NewRegistrarFor(commandName, shellPath, home, goos string) *Registrar {
	return &Registrar{
		commandName: commandName,
		shellPath:   shellPath,
		home:        home,
		goos:        goos,
	}
}

// RegisterPath ensures installBinDir is on the PATH configured by the user's
// shell profile. Idempotent: a profile that already mentions installBinDir
// anywhere is left untouched. Never fatal — every failure degrades to a
// ManualActionRequired result.
func (r *Registrar) RegisterPath(installBinDir string) Result {
	if r.goos == "windows" {
		return Result{
			Outcome: ManualActionRequired,
			Shell:   ShellUnknown,
			Reason:  "PATH registration is not automated on Windows",
		}
	}

	sh := Classify(r.shellPath)
	if !sh.IsValid() {
		return Result{
			Outcome: ManualActionRequired,
			Shell:   sh,
			Reason:  fmt.Sprintf("unrecognized shell %q", r.shellPath),
		}
	}
	if r.home == "" {
		return Result{
			Outcome: ManualActionRequired,
			Shell:   sh,
			Reason:  "home directory could not be determined",
		}
	}

	profile, found := firstExisting(ProfileCandidates(sh, r.home))
	if !found {
		return Result{
			Outcome: ManualActionRequired,
			Shell:   sh,
			Reason:  fmt.Sprintf("no %s profile file found", sh),
		}
	}

	line := PathLine(sh, installBinDir)

	present, err := mentionsDir(profile, installBinDir)
	if err != nil {
		return Result{
			Outcome: ManualActionRequired,
			Shell:   sh,
			Profile: profile,
			Reason:  fmt.Sprintf("reading %s: %v", profile, err),
		}
	}
	if present {
		return Result{
			Outcome: AlreadyRegistered,
			Shell:   sh,
			Profile: profile,
			Line:    line,
		}
	}

	section := fmt.Sprintf("\n# Added by the %s installer\n%s\n", r.commandName, line)
	if err := appendToProfile(profile, section); err != nil {
		return Result{
			Outcome: ManualActionRequired,
			Shell:   sh,
			Profile: profile,
			Reason:  fmt.Sprintf("updating %s: %v", profile, err),
		}
	}

	return Result{
		Outcome: Registered,
		Shell:   sh,
		Profile: profile,
		Line:    line,
	}
}

// firstExisting returns the first candidate that exists as a regular file.
func firstExisting(candidates []string) (string, bool) {
	for _, path := range candidates {
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// mentionsDir reports whether any line of the profile contains dir.
func mentionsDir(profile, dir string) (bool, error) {
	f, err := os.Open(profile)
	if err != nil {
		return false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), dir) {
			return true, nil
		}
	}
	return false, scanner.Err()
}

// appendToProfile rewrites the profile with section appended, using a
// temporary file in the same directory and an atomic rename.
func appendToProfile(profile, section string) error {
	existing, err := os.ReadFile(profile)
	if err != nil {
		return err
	}

	info, err := os.Stat(profile)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(profile), "."+filepath.Base(profile)+"-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(existing); err != nil {
		tmp.Close()
		return err
	}
	if len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		if _, err := tmp.WriteString("\n"); err != nil {
			tmp.Close()
			return err
		}
	}
	if _, err := tmp.WriteString(section); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		return err
	}

	return os.Rename(tmpPath, profile)
}
