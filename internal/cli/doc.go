// Package cli defines the single Cobra root command of the installer. There
// are no subcommands: invoking the binary runs one installation pass, and the
// only flags are --help and --version. Business logic lives in the installer
// package; this one handles flag parsing, signal wiring, and exit behavior.
package cli
