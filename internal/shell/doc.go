// Package shell classifies the user's login shell, maps it to candidate
// profile files, and idempotently appends a PATH-extension line for the
// install directory. Registration never fails the installation: anything
// that prevents it degrades to a manual-action advisory.
package shell
