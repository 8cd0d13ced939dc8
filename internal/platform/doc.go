// Package platform identifies the host operating system and CPU architecture
// in the canonical form mq-task release artifacts are named after, and
// provides the cross-platform filesystem operations the installer needs:
// symlink creation and permission management. On Unix systems it uses native
// symlinks and chmod directly. On Windows it falls back to file copying with
// a .target sidecar when developer mode symlinks are unavailable.
package platform
