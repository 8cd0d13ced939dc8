// Package release resolves the latest mq-task release from the GitHub API,
// maps a (version, platform) pair to a deterministic artifact name and
// download URL, and downloads release assets to local files.
package release
