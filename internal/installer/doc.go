// Package installer orchestrates one installation pass: platform detection,
// release resolution, artifact download, checksum verification, atomic
// placement under the install root, shell PATH registration, and a final
// filesystem verification gate. The pipeline is strictly sequential and any
// fatal stage failure aborts the rest of the run.
package installer
