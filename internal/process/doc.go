// Package process is the seam between the scaffolding pipeline and the
// external commands it spawns (git, npm, yarn). Every component that shells
// out takes a Runner, so tests can swap in a deterministic fake.
package process
