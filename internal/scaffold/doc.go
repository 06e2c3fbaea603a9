// Package scaffold generates a skeleton extension package on disk.
//
// The generated layout contains a package.json manifest, a README, and
// empty themes/ and palettes/ directories ready for contributions. The
// manifest is validated after generation so a freshly scaffolded
// extension always installs cleanly.
package scaffold
