// Package userdata manages the ~/.pixelforge/ directory structure: the
// user-writable extensions directory, the search paths scanned for
// installed extensions, permission constants, and the preferences file
// that records the currently selected theme.
package userdata
