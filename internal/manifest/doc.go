// Package manifest parses the package.json descriptor found at the root
// of every PixelForge extension. A manifest names the extension and
// declares its theme and palette contributions.
package manifest
