// Package cli wires the cobra command surface around the extension
// registry. The registry itself stays a plain library; this package is
// the host-application edge.
package cli
