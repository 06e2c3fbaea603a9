// Package extension defines the installed extension record and its
// lifecycle: enable, disable, and uninstall. The registry package owns
// all Extension instances; everything else works through read-only
// accessors.
package extension
