// Package zipfile reads extension bundles out of zip containers and
// writes their entries to disk. The reader exposes a forward-only,
// non-restartable entry sequence; callers that need a second pass reopen
// the archive.
package zipfile
