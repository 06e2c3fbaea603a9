package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
)

// ParseError reports a malformed or unreadable manifest.
type ParseError struct {
	Src string // file path, or a description of the source
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing manifest %s: %v", e.Src, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads and parses the manifest file at path.
func Parse(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Src: path, Err: err}
	}
	return ParseBytes(data, path)
}

// ParseBytes parses raw manifest JSON. The src argument names the source
// in error messages; use the file path or the archive entry name.
//
// The document is validated against the manifest schema first, so a
// missing or wrong-typed required field is a parse error. Unknown fields
// are ignored.
func ParseBytes(data []byte, src string) (*Manifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, &ParseError{Src: src, Err: err}
	}
	if !result.Valid {
		return nil, &ParseError{Src: src, Err: fmt.Errorf("schema violation: %s", result.Issues[0])}
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{Src: src, Err: err}
	}

	if m.Version != "" {
		if _, err := semver.NewVersion(m.Version); err != nil {
			return nil, &ParseError{Src: src, Err: fmt.Errorf("invalid version %q: %w", m.Version, err)}
		}
	}

	return &m, nil
}
