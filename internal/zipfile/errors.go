package zipfile

import "fmt"

// OpenError reports a container that could not be opened or is not a
// valid zip file.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("opening archive %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// ReadError reports corrupt or unreadable entry data mid-stream.
type ReadError struct {
	Entry string
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading archive entry %s: %v", e.Entry, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a destination that could not be created or a write
// that failed partway. A partial file may remain on disk.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
