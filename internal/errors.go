package internal

import "errors"

// Error kinds surfaced by both commands. Every failure path wraps exactly
// one of these so that mains and tests can classify errors with errors.Is.
var (
	// ErrConfiguration indicates bad or contradictory command-line
	// arguments, e.g. both --text and --text-path given.
	ErrConfiguration = errors.New("configuration error")

	// ErrExternalService indicates a failed call to the completion or
	// speech-synthesis API (network, auth, quota).
	ErrExternalService = errors.New("external service error")

	// ErrParse indicates malformed CSV input or an unparsable model
	// response.
	ErrParse = errors.New("parse error")

	// ErrFileIO indicates a missing input file or an unwritable output
	// path.
	ErrFileIO = errors.New("file I/O error")
)
