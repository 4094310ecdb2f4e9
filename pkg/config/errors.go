package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed
	// into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrReadingPolicy is returned when the email policy file cannot be read
	// or parsed.
	ErrReadingPolicy = errors.New("failed to read email policy file")

	// ErrEmptyPolicy is returned when the email policy file parses but lists
	// no allowed TLDs.
	ErrEmptyPolicy = errors.New("email policy lists no allowed TLDs")
)
