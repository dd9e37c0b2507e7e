package store

import "errors"

// Error kinds returned by Store operations. Callers match them with errors.Is;
// the underlying cause, when there is one, stays in the wrapped chain.
var (
	// ErrConfiguration is returned by New when the configuration is missing or
	// inconsistent (empty filename, encryption enabled without a key).
	ErrConfiguration = errors.New("invalid store configuration")

	// ErrArgument is returned by Store for an empty key or a nil value.
	ErrArgument = errors.New("invalid argument")

	// ErrNotFound is returned by Get and Query when the key is absent.
	ErrNotFound = errors.New("key not found")

	// ErrDeserialization is returned when stored or loaded content does not
	// decode into the requested shape, including failed decryption.
	ErrDeserialization = errors.New("deserialization failed")

	// ErrIO is returned when the underlying filesystem operation fails.
	ErrIO = errors.New("store i/o failed")
)
