package database

import "errors"

var (
	// ErrConfiguration reports a missing or malformed required input, such as an empty database name.
	ErrConfiguration = errors.New("configuration error")

	// ErrUnsupportedPlatform reports that the host cannot run the storage engine.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrSchema reports a failure creating collections or indexes, or an unexpected schema version.
	ErrSchema = errors.New("schema error")

	// ErrStorage reports a failure deleting a database.
	ErrStorage = errors.New("storage error")

	ErrRead  = errors.New("read error")
	ErrWrite = errors.New("write error")

	// ErrNotFound reports that a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrClosed reports an operation against a closed handle or a released gateway.
	ErrClosed = errors.New("database is closed")
)
