package storage

import "fmt"

// ConfigurationError indicates the store cannot resolve its backing file.
// It is returned before any filesystem access.
type ConfigurationError struct {
	Field   string // config field at fault, e.g. "Key"
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// SerializationError indicates the in-memory value could not be encoded.
type SerializationError struct {
	Path  string
	Codec string
	Err   error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize %s (%s): %v", e.Path, e.Codec, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// DeserializationError indicates file contents could not be decoded.
// Corrupt files, foreign formats and files written with the other codec
// all surface here.
type DeserializationError struct {
	Path  string
	Codec string
	Err   error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("deserialize %s (%s): %v", e.Path, e.Codec, e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// IOError indicates a filesystem operation failed.
type IOError struct {
	Op   string // "read", "write", "lock", ...
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
