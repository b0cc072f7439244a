package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jacksmith/keep/internal/storage"
	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Type: "record", ID: "inventory"}
	assert.Equal(t, "record inventory not found", err.Error())

	err = &NotFoundError{Type: "field", ID: "colour"}
	assert.Equal(t, "field colour not found", err.Error())
}

func TestValidationError(t *testing.T) {
	// With field
	err := &ValidationError{Field: "format", Message: "must be text or binary"}
	assert.Equal(t, "invalid format: must be text or binary", err.Error())

	// Without field
	err = &ValidationError{Message: "edited record is invalid"}
	assert.Equal(t, "edited record is invalid", err.Error())
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "", FormatError(nil))
	assert.Equal(t, "error: something went wrong", FormatError(errors.New("something went wrong")))

	t.Run("deserialization errors get a hint", func(t *testing.T) {
		err := fmt.Errorf("load profile: %w", &storage.DeserializationError{
			Path: "/data/profile", Codec: "cbor", Err: errors.New("bad"),
		})
		msg := FormatError(err)
		assert.Contains(t, msg, "error: load profile: deserialize /data/profile (cbor): bad")
		assert.Contains(t, msg, "hint: the file may be corrupt")
	})

	t.Run("configuration errors get a hint", func(t *testing.T) {
		msg := FormatError(&storage.ConfigurationError{Field: "Key", Message: "storage key is empty"})
		assert.Contains(t, msg, "error: invalid Key: storage key is empty")
		assert.Contains(t, msg, "hint: pass --key")
	})
}
