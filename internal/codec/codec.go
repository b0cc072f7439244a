// Package codec provides the encode/decode strategies used to persist records.
package codec

import (
	"fmt"
	"strings"
)

// Format selects the on-disk encoding of a record.
type Format int

const (
	// FormatText is indented, human-readable YAML.
	FormatText Format = iota
	// FormatBinary is deterministic CBOR.
	FormatBinary
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatBinary:
		return "binary"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses "text" or "binary" (case-insensitive).
// "yaml" and "cbor" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "yaml":
		return FormatText, nil
	case "binary", "cbor":
		return FormatBinary, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want text or binary)", s)
	}
}

// Codec encodes and decodes values of T.
type Codec[T any] interface {
	// Name returns the codec identifier used in errors and logs.
	Name() string
	// Marshal serializes v.
	Marshal(v T) ([]byte, error)
	// Unmarshal decodes data into a fresh T. A failed decode never returns
	// a partially populated value.
	Unmarshal(data []byte) (T, error)
}

// New returns the codec for f. Unknown formats fall back to text.
func New[T any](f Format) Codec[T] {
	if f == FormatBinary {
		return CBOR[T]{}
	}
	return YAML[T]{}
}
