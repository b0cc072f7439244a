package codec

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	// Core deterministic encoding: sorted map keys, shortest integers.
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("codec: cbor enc mode: %v", err))
	}
	// Go strings may hold invalid UTF-8 and the encoder writes them as is,
	// so the decoder must accept them back.
	decMode, err = cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
		UTF8:              cbor.UTF8DecodeInvalid,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("codec: cbor dec mode: %v", err))
	}
}

// CBOR is the compact binary codec.
type CBOR[T any] struct{}

// Name implements Codec.
func (CBOR[T]) Name() string { return "cbor" }

// Marshal implements Codec. Equal values always produce identical bytes.
func (CBOR[T]) Marshal(v T) ([]byte, error) {
	data, err := encMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode CBOR: %w", err)
	}
	return data, nil
}

// Unmarshal implements Codec. Trailing bytes, unknown fields, duplicate
// keys and type mismatches are all errors.
func (CBOR[T]) Unmarshal(data []byte) (T, error) {
	var v T
	if len(data) == 0 {
		return v, errors.New("failed to parse CBOR: empty payload")
	}
	if err := decMode.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to parse CBOR: %w", err)
	}
	return v, nil
}
