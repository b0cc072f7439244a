package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// indent is the number of spaces per nesting level in text output.
const indent = 2

// YAML is the structured-text codec.
// Output is indented with two spaces and multi-line strings use block
// scalar style so diffs stay line oriented.
type YAML[T any] struct{}

// Name implements Codec.
func (YAML[T]) Name() string { return "yaml" }

// Marshal implements Codec.
func (YAML[T]) Marshal(v T) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to build YAML: %w", err)
	}
	useBlockScalars(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal implements Codec. Unknown fields and empty documents are errors.
func (YAML[T]) Unmarshal(data []byte) (T, error) {
	var v T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil {
		var zero T
		if errors.Is(err, io.EOF) {
			return zero, fmt.Errorf("failed to parse YAML: empty document")
		}
		return zero, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return v, nil
}

// useBlockScalars switches multi-line string scalars to literal style.
// Whitespace-only values and values with carriage returns keep the default
// quoted style, since a block scalar cannot carry them exactly.
func useBlockScalars(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" && blockSafe(n.Value) {
		n.Style = yaml.LiteralStyle
	}
	for _, c := range n.Content {
		useBlockScalars(c)
	}
}

func blockSafe(s string) bool {
	return strings.Contains(s, "\n") &&
		!strings.Contains(s, "\r") &&
		strings.TrimSpace(s) != ""
}
