package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/jacksmith/keep/internal/codec"
)

// ErrUnchanged is returned by EditRecord when the editor left the content
// as it was.
var ErrUnchanged = errors.New("no changes made")

// EditRecord opens v as YAML in $EDITOR and decodes the result.
// The edited document must be a complete, valid record.
func EditRecord[T any](v T) (T, error) {
	var c codec.YAML[T]

	content, err := c.Marshal(v)
	if err != nil {
		return v, err
	}
	edited, err := EditInEditor(content, ".yaml")
	if err != nil {
		return v, err
	}
	if bytes.Equal(bytes.TrimSpace(content), bytes.TrimSpace(edited)) {
		return v, ErrUnchanged
	}

	out, err := c.Unmarshal(edited)
	if err != nil {
		return v, &ValidationError{Message: fmt.Sprintf("edited record is invalid: %v", err)}
	}
	return out, nil
}

// EditInEditor opens content in $EDITOR and returns modified content.
// The suffix is used for the temporary file (e.g., ".yaml" for syntax highlighting).
// Returns error if EDITOR/VISUAL not set or editor exits non-zero.
func EditInEditor(content []byte, suffix string) ([]byte, error) {
	editor := getEditor()
	if editor == "" {
		return nil, fmt.Errorf("EDITOR not set. Set it or use `keep set` instead")
	}

	tmpFile, err := os.CreateTemp("", "keep-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := runEditor(editor, tmpPath); err != nil {
		return nil, err
	}

	result, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}
	return result, nil
}

// getEditor returns the editor command from environment.
// VISUAL takes precedence over EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// runEditor executes the editor with the given file path.
// The editor string may carry arguments (e.g., "code --wait").
func runEditor(editor, path string) error {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	args := append(parts[1:], path)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}
