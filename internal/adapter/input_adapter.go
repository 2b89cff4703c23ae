// Package adapter contains infrastructure adapters for the almanac CLI.
package adapter

import (
	"fmt"
	"io"
	"os"

	m "github.com/mouse-blink/almanac/internal/model"
)

// InputAdapter loads puzzle text so the domain layer never touches os
// directly.
type InputAdapter interface {
	// Read returns the contents of path, or of stdin when path is "-" or empty.
	Read(path m.Path) ([]byte, error)
}

// LocalInputAdapter reads from the local filesystem and the given stdin.
type LocalInputAdapter struct {
	stdin io.Reader
}

// NewLocalInputAdapter constructs a LocalInputAdapter reading stdin from r.
func NewLocalInputAdapter(r io.Reader) *LocalInputAdapter {
	return &LocalInputAdapter{stdin: r}
}

// Read loads the puzzle text.
func (a *LocalInputAdapter) Read(path m.Path) ([]byte, error) {
	if path.IsStdin() {
		if a.stdin == nil {
			return nil, fmt.Errorf("read input: no stdin available")
		}

		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("read input from stdin: %w", err)
		}

		return data, nil
	}

	info, err := os.Stat(string(path))
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("read input: %s is a directory", path)
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}

	return data, nil
}
