package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophusers/internal/filex"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds a logger for the given destination: path "" logs to stderr,
// anything else appends to that file. The returned closer releases the file.
func Open(path, level string) (*SlogLogger, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	if path == "" {
		return New(os.Stderr, lvl), nopCloser{}, nil
	}

	if _, err := filex.EnsureParentDir(path); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return New(f, lvl), f, nil
}
