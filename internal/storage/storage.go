// Package storage persists the user collection. The backing file's
// extension selects the format: SQLite for .db/.sqlite/.sqlite3, YAML for
// .yaml/.yml, JSON for everything else.
package storage

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophusers/internal/models"
)

// Backend loads and saves the whole user collection at once.
//
// Load must treat a missing backing file as an empty collection and
// preserve the saved order. Save replaces the previous contents.
type Backend interface {
	Load(ctx context.Context) ([]models.User, error)
	Save(ctx context.Context, users []models.User) error
	Close() error
}

type Kind string

const (
	KindJSON   Kind = "json"
	KindYAML   Kind = "yaml"
	KindSQLite Kind = "sqlite"
)

// KindFor picks the backend kind from the file extension.
func KindFor(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite
	case ".yaml", ".yml":
		return KindYAML
	default:
		return KindJSON
	}
}

// Open returns the backend for path.
func Open(ctx context.Context, path string) (Backend, error) {
	switch KindFor(path) {
	case KindSQLite:
		return OpenSQLite(ctx, path)
	case KindYAML:
		return NewFileBackend(path, YAMLCodec{}), nil
	default:
		return NewFileBackend(path, JSONCodec{}), nil
	}
}
