package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/gophusers/internal/filex"
	"github.com/dmitrijs2005/gophusers/internal/models"
	"gopkg.in/yaml.v3"
)

// document is the on-disk layout of the flat file.
type document struct {
	Users []models.User `json:"users" yaml:"users"`
}

// Codec encodes the flat-file document.
type Codec interface {
	Marshal(doc any) ([]byte, error)
	Unmarshal(data []byte, doc any) error
}

type JSONCodec struct{}

func (JSONCodec) Marshal(doc any) ([]byte, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func (JSONCodec) Unmarshal(data []byte, doc any) error {
	return json.Unmarshal(data, doc)
}

type YAMLCodec struct{}

func (YAMLCodec) Marshal(doc any) ([]byte, error) {
	return yaml.Marshal(doc)
}

func (YAMLCodec) Unmarshal(data []byte, doc any) error {
	return yaml.Unmarshal(data, doc)
}

// FileBackend keeps the whole collection in one flat file.
type FileBackend struct {
	path  string
	codec Codec
}

func NewFileBackend(path string, codec Codec) *FileBackend {
	return &FileBackend{path: path, codec: codec}
}

// Load reads the file. A missing or blank file is an empty collection.
func (b *FileBackend) Load(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.User{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", b.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []models.User{}, nil
	}

	var doc document
	if err := b.codec.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", b.path, err)
	}

	if doc.Users == nil {
		doc.Users = []models.User{}
	}
	return doc.Users, nil
}

// Save replaces the file contents atomically.
func (b *FileBackend) Save(ctx context.Context, users []models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := document{Users: users}
	if doc.Users == nil {
		doc.Users = []models.User{}
	}

	data, err := b.codec.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", b.path, err)
	}

	if err := filex.WriteFileAtomic(b.path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", b.path, err)
	}
	return nil
}

func (b *FileBackend) Close() error { return nil }
