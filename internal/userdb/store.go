// Package userdb is the in-memory user collection loaded from and flushed
// to a storage.Backend.
package userdb

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophusers/internal/common"
	"github.com/dmitrijs2005/gophusers/internal/cryptox"
	"github.com/dmitrijs2005/gophusers/internal/logging"
	"github.com/dmitrijs2005/gophusers/internal/models"
	"github.com/dmitrijs2005/gophusers/internal/storage"
)

// Store holds users in insertion order. No two entries share a DNI.
// It is not safe for concurrent use.
type Store struct {
	backend storage.Backend
	log     logging.Logger
	users   []models.User
}

// Open loads the collection from backend. A missing backing file yields an
// empty store; any other read failure is wrapped in common.ErrPersistence.
func Open(ctx context.Context, backend storage.Backend, log logging.Logger) (*Store, error) {
	loaded, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load users: %v", common.ErrPersistence, err)
	}

	s := &Store{backend: backend, log: log, users: make([]models.User, 0, len(loaded))}
	for _, u := range loaded {
		if !s.AddUser(u) {
			log.Warn(ctx, "duplicate dni in backing file, keeping first record", "dni", u.DNI)
		}
	}

	log.Info(ctx, "user store loaded", "users", len(s.users))
	return s, nil
}

// AddUser appends user unless its DNI is already taken. Name and DNI are
// kept as valid UTF-8, each invalid byte becoming U+FFFD the way
// encoding/json writes it, so the in-memory record matches the file.
func (s *Store) AddUser(user models.User) bool {
	user.Name = validUTF8(user.Name)
	user.DNI = validUTF8(user.DNI)

	if _, ok := s.find(user.DNI); ok {
		return false
	}
	s.users = append(s.users, user)
	return true
}

// Login returns the user with the given DNI if passwordDigest matches.
// Unknown DNI and wrong digest both yield common.ErrInvalidCredentials.
func (s *Store) Login(dni, passwordDigest string) (models.User, error) {
	i, ok := s.find(validUTF8(dni))
	if !ok {
		return models.User{}, common.ErrInvalidCredentials
	}

	u := s.users[i]
	if !cryptox.Equal(u.PasswordDigest, passwordDigest) {
		return models.User{}, common.ErrInvalidCredentials
	}
	return u, nil
}

// Flush writes every user to the backend.
func (s *Store) Flush(ctx context.Context) error {
	if err := s.backend.Save(ctx, s.Users()); err != nil {
		return fmt.Errorf("%w: save users: %v", common.ErrPersistence, err)
	}
	return nil
}

// WriteDB flushes the store and reports whether it succeeded. Failures are
// logged, never returned, so shutdown can carry on.
func (s *Store) WriteDB(ctx context.Context) bool {
	if err := s.Flush(ctx); err != nil {
		s.log.Error(ctx, "writing user database failed", "error", err)
		return false
	}
	s.log.Info(ctx, "user database written", "users", len(s.users))
	return true
}

// Count returns the number of stored users.
func (s *Store) Count() int {
	return len(s.users)
}

// Users returns a copy of the collection in insertion order.
func (s *Store) Users() []models.User {
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) find(dni string) (int, bool) {
	for i, u := range s.users {
		if u.DNI == dni {
			return i, true
		}
	}
	return -1, false
}

// validUTF8 replaces every invalid byte with U+FFFD, one per byte.
func validUTF8(v string) string {
	if utf8.ValidString(v) {
		return v
	}

	var b strings.Builder
	for i := 0; i < len(v); {
		r, size := utf8.DecodeRuneInString(v[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
		} else {
			b.WriteString(v[i : i+size])
		}
		i += size
	}
	return b.String()
}
