package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophusers/internal/common"
	"github.com/dmitrijs2005/gophusers/internal/config"
	"github.com/dmitrijs2005/gophusers/internal/cryptox"
	"github.com/dmitrijs2005/gophusers/internal/i18n"
	"github.com/dmitrijs2005/gophusers/internal/logging"
	"github.com/dmitrijs2005/gophusers/internal/models"
	"github.com/dmitrijs2005/gophusers/internal/storage"
	"github.com/dmitrijs2005/gophusers/internal/userdb"
	"github.com/google/uuid"
)

// UserStore is the part of userdb.Store the controller needs.
type UserStore interface {
	AddUser(user models.User) bool
	Login(dni, passwordDigest string) (models.User, error)
	WriteDB(ctx context.Context) bool
}

// Digester hashes passwords.
type Digester interface {
	Digest(password string) string
}

// App is the menu controller. It owns the store handle and the single
// active-session slot; user is nil until a registration or login succeeds.
type App struct {
	store   UserStore
	hasher  Digester
	tr      *i18n.Translator
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	errOut  io.Writer
	styles  styles
	user    *models.User
	closers []io.Closer
}

// NewApp wires logging, hashing, storage and localization from c and binds
// the controller to the process's standard streams.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	baseLog, logCloser, err := logging.Open(c.LogFile, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	log := baseLog.With("session", uuid.NewString())

	hasher, err := cryptox.NewHasher(c.HashAlgorithm)
	if err != nil {
		_ = logCloser.Close()
		return nil, err
	}

	backend, err := storage.Open(ctx, c.DataFile)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("open storage %s: %w", c.DataFile, err)
	}

	store, err := userdb.Open(ctx, backend, log.With("file", c.DataFile, "backend", storage.KindFor(c.DataFile)))
	if err != nil {
		_ = backend.Close()
		_ = logCloser.Close()
		return nil, err
	}

	log.Debug(ctx, "application configured", "hash", hasher.Algorithm(), "lang", c.Language)

	return &App{
		store:   store,
		hasher:  hasher,
		tr:      i18n.New(c.Language),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		errOut:  os.Stderr,
		styles:  newStyles(os.Stdout, os.Stderr),
		closers: []io.Closer{backend, logCloser},
	}, nil
}

// Run drives the menu until the user exits, input ends or ctx is
// cancelled, then persists the store. A failed write is reported on the
// error stream; it does not make Run fail.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	a.loop(ctx)

	// flush even when ctx was cancelled by a signal
	if !a.store.WriteDB(context.WithoutCancel(ctx)) {
		fmt.Fprintln(a.errOut, a.styles.err.Render(a.tr.T(i18n.ErrWriteDB)))
	}
	a.log.Info(ctx, "session finished")
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) loop(ctx context.Context) {
	option := MenuNoop
	var lastErr error

	for option != MenuExit {
		a.clearScreen()

		if lastErr != nil {
			a.showError(lastErr)
		}
		lastErr = nil
		option = MenuNoop

		a.showMenu()

		line, err := ReadLine(ctx, a.reader)
		if err != nil {
			a.endOfInput(ctx, err)
			return
		}

		parsed, ok := ParseMenuOption(line)
		if !ok {
			lastErr = common.ErrInputFormat
			continue
		}
		option = parsed

		switch option {
		case MenuRegister:
			lastErr = a.Register(ctx)
		case MenuLogin:
			lastErr = a.Login(ctx)
		case MenuExit:
			fmt.Fprintln(a.out, a.tr.T(i18n.Farewell))
		case MenuNoop:
		}

		if lastErr != nil && isEndOfInput(lastErr) {
			a.endOfInput(ctx, lastErr)
			return
		}
	}
}

func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (a *App) endOfInput(ctx context.Context, err error) {
	if isEndOfInput(err) {
		a.log.Info(ctx, "input closed, leaving menu", "reason", err)
		return
	}
	a.log.Error(ctx, "reading input failed, leaving menu", "error", err)
}

func (a *App) close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}
