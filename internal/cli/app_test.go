package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophusers/internal/cryptox"
	"github.com/dmitrijs2005/gophusers/internal/i18n"
	"github.com/dmitrijs2005/gophusers/internal/logging"
	"github.com/dmitrijs2005/gophusers/internal/models"
	"github.com/dmitrijs2005/gophusers/internal/userdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

type memBackend struct {
	users []models.User
	saves int
}

func (m *memBackend) Load(context.Context) ([]models.User, error) { return m.users, nil }
func (m *memBackend) Save(_ context.Context, users []models.User) error {
	m.saves++
	m.users = append([]models.User(nil), users...)
	return nil
}
func (m *memBackend) Close() error { return nil }

type fakeStore struct {
	writeOK bool
	writes  int
}

func (f *fakeStore) AddUser(models.User) bool { return true }
func (f *fakeStore) Login(string, string) (models.User, error) {
	return models.User{}, nil
}
func (f *fakeStore) WriteDB(context.Context) bool { f.writes++; return f.writeOK }

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func newTestApp(t *testing.T, input string, store UserStore, lang string) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	h, err := cryptox.NewHasher(cryptox.AlgorithmSHA512)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	return &App{
		store:  store,
		hasher: h,
		tr:     i18n.New(lang),
		log:    logging.Discard(),
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &out,
		errOut: &errOut,
		styles: newStyles(&out, &errOut),
	}, &out, &errOut
}

func newStore(t *testing.T) (*userdb.Store, *memBackend) {
	t.Helper()
	mb := &memBackend{}
	s, err := userdb.Open(context.Background(), mb, logging.Discard())
	require.NoError(t, err)
	return s, mb
}

// ------------ tests ------------

func TestRun_Scenario(t *testing.T) {
	store, mb := newStore(t)
	input := lines(
		"1", "Ana", "12345678A", "secret",
		"2", "12345678A", "secret",
		"2", "12345678A", "wrong",
		"1", "Otra", "12345678A", "x",
		"3",
	)
	a, out, errOut := newTestApp(t, input, store, "en")

	a.Run(context.Background())

	require.Equal(t, 1, store.Count())
	require.NotNil(t, a.user)
	assert.Equal(t, "Ana", a.user.Name)

	assert.Contains(t, out.String(), "Hello, Ana. What do you want to do?")
	assert.Contains(t, out.String(), "See you later!")
	assert.Contains(t, errOut.String(), "An error occurred. Reason: The user or password is incorrect")
	assert.Contains(t, errOut.String(), "An error occurred. Reason: The user already exists")

	require.Equal(t, 1, mb.saves, "store is written once at exit")
	require.Len(t, mb.users, 1)
	assert.Equal(t, "12345678A", mb.users[0].DNI)
	assert.Len(t, mb.users[0].PasswordDigest, cryptox.DigestHexLen)
	assert.NotEqual(t, "secret", mb.users[0].PasswordDigest)
}

func TestRun_MenuAndGreeting(t *testing.T) {
	store, _ := newStore(t)
	a, out, _ := newTestApp(t, lines("3"), store, "en")

	a.Run(context.Background())

	got := out.String()
	for _, s := range []string{"Hello! What do you want to do?", "1) Register", "2) Login", "3) Exit", "> "} {
		assert.Contains(t, got, s)
	}
	assert.NotContains(t, got, clearSequence, "no clearing when output is not a terminal")
}

func TestRun_InvalidSelectorsAreRecovered(t *testing.T) {
	store, _ := newStore(t)
	a, out, errOut := newTestApp(t, lines("abc", "9", "", "3"), store, "en")

	a.Run(context.Background())

	assert.Equal(t, 3, strings.Count(errOut.String(), "Enter a valid command."))
	assert.Contains(t, out.String(), "See you later!")
	assert.Nil(t, a.user)
}

func TestRun_ErrorShownBeforeNextMenu(t *testing.T) {
	store, _ := newStore(t)
	a, out, _ := newTestApp(t, lines("x", "3"), store, "en")
	a.errOut = out
	a.styles = newStyles(out, out)

	a.Run(context.Background())

	got := out.String()
	errAt := strings.Index(got, "Enter a valid command.")
	require.GreaterOrEqual(t, errAt, 0)
	secondMenu := strings.LastIndex(got, "Hello! What do you want to do?")
	assert.Less(t, errAt, secondMenu)
	assert.Equal(t, 1, strings.Count(got, "Enter a valid command."), "error is shown only once")
}

func TestRun_LoginFailuresLookTheSame(t *testing.T) {
	store, _ := newStore(t)
	input := lines(
		"1", "Ana", "12345678A", "secret",
		"2", "12345678A", "wrong",
		"2", "00000000Z", "secret",
		"3",
	)
	a, _, errOut := newTestApp(t, input, store, "en")

	a.Run(context.Background())

	errLines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	require.Len(t, errLines, 2)
	assert.Equal(t, errLines[0], errLines[1])
}

func TestRun_FailedLoginKeepsSession(t *testing.T) {
	store, _ := newStore(t)
	input := lines(
		"1", "Ana", "1", "a",
		"1", "Eva", "2", "e",
		"2", "1", "bad",
		"3",
	)
	a, _, _ := newTestApp(t, input, store, "en")

	a.Run(context.Background())

	require.NotNil(t, a.user)
	assert.Equal(t, "Eva", a.user.Name, "last successful action owns the session")
}

func TestRun_LoginSwitchesUser(t *testing.T) {
	store, _ := newStore(t)
	input := lines(
		"1", "Ana", "1", "a",
		"1", "Eva", "2", "e",
		"2", "1", "a",
		"3",
	)
	a, _, _ := newTestApp(t, input, store, "en")

	a.Run(context.Background())

	require.NotNil(t, a.user)
	assert.Equal(t, "Ana", a.user.Name)
}

func TestRun_EOFPersistsWithoutFarewell(t *testing.T) {
	store, mb := newStore(t)
	a, out, _ := newTestApp(t, lines("1", "Ana", "1", "a"), store, "en")

	a.Run(context.Background())

	assert.NotContains(t, out.String(), "See you later!")
	require.Equal(t, 1, mb.saves)
	require.Len(t, mb.users, 1)
}

func TestRun_EOFInsidePrompt(t *testing.T) {
	store, mb := newStore(t)
	a, _, errOut := newTestApp(t, "1\nAna\n", store, "en")

	a.Run(context.Background())

	assert.Empty(t, errOut.String(), "truncated input is not shown as an error")
	assert.Equal(t, 0, store.Count())
	assert.Equal(t, 1, mb.saves)
}

func TestRun_CanceledContextStillPersists(t *testing.T) {
	fs := &fakeStore{writeOK: true}
	a, _, _ := newTestApp(t, lines("1", "Ana", "1", "a", "3"), fs, "en")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a.Run(ctx)

	assert.Equal(t, 1, fs.writes)
	assert.Nil(t, a.user)
}

func TestRun_WriteFailureIsReported(t *testing.T) {
	fs := &fakeStore{writeOK: false}
	a, out, errOut := newTestApp(t, lines("3"), fs, "en")

	a.Run(context.Background())

	assert.Equal(t, 1, fs.writes)
	assert.Contains(t, out.String(), "See you later!")
	assert.Contains(t, errOut.String(), "There were errors writing the database")
}

func TestRun_Spanish(t *testing.T) {
	store, _ := newStore(t)
	input := lines("1", "Ana", "1", "a", "x", "3")
	a, out, errOut := newTestApp(t, input, store, "es")

	a.Run(context.Background())

	assert.Contains(t, out.String(), "1) Registrarse")
	assert.Contains(t, out.String(), "Hola, Ana. ¿Qué quieres hacer?")
	assert.Contains(t, out.String(), "¡Hasta luego!")
	assert.Contains(t, errOut.String(), "Se ha producido un error. Motivo: Introduce un comando válido.")
}

type fdBuffer struct {
	bytes.Buffer
}

func (*fdBuffer) Fd() uintptr { return 1 }

func TestRun_ClearsTerminal(t *testing.T) {
	orig := isTerminal
	isTerminal = func(int) bool { return true }
	t.Cleanup(func() { isTerminal = orig })

	store, _ := newStore(t)
	a, _, _ := newTestApp(t, lines("x", "3"), store, "en")
	var term fdBuffer
	a.out = &term

	a.Run(context.Background())

	assert.True(t, strings.HasPrefix(term.String(), clearSequence))
	assert.Equal(t, 2, strings.Count(term.String(), clearSequence), "cleared once per iteration")
}

func TestShowMenu_BlankLineOnlyBeforeAnonymousGreeting(t *testing.T) {
	store, _ := newStore(t)
	a, out, _ := newTestApp(t, "", store, "es")

	a.showMenu()
	assert.True(t, strings.HasPrefix(out.String(), "\n¡Hola! ¿Qué quieres hacer?\n   1) Registrarse\n"))

	out.Reset()
	a.user = &models.User{Name: "Ana"}
	a.showMenu()
	assert.Equal(t, "Hola, Ana. ¿Qué quieres hacer?\n   1) Registrarse\n   2) Login\n   3) Salir\n> ", out.String())
}
