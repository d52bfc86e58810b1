package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/gophusers/internal/common"
	"github.com/dmitrijs2005/gophusers/internal/i18n"
	"golang.org/x/term"
)

const clearSequence = "\033[H\033[2J"

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type styles struct {
	greeting lipgloss.Style
	err      lipgloss.Style
}

// newStyles binds one renderer per stream, so colour is only emitted to
// streams that are colour terminals.
func newStyles(out, errOut io.Writer) styles {
	return styles{
		greeting: lipgloss.NewRenderer(out).NewStyle().Bold(true),
		err:      lipgloss.NewRenderer(errOut).NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && isTerminal(int(f.Fd()))
}

func (a *App) clearScreen() {
	if writerIsTerminal(a.out) {
		fmt.Fprint(a.out, clearSequence)
	}
}

func (a *App) showError(err error) {
	msg := a.tr.T(i18n.ErrorPrefix, a.tr.T(messageFor(err)))
	fmt.Fprintln(a.errOut, a.styles.err.Render(msg))
}

func (a *App) showMenu() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, a.styles.greeting.Render(a.tr.T(i18n.GreetingUser, a.user.Name)))
	} else {
		// only the anonymous greeting is set off by a blank line
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, a.styles.greeting.Render(a.tr.T(i18n.GreetingAnonymous)))
	}
	for _, k := range []i18n.Key{i18n.MenuRegister, i18n.MenuLogin, i18n.MenuExit} {
		fmt.Fprintln(a.out, "   "+a.tr.T(k))
	}
	fmt.Fprint(a.out, "> ")
}

// messageFor picks the user-facing message for an error kind. Error text
// itself never reaches the user.
func messageFor(err error) i18n.Key {
	switch {
	case errors.Is(err, common.ErrInputFormat):
		return i18n.ErrInvalidCommand
	case errors.Is(err, common.ErrUserExists):
		return i18n.ErrUserExists
	case errors.Is(err, common.ErrAuthentication):
		return i18n.ErrInvalidCredentials
	case errors.Is(err, common.ErrPersistence):
		return i18n.ErrWriteDB
	default:
		return i18n.ErrUnexpected
	}
}
