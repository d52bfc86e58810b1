package cli

import (
	"strconv"
	"strings"
)

// MenuOption is the controller state selected from the menu.
type MenuOption int

const (
	MenuNoop MenuOption = iota
	MenuRegister
	MenuLogin
	MenuExit
)

func (o MenuOption) String() string {
	switch o {
	case MenuRegister:
		return "REGISTER_USER"
	case MenuLogin:
		return "LOGIN_USER"
	case MenuExit:
		return "EXIT"
	default:
		return "NOOP"
	}
}

// ParseMenuOption maps one input line to a selectable option. Anything that
// is not the integer of a selectable option yields (MenuNoop, false).
func ParseMenuOption(line string) (MenuOption, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return MenuNoop, false
	}

	switch o := MenuOption(n); o {
	case MenuRegister, MenuLogin, MenuExit:
		return o, true
	default:
		return MenuNoop, false
	}
}
