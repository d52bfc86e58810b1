package cli

import (
	"context"

	"github.com/dmitrijs2005/gophusers/internal/common"
	"github.com/dmitrijs2005/gophusers/internal/i18n"
	"github.com/dmitrijs2005/gophusers/internal/models"
)

// Register prompts for name, DNI and password and adds the account to the
// store. On success the new user becomes the active session user; a taken
// DNI returns common.ErrUserExists and leaves the session alone.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(ctx, a.reader, a.tr.T(i18n.PromptName), a.out)
	if err != nil {
		return err
	}

	dni, err := GetSimpleText(ctx, a.reader, a.tr.T(i18n.PromptDNI), a.out)
	if err != nil {
		return err
	}

	password, err := GetRawText(ctx, a.reader, a.tr.T(i18n.PromptNewPassword), a.out)
	if err != nil {
		return err
	}

	candidate := models.NewUser(name, dni, a.hasher.Digest(password))

	if !a.store.AddUser(candidate) {
		a.log.Info(ctx, "registration rejected, dni taken", "dni", dni)
		return common.ErrUserExists
	}

	a.user = &candidate
	a.log.Info(ctx, "user registered", "dni", dni)
	return nil
}

// Login prompts for DNI and password and, when they match a stored
// account, makes it the active session user. Failures leave the session
// untouched and return the store's error.
func (a *App) Login(ctx context.Context) error {
	dni, err := GetSimpleText(ctx, a.reader, a.tr.T(i18n.PromptDNI), a.out)
	if err != nil {
		return err
	}

	password, err := GetRawText(ctx, a.reader, a.tr.T(i18n.PromptCurrentPassword), a.out)
	if err != nil {
		return err
	}

	u, err := a.store.Login(dni, a.hasher.Digest(password))
	if err != nil {
		a.log.Warn(ctx, "login failed", "dni", dni)
		return err
	}

	a.user = &u
	a.log.Info(ctx, "login successful", "dni", dni)
	return nil
}
