package cli

import (
	"context"
	"time"

	"shopkeep/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.SignIn(ctx, email, string(password)); err != nil {
		a.reportAuthFailure("Sign in failed", err)
		return err
	}

	printlnFn("Signed in as", a.session.State().User.Email)
	return nil
}

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.SignUp(ctx, name, email, string(password)); err != nil {
		a.reportAuthFailure("Registration failed", err)
		return err
	}

	printlnFn("Account created, signed in as", a.session.State().User.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		printlnFn("Sign out finished with a warning:", err.Error())
		return err
	}
	printlnFn("Signed out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	s := a.session.State()
	if !s.Authenticated() {
		printlnFn("Not signed in")
		return nil
	}

	printlnFn("Signed in as", s.User.Name, "<"+s.User.Email+">")
	if exp, ok := a.session.TokenExpiry(); ok {
		printlnFn("Session expires at", exp.Format(time.RFC1123))
	}
	return nil
}

// reportAuthFailure shows the user-facing error message (preferring the
// ErrorMsg slot maintained by the session manager) and clears it afterwards.
func (a *App) reportAuthFailure(prefix string, err error) {
	msg := a.session.State().ErrorMsg
	if msg == "" {
		msg = err.Error()
	}
	printlnFn(prefix+":", msg)
	a.session.RemoveError()
}
