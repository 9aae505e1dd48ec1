package cli

import (
	"context"

	"github.com/aussiebroadwan/scholarsync/pkg/scholarsdk"
)

// signupForm survives failed attempts. pendingEmail is set once the server
// has sent a code and the wizard is waiting for it.
type signupForm struct {
	Name         string
	Email        string
	pendingEmail string
}

// signup is a two step wizard. The second step only starts once the server
// accepted the first, and a later 'signup' resumes at the code prompt.
func (a *App) signup(ctx context.Context) error {
	f := &a.signupDraft

	if f.pendingEmail == "" {
		name, err := a.ask("Name", f.Name)
		if err != nil {
			return err
		}
		email, err := a.ask("Email", f.Email)
		if err != nil {
			return err
		}
		f.Name, f.Email = name, email

		password, err := a.askPassword("Password")
		if err != nil {
			return err
		}

		if _, err := a.client.Signup(ctx, scholarsdk.SignupRequest{Name: name, Email: email, Password: password}); err != nil {
			return err
		}
		f.pendingEmail = email
		a.success("OTP sent to %s", email)
	}

	code, err := a.readLine("OTP (blank to enter it later): ")
	if err != nil {
		return err
	}
	if code == "" {
		a.success("Run 'signup' again to enter the code sent to %s", f.pendingEmail)
		return nil
	}

	email := f.pendingEmail
	if _, err := a.client.VerifyOTP(ctx, scholarsdk.VerifyRequest{Email: email, OTP: code}); err != nil {
		if scholarsdk.IsAlreadyVerified(err) || scholarsdk.IsNotFound(err) {
			a.signupDraft = signupForm{}
		}
		return err
	}

	a.signupDraft = signupForm{}
	a.success("%s is verified, you can now log in", email)
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := a.ask("Email", a.signupDraft.Email)
	if err != nil {
		return err
	}
	password, err := a.askPassword("Password")
	if err != nil {
		return err
	}

	session, err := a.client.Login(ctx, scholarsdk.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	a.session = session
	if err := a.store.Save(scholarsdk.StoredSession{Token: session.Token(), User: session.User()}); err != nil {
		a.notify(err)
	}
	a.presence.Login(session.User())
	return nil
}

func (a *App) logout() error {
	if a.session == nil {
		return errNotLoggedIn
	}
	a.endSession()
	return nil
}

func (a *App) whoami() error {
	user, ok := a.presence.Current()
	if !ok {
		return errNotLoggedIn
	}
	a.success("%s <%s> (id %s)", user.Name, user.Email, user.ID)
	return nil
}
