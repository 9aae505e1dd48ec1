package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/aussiebroadwan/scholarsync/internal/client/presence"
	"github.com/aussiebroadwan/scholarsync/pkg/scholarsdk"
	"golang.org/x/term"
)

var (
	errNotLoggedIn    = errors.New("not logged in, use 'login' first")
	errSessionExpired = errors.New("session expired, please log in again")
)

// SessionStore persists the signed in session between runs.
type SessionStore interface {
	Load() (*scholarsdk.StoredSession, error)
	Save(scholarsdk.StoredSession) error
	Clear() error
}

type App struct {
	client   *scholarsdk.Client
	store    SessionStore
	presence *presence.Hub
	session  *scholarsdk.Session

	in          *bufio.Reader
	out         io.Writer
	interactive bool

	prompt *promptView
	unsubs []func()

	signupDraft  signupForm
	studentDraft studentForm
}

// NewApp builds a client for cfg reading commands from in. Passwords are
// read without echo when in is a terminal.
func NewApp(cfg Config, in io.Reader, out io.Writer) *App {
	client := scholarsdk.NewClient(cfg.ServerURL)
	client.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	a := &App{
		client:   client,
		store:    scholarsdk.FileSessionStore{Path: cfg.SessionFile},
		presence: presence.New(),
		in:       bufio.NewReader(in),
		out:      out,
		prompt:   &promptView{},
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		a.interactive = true
	}

	banner := &bannerView{out: out}
	a.unsubs = append(a.unsubs,
		a.presence.Subscribe(a.prompt.update),
		a.presence.Subscribe(banner.update),
	)
	return a
}

// Close detaches the views from presence updates.
func (a *App) Close() {
	for _, unsub := range a.unsubs {
		unsub()
	}
	a.unsubs = nil
}

// Run restores any saved session and then reads commands until exit or end
// of input.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "ScholarSync terminal client (type 'help' for commands)")
	a.restore()

	for {
		line, err := a.readLine(a.prompt.String())
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(a.out)
				return nil
			}
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if !a.dispatch(ctx, fields[0], fields[1:]) {
			fmt.Fprintln(a.out, "Bye!")
			return nil
		}
	}
}

// dispatch runs one command and reports whether the loop should continue.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	var err error

	switch cmd {
	case "help":
		a.help()
	case "signup":
		err = a.signup(ctx)
	case "login":
		err = a.login(ctx)
	case "logout":
		err = a.logout()
	case "whoami":
		err = a.whoami()
	case "create":
		err = a.create(ctx)
	case "list", "ls":
		err = a.list(ctx)
	case "edit":
		err = a.edit(ctx, args)
	case "delete", "rm":
		err = a.delete(ctx, args)
	case "exit", "quit":
		return false
	default:
		err = fmt.Errorf("unknown command %q, type 'help'", cmd)
	}

	if err != nil {
		a.notify(err)
	}
	return true
}

func (a *App) help() {
	fmt.Fprintln(a.out, "Commands:")
	if a.session == nil {
		fmt.Fprintln(a.out, "  signup, login, help, exit")
		return
	}
	fmt.Fprintln(a.out, "  list, create, edit <id>, delete <id>, whoami, logout, help, exit")
}

// notify prints a failure as a single line.
func (a *App) notify(err error) {
	msg := err.Error()
	if apiErr, ok := scholarsdk.AsAPIError(err); ok {
		msg = apiErr.Message
	}
	fmt.Fprintf(a.out, "✗ %s\n", msg)
}

func (a *App) success(format string, args ...any) {
	fmt.Fprintf(a.out, "✓ "+format+"\n", args...)
}

// restore resumes the session saved by a previous run.
func (a *App) restore() {
	saved, err := a.store.Load()
	if err != nil {
		a.notify(fmt.Errorf("could not read saved session: %w", err))
		return
	}
	if saved == nil {
		return
	}
	a.session = a.client.Resume(saved.Token, saved.User)
	a.presence.Login(saved.User)
}

// endSession forgets the current session everywhere.
func (a *App) endSession() {
	a.session = nil
	if err := a.store.Clear(); err != nil {
		a.notify(err)
	}
	a.presence.Logout()
}

// checkSession turns a 401 from a student call into a logout.
func (a *App) checkSession(err error) error {
	if scholarsdk.IsUnauthorized(err) {
		a.endSession()
		return errSessionExpired
	}
	return err
}
