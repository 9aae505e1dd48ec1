package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/aussiebroadwan/scholarsync/internal/client/presence"
)

// promptView renders the REPL prompt with the signed in email.
type promptView struct {
	mu  sync.Mutex
	who string
}

func (p *promptView) update(c presence.Change) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c.Event == presence.EventLogin {
		p.who = c.User.Email
	} else {
		p.who = ""
	}
}

func (p *promptView) String() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.who == "" {
		return "scholar> "
	}
	return fmt.Sprintf("scholar (%s)> ", p.who)
}

// bannerView prints a status line whenever someone signs in or out.
type bannerView struct {
	out io.Writer
}

func (b *bannerView) update(c presence.Change) {
	switch c.Event {
	case presence.EventLogin:
		fmt.Fprintf(b.out, "● Signed in as %s <%s>\n", c.User.Name, c.User.Email)
	case presence.EventLogout:
		fmt.Fprintln(b.out, "○ Signed out")
	}
}
