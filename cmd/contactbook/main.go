package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/smileynet/contactbook"
	"github.com/smileynet/contactbook/internal/config"
	"github.com/smileynet/contactbook/internal/contact"
	"github.com/smileynet/contactbook/internal/seed"
	"github.com/smileynet/contactbook/internal/store"
	"github.com/smileynet/contactbook/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for contactbook.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	List    ListCmd          `cmd:"" help:"List contacts in display order."`
	Add     AddCmd           `cmd:"" help:"Submit a new contact."`
	Find    FindCmd          `cmd:"" help:"Find contacts by approximate name."`
	Browse  BrowseCmd        `cmd:"" help:"Browse and add contacts interactively."`
}

// SeedFlag selects the contact set the store starts with.
type SeedFlag struct {
	Seed string `help:"Seed preset (default, empty) or path to a YAML seed file. Overrides config." placeholder:"SOURCE"`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/contactbook/config.yaml"),
		".contactbook/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup resolves config, applies the seed override and validates the result.
func setup(f SeedFlag) (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if f.Seed != "" {
		cfg.Seed.Source = f.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newStore loads the configured seed set into a fresh store.
// Local seeds under .contactbook/seeds shadow the embedded presets.
func newStore(cfg *config.Config, opts ...store.Option) (*store.Store, error) {
	loader := seed.NewLoader(contactbook.OverlayFS(".contactbook/seeds", contactbook.Seeds))
	contacts, err := loader.Load(cfg.Seed.Source)
	if err != nil {
		return nil, err
	}
	return store.New(append([]store.Option{store.WithSeed(contacts)}, opts...)...), nil
}

// openActivityLog returns the configured log file opened for append, or
// fallback when no file is configured. The returned close func is never nil.
func openActivityLog(cfg *config.Config, fallback io.Writer) (io.Writer, func() error, error) {
	if cfg.Log.File == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening activity log: %w", err)
	}
	return f, f.Close, nil
}

// ListCmd prints the seeded contacts.
type ListCmd struct {
	SeedFlag `embed:""`
}

// Run executes the list command.
func (l *ListCmd) Run() error {
	cfg, err := setup(l.SeedFlag)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	s, err := newStore(cfg)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	return l.run(os.Stdout, s)
}

// run writes the sorted view, enabling testable wiring.
func (l *ListCmd) run(w io.Writer, roster tui.Roster) error {
	return tui.WriteList(w, contact.SortedView(roster.Snapshot()))
}

// AddCmd submits one contact to the seeded store.
type AddCmd struct {
	SeedFlag  `embed:""`
	FirstName string `arg:"" name:"first" help:"First name."`
	LastName  string `arg:"" name:"last" help:"Last name."`
	Phone     string `arg:"" name:"phone" help:"Phone number (###-###-####)."`
}

// Run executes the add command.
func (a *AddCmd) Run() error {
	cfg, err := setup(a.SeedFlag)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	logw, closeLog, err := openActivityLog(cfg, os.Stderr)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	defer closeLog() //nolint:errcheck // best-effort close of append-only log

	s, err := newStore(cfg, store.WithSubmitCallback(activityCallback(logw)))
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	return a.run(os.Stdout, s)
}

// run submits the contact and reports the outcome, enabling testable wiring.
// A rejection is returned as *contact.RejectedError.
func (a *AddCmd) run(w io.Writer, roster tui.Roster) error {
	outcome := roster.Submit(contact.Raw{
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		PhoneNumber: a.Phone,
	})
	if !outcome.Accepted() {
		_, _ = fmt.Fprintln(w, "Contact not added:")
		for _, msg := range outcome.Messages() {
			_, _ = fmt.Fprintf(w, "  - %s\n", msg)
		}
		return outcome.Err()
	}

	_, _ = fmt.Fprintf(w, "Added %s\n\n", outcome.Contact.FullName())
	return tui.WriteList(w, contact.SortedView(roster.Snapshot()))
}

// FindCmd searches the seeded contacts by name.
type FindCmd struct {
	SeedFlag    `embed:""`
	Query       string `arg:"" help:"Name or part of a name to look for."`
	MaxDistance int    `help:"Maximum edit distance for a match. Negative uses config." default:"-1"`
}

// Run executes the find command.
func (f *FindCmd) Run() error {
	cfg, err := setup(f.SeedFlag)
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}
	if f.MaxDistance < 0 {
		f.MaxDistance = cfg.Search.MaxDistance
	}
	s, err := newStore(cfg)
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}
	return f.run(os.Stdout, s)
}

// run prints matches closest first, enabling testable wiring.
func (f *FindCmd) run(w io.Writer, roster tui.Roster) error {
	matches := contact.Search(roster.Snapshot(), f.Query, f.MaxDistance)
	if len(matches) == 0 {
		_, err := fmt.Fprintf(w, "No contacts match %q.\n", strings.TrimSpace(f.Query))
		return err
	}

	width := 0
	for _, m := range matches {
		if n := len(m.Contact.FullName()); n > width {
			width = n
		}
	}
	for _, m := range matches {
		_, err := fmt.Fprintf(w, "%-*s  %s  (distance %d)\n",
			width, m.Contact.FullName(), m.Contact.PhoneNumber, m.Distance)
		if err != nil {
			return err
		}
	}
	return nil
}

// BrowseCmd opens the interactive contact browser.
type BrowseCmd struct {
	SeedFlag `embed:""`
	Plain    bool `help:"Print the list once instead of starting the interactive browser."`
}

// Run builds real dependencies and launches the browser.
func (b *BrowseCmd) Run() error {
	cfg, err := setup(b.SeedFlag)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	plain := b.Plain || cfg.Display.Plain

	// The terminal belongs to the program, so activity only goes to a file.
	logw, closeLog, err := openActivityLog(cfg, io.Discard)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	defer closeLog() //nolint:errcheck // best-effort close of append-only log

	s, err := newStore(cfg, store.WithSubmitCallback(activityCallback(logw)))
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	display := tui.NewDisplay(tui.DisplayOptions{
		Writer:     os.Stdout,
		ForcePlain: plain,
		AltScreen:  cfg.Display.AltScreen,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return b.run(ctx, plain || tui.IsTTY(os.Stdout), display, s)
}

// run executes the display, enabling testable wiring.
func (b *BrowseCmd) run(ctx context.Context, canDisplay bool, display tui.Display, roster tui.Roster) error {
	if !canDisplay {
		return fmt.Errorf("browse: requires a terminal (TTY); use --plain for a listing")
	}
	return display.Run(ctx, roster)
}

// activityCallback returns a SubmitCallback that prints one timestamped line
// per submission.
func activityCallback(w io.Writer) store.SubmitCallback {
	return func(ev store.SubmitEvent) {
		ts := ev.At.Format("15:04:05")
		o := ev.Outcome
		if o.Accepted() {
			_, _ = fmt.Fprintf(w, "[%s] accepted %s\n", ts, o.Contact.FullName())
			return
		}
		name := strings.TrimSpace(contact.Key(o.Input.FirstName, o.Input.LastName))
		if name == "" {
			name = "(unnamed)"
		}
		_, _ = fmt.Fprintf(w, "[%s] rejected %s: %s\n", ts, name, strings.Join(o.Messages(), "; "))
	}
}

// Exit codes.
const (
	exitSuccess  = 0
	exitRejected = 1
	exitSetup    = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var re *contact.RejectedError
	if errors.As(err, &re) {
		return exitRejected
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contactbook"),
		kong.Description("Keep a validated list of contacts."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
