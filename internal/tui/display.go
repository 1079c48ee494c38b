package tui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/contactbook/internal/contact"
)

// Display presents a Roster to the user until they are done.
type Display interface {
	Run(ctx context.Context, roster Roster) error
}

// DisplayOptions configures display creation.
type DisplayOptions struct {
	Writer     io.Writer // Output destination (default: os.Stdout).
	Input      io.Reader // Key input for the TUI (default: os.Stdin).
	ForcePlain bool      // Force plain text even if TTY.
	AltScreen  bool      // Run the TUI in the alternate screen buffer.
}

// NewDisplay returns a TUI display when the writer is a TTY, or a plain
// text display otherwise. ForcePlain overrides TTY detection.
func NewDisplay(opts DisplayOptions) Display {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	if opts.ForcePlain || !IsTTY(opts.Writer) {
		return &PlainDisplay{w: opts.Writer}
	}

	return &TUIDisplay{w: opts.Writer, in: opts.Input, altScreen: opts.AltScreen}
}

// IsTTY reports whether w is connected to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainDisplay writes the sorted contact list once and returns.
type PlainDisplay struct {
	w io.Writer
}

// Run writes the roster's contacts in display order.
func (d *PlainDisplay) Run(ctx context.Context, roster Roster) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return WriteList(d.w, contact.SortedView(roster.Snapshot()))
}

// TUIDisplay runs the interactive Bubble Tea program.
// Falls back to PlainDisplay if the program fails to start.
type TUIDisplay struct {
	w         io.Writer
	in        io.Reader
	altScreen bool
}

// Run starts the program and blocks until the user quits or ctx is done.
func (d *TUIDisplay) Run(ctx context.Context, roster Roster) error {
	opts := []tea.ProgramOption{tea.WithOutput(d.w), tea.WithContext(ctx)}
	if d.in != nil {
		opts = append(opts, tea.WithInput(d.in))
	}
	if d.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewModel(roster), opts...)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		plain := &PlainDisplay{w: d.w}
		return plain.Run(context.Background(), roster)
	}
	return nil
}
