package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/contactbook/internal/contact"
)

// Model is the root Bubble Tea model. It owns the only path to the Roster
// while the program runs, so every read and submission is serialized by
// the event loop.
type Model struct {
	roster Roster
	mode   Mode
	list   listState
	form   formState
	status string
	width  int
	height int
	help   help.Model
}

// NewModel creates a Model in list mode showing roster's contacts.
func NewModel(roster Roster) Model {
	return Model{
		roster: roster,
		mode:   ModeList,
		list:   newListState(roster.Snapshot()),
		help:   help.New(),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case OpenFormMsg:
		return m.openForm()

	case SubmitMsg:
		return m.submit(msg.Raw)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == ModeForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) openForm() (tea.Model, tea.Cmd) {
	m.mode = ModeForm
	m.form = newFormState()
	m.status = ""
	return m, textinput.Blink
}

// submit hands the form values to the roster. A rejection keeps the form
// open with the trimmed values and every problem message; an acceptance
// returns to the list with the new contact selected.
func (m Model) submit(raw contact.Raw) (tea.Model, tea.Cmd) {
	outcome := m.roster.Submit(raw)
	if !outcome.Accepted() {
		m.form = m.form.rejected(outcome)
		return m, nil
	}
	added := outcome.Contact
	m.mode = ModeList
	m.list = m.list.reload(m.roster.Snapshot(), added.Key())
	m.status = "Added " + added.FullName()
	return m, nil
}

// handleKey processes key messages with global and mode-specific routing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeForm:
		switch msg.String() {
		case "esc":
			m.mode = ModeList
			m.status = ""
			return m, nil
		case "enter":
			return m.submit(m.form.Raw())
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd

	default:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "a", "n":
			return m.openForm()
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.handleKey(msg)
		return m, cmd
	}
}

// Mode returns the current view mode.
func (m Model) Mode() Mode {
	return m.mode
}

// View renders the active view inside a frame with a help bar.
func (m Model) View() string {
	var title, body string
	switch m.mode {
	case ModeForm:
		title = "New Contact"
		body = m.form.View()
	default:
		title = "Contacts"
		body = m.list.View()
		if m.status != "" {
			body += "\n\n" + successText.Render(m.status)
		}
	}

	frame := FrameStyle()
	if m.width > 2 {
		frame = frame.Width(m.width - 2)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), "", body)
	return lipgloss.JoinVertical(lipgloss.Left,
		frame.Render(content),
		m.help.View(HelpBindings(m.mode)),
	)
}
