package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contactbook/internal/contact"
)

// Form field indexes, in tab order.
const (
	fieldFirstName = iota
	fieldLastName
	fieldPhoneNumber
	fieldCount
)

var fieldLabels = [fieldCount]string{"First name", "Last name", "Phone number"}

// formState holds the new-contact inputs and the problems from the last
// rejected submission.
type formState struct {
	inputs   [fieldCount]textinput.Model
	focus    int
	problems []string
}

// newFormState returns an empty form with the first field focused.
func newFormState() formState {
	var fs formState
	for i := range fs.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 64
		fs.inputs[i] = in
	}
	fs.inputs[fieldFirstName].Placeholder = "Jane"
	fs.inputs[fieldLastName].Placeholder = "Doe"
	fs.inputs[fieldPhoneNumber].Placeholder = "###-###-####"
	fs.inputs[fieldFirstName].Focus()
	return fs
}

// Raw returns the current input values as a submission.
func (fs formState) Raw() contact.Raw {
	return contact.Raw{
		FirstName:   fs.inputs[fieldFirstName].Value(),
		LastName:    fs.inputs[fieldLastName].Value(),
		PhoneNumber: fs.inputs[fieldPhoneNumber].Value(),
	}
}

// rejected returns the form showing the trimmed input and the problem
// messages from outcome.
func (fs formState) rejected(outcome contact.Outcome) formState {
	fs.inputs[fieldFirstName].SetValue(outcome.Input.FirstName)
	fs.inputs[fieldLastName].SetValue(outcome.Input.LastName)
	fs.inputs[fieldPhoneNumber].SetValue(outcome.Input.PhoneNumber)
	fs.problems = outcome.Messages()
	return fs
}

// move shifts focus by delta, wrapping around.
func (fs formState) move(delta int) (formState, tea.Cmd) {
	fs.inputs[fs.focus].Blur()
	fs.focus = (fs.focus + delta + fieldCount) % fieldCount
	return fs, fs.inputs[fs.focus].Focus()
}

func (fs formState) Update(msg tea.Msg) (formState, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			return fs.move(1)
		case "shift+tab", "up":
			return fs.move(-1)
		}
	}

	var cmd tea.Cmd
	fs.inputs[fs.focus], cmd = fs.inputs[fs.focus].Update(msg)
	return fs, cmd
}

// View renders the labelled inputs followed by any problems.
func (fs formState) View() string {
	var b strings.Builder
	for i, in := range fs.inputs {
		if i > 0 {
			b.WriteByte('\n')
		}
		marker := "  "
		if i == fs.focus {
			marker = CursorMarker
		}
		b.WriteString(marker)
		b.WriteString(labelStyle.Render(fieldLabels[i]))
		b.WriteString(in.View())
	}

	if len(fs.problems) > 0 {
		b.WriteString("\n")
		for _, p := range fs.problems {
			b.WriteString("\n")
			b.WriteString(errorText.Render("• " + p))
		}
	}
	return b.String()
}
