package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contactbook/internal/contact"
)

// listState holds the sorted contacts and the cursor for list mode.
type listState struct {
	contacts []contact.Contact
	cursor   int
}

// newListState returns a listState showing contacts in display order.
func newListState(contacts []contact.Contact) listState {
	return listState{contacts: contact.SortedView(contacts)}
}

// reload replaces the contacts and moves the cursor to the contact whose
// key is selectKey, if present.
func (ls listState) reload(contacts []contact.Contact, selectKey string) listState {
	ls.contacts = contact.SortedView(contacts)
	ls.cursor = 0
	for i, c := range ls.contacts {
		if c.Key() == selectKey {
			ls.cursor = i
			break
		}
	}
	return ls
}

func (ls listState) handleKey(msg tea.KeyMsg) (listState, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if len(ls.contacts) > 0 {
			ls.cursor--
			if ls.cursor < 0 {
				ls.cursor = len(ls.contacts) - 1
			}
		}
		return ls, nil

	case "down", "j":
		if len(ls.contacts) > 0 {
			ls.cursor++
			if ls.cursor >= len(ls.contacts) {
				ls.cursor = 0
			}
		}
	}
	return ls, nil
}

// Selected returns the contact under the cursor and false if the list is empty.
func (ls listState) Selected() (contact.Contact, bool) {
	if len(ls.contacts) == 0 || ls.cursor < 0 || ls.cursor >= len(ls.contacts) {
		return contact.Contact{}, false
	}
	return ls.contacts[ls.cursor], true
}

// View renders the contact rows with the cursor marker.
func (ls listState) View() string {
	if len(ls.contacts) == 0 {
		return mutedText.Render("No contacts. Press a to add one.")
	}

	width := nameWidth(ls.contacts)
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render(formatRow(nameHeading, phoneHeading, width)))
	for i, c := range ls.contacts {
		b.WriteByte('\n')
		row := formatRow(c.FullName(), c.PhoneNumber, width)
		if i == ls.cursor {
			b.WriteString(CursorMarker)
			b.WriteString(selectedStyle.Render(row))
			continue
		}
		b.WriteString("  ")
		b.WriteString(row)
	}
	return b.String()
}
