package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contactbook/internal/contact"
	"github.com/smileynet/contactbook/internal/store"
)

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}

func seededStore() *store.Store {
	return store.New(store.WithSeed([]contact.Contact{
		{FirstName: "Mike", LastName: "Jones", PhoneNumber: "281-330-8004"},
		{FirstName: "Jenny", LastName: "Keys", PhoneNumber: "768-867-5309"},
		{FirstName: "Max", LastName: "Entiger", PhoneNumber: "214-748-3647"},
		{FirstName: "Alicia", LastName: "Keys", PhoneNumber: "515-489-4608"},
	}))
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends msg to m and returns the updated model. Commands are not
// run; opening the form and submitting happen within Update.
func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func emptyStore() *store.Store {
	return store.New()
}

// typeText types s into the focused form field one rune at a time.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}
