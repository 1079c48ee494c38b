// Package tui implements the interactive contact list: a sorted list view
// and a new-contact form backed by a Roster.
package tui

import "github.com/smileynet/contactbook/internal/contact"

// Mode represents the current view.
type Mode int

const (
	ModeList Mode = iota // Sorted contact list.
	ModeForm             // New-contact form.
)

// Roster is the contact list the UI reads and submits to.
// *store.Store satisfies it.
type Roster interface {
	Snapshot() []contact.Contact
	Submit(raw contact.Raw) contact.Outcome
}

// OpenFormMsg switches to the new-contact form, as pressing a does.
type OpenFormMsg struct{}

// SubmitMsg submits Raw as if it had been entered in the form.
type SubmitMsg struct {
	Raw contact.Raw
}
