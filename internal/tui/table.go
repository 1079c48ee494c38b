package tui

import (
	"fmt"
	"io"

	"github.com/smileynet/contactbook/internal/contact"
)

// Column headings for contact rows.
const (
	nameHeading  = "Name"
	phoneHeading = "Phone"
)

// nameWidth returns the display width of the name column for contacts.
func nameWidth(contacts []contact.Contact) int {
	w := len(nameHeading)
	for _, c := range contacts {
		if n := len(c.FullName()); n > w {
			w = n
		}
	}
	return w
}

// formatRow pads the full name to width and appends the phone number.
func formatRow(name, phone string, width int) string {
	return fmt.Sprintf("%-*s  %s", width, name, phone)
}

// WriteList writes contacts as aligned plain-text rows under a heading.
// Contacts are written in the order given.
func WriteList(w io.Writer, contacts []contact.Contact) error {
	if len(contacts) == 0 {
		_, err := fmt.Fprintln(w, "No contacts.")
		return err
	}
	width := nameWidth(contacts)
	if _, err := fmt.Fprintln(w, formatRow(nameHeading, phoneHeading, width)); err != nil {
		return err
	}
	for _, c := range contacts {
		if _, err := fmt.Fprintln(w, formatRow(c.FullName(), c.PhoneNumber, width)); err != nil {
			return err
		}
	}
	return nil
}
