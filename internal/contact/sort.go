package contact

import (
	"slices"
	"strings"
)

// Compare orders contacts by last name, then first name, using ordinal
// byte comparison.
func Compare(a, b Contact) int {
	if c := strings.Compare(a.LastName, b.LastName); c != 0 {
		return c
	}
	return strings.Compare(a.FirstName, b.FirstName)
}

// SortedView returns a new slice of contacts in display order.
// The input is not modified; ties keep their input order.
func SortedView(contacts []Contact) []Contact {
	sorted := slices.Clone(contacts)
	slices.SortStableFunc(sorted, Compare)
	return sorted
}
