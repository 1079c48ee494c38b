package contact

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match is a search hit with its edit distance from the query.
type Match struct {
	Contact  Contact
	Distance int
}

// Search returns the contacts whose first, last, or full name is within
// maxDistance edits of query, ignoring case. A name containing the query
// scores 0. Matches are ordered by distance, then display order.
// An empty query matches nothing.
func Search(contacts []Contact, query string, maxDistance int) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matches []Match
	for _, c := range SortedView(contacts) {
		d := distance(c, q)
		if d <= maxDistance {
			matches = append(matches, Match{Contact: c, Distance: d})
		}
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return matches
}

// distance is the smallest edit distance between q and any name form of c.
func distance(c Contact, q string) int {
	best := -1
	for _, name := range []string{c.FirstName, c.LastName, c.FullName()} {
		name = strings.ToLower(name)
		if strings.Contains(name, q) {
			return 0
		}
		d := levenshtein.ComputeDistance(q, name)
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}
