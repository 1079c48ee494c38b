// Package store holds the process-resident contact list.
package store

import (
	"slices"
	"time"

	"github.com/smileynet/contactbook/internal/contact"
)

// SubmitEvent describes one handled submission.
type SubmitEvent struct {
	Outcome contact.Outcome
	At      time.Time
}

// SubmitCallback receives an event after every Submit.
type SubmitCallback func(SubmitEvent)

// Store is an insertion-ordered contact list.
// It is not safe for concurrent use; the host must serialize access.
type Store struct {
	contacts []contact.Contact
	onSubmit SubmitCallback
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithSeed sets the initial contents. The slice is copied.
func WithSeed(seed []contact.Contact) Option {
	return func(s *Store) {
		s.contacts = slices.Clone(seed)
	}
}

// WithSubmitCallback sets the function called after each Submit.
func WithSubmitCallback(cb SubmitCallback) Option {
	return func(s *Store) {
		if cb != nil {
			s.onSubmit = cb
		}
	}
}

// New creates a Store. Without WithSeed it starts empty.
func New(opts ...Option) *Store {
	s := &Store{
		onSubmit: func(SubmitEvent) {},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append adds c to the end of the list. c must already be validated.
func (s *Store) Append(c contact.Contact) {
	s.contacts = append(s.contacts, c)
}

// Snapshot returns a copy of the current contents in insertion order.
func (s *Store) Snapshot() []contact.Contact {
	return slices.Clone(s.contacts)
}

// Len returns the number of stored contacts.
func (s *Store) Len() int {
	return len(s.contacts)
}

// Submit validates raw against the current contents and appends the
// resulting contact when it is accepted.
func (s *Store) Submit(raw contact.Raw) contact.Outcome {
	outcome := contact.Validate(raw, s.Snapshot())
	if outcome.Accepted() {
		s.Append(outcome.Contact)
	}
	s.onSubmit(SubmitEvent{Outcome: outcome, At: s.now()})
	return outcome
}
