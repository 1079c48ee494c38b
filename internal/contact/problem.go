package contact

import (
	"fmt"
	"strings"
)

// Field identifies the input a Problem refers to.
type Field string

const (
	FieldFirstName   Field = "first_name"
	FieldLastName    Field = "last_name"
	FieldPhoneNumber Field = "phone_number"
	FieldFullName    Field = "full_name" // Duplicate check spans both name fields.
)

// Kind classifies a validation problem.
type Kind string

const (
	MissingField        Kind = "missing_field"
	InvalidCharacterSet Kind = "invalid_character_set"
	ExceedsMaxLength    Kind = "exceeds_max_length"
	InvalidPhoneFormat  Kind = "invalid_phone_format"
	DuplicateContact    Kind = "duplicate_contact"
)

// Problem is a single user-facing validation failure.
type Problem struct {
	Field   Field
	Kind    Kind
	Message string
}

func (p Problem) Error() string {
	return p.Message
}

// RejectedError reports a submission that failed validation.
// Problems are in the order the checks ran.
type RejectedError struct {
	Input    Raw
	Problems []Problem
}

func (e *RejectedError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Message
	}
	return fmt.Sprintf("contact: rejected %q: %s",
		strings.TrimSpace(Key(e.Input.FirstName, e.Input.LastName)), strings.Join(msgs, "; "))
}

// Has reports whether any problem is of kind k.
func (e *RejectedError) Has(k Kind) bool {
	for _, p := range e.Problems {
		if p.Kind == k {
			return true
		}
	}
	return false
}
