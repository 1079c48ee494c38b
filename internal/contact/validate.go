package contact

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxNameLength is the longest first or last name accepted.
const MaxNameLength = 25

var (
	alphabeticRe  = regexp.MustCompile(`^[A-Za-z]+$`)
	phoneNumberRe = regexp.MustCompile(`^[0-9]{3}-[0-9]{3}-[0-9]{4}$`)
)

// Outcome is the result of validating one submission. Exactly one of
// Contact (when Accepted) or Problems is meaningful.
type Outcome struct {
	// Input holds the trimmed submission, for redisplay on rejection.
	Input    Raw
	Contact  Contact
	Problems []Problem
}

// Accepted reports whether the submission produced a Contact.
func (o Outcome) Accepted() bool {
	return len(o.Problems) == 0
}

// Messages returns the problem messages in check order.
func (o Outcome) Messages() []string {
	msgs := make([]string, len(o.Problems))
	for i, p := range o.Problems {
		msgs[i] = p.Message
	}
	return msgs
}

// Err returns a *RejectedError for a rejected outcome and nil otherwise.
func (o Outcome) Err() error {
	if o.Accepted() {
		return nil
	}
	return &RejectedError{Input: o.Input, Problems: o.Problems}
}

// Validate checks a submission against the field rules and the existing
// contacts. Every check runs; failures accumulate in order: first name,
// last name, phone number, duplicate.
func Validate(raw Raw, existing []Contact) Outcome {
	in := Raw{
		FirstName:   strings.TrimSpace(raw.FirstName),
		LastName:    strings.TrimSpace(raw.LastName),
		PhoneNumber: strings.TrimSpace(raw.PhoneNumber),
	}

	var problems []Problem
	problems = checkName(problems, FieldFirstName, "First", in.FirstName)
	problems = checkName(problems, FieldLastName, "Last", in.LastName)
	problems = checkPhoneNumber(problems, in.PhoneNumber)
	problems = checkDuplicate(problems, in, existing)

	if len(problems) > 0 {
		return Outcome{Input: in, Problems: problems}
	}
	return Outcome{
		Input: in,
		Contact: Contact{
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			PhoneNumber: in.PhoneNumber,
		},
	}
}

// checkName applies the required, alphabetic and length rules in that
// order; at most one fires.
func checkName(problems []Problem, field Field, label, value string) []Problem {
	switch {
	case value == "":
		return append(problems, Problem{
			Field:   field,
			Kind:    MissingField,
			Message: label + " name is required.",
		})
	case !alphabeticRe.MatchString(value):
		return append(problems, Problem{
			Field:   field,
			Kind:    InvalidCharacterSet,
			Message: "Only enter alphabetic characters for " + label + " Name",
		})
	case len(value) > MaxNameLength:
		// ASCII-only at this point, so bytes equal characters.
		return append(problems, Problem{
			Field:   field,
			Kind:    ExceedsMaxLength,
			Message: fmt.Sprintf("Enter a %s Name of %d characters or less", label, MaxNameLength),
		})
	}
	return problems
}

func checkPhoneNumber(problems []Problem, value string) []Problem {
	switch {
	case value == "":
		return append(problems, Problem{
			Field:   FieldPhoneNumber,
			Kind:    MissingField,
			Message: "Phone number is required.",
		})
	case !phoneNumberRe.MatchString(value):
		return append(problems, Problem{
			Field:   FieldPhoneNumber,
			Kind:    InvalidPhoneFormat,
			Message: "Format your phone number as follows: ###-###-####",
		})
	}
	return problems
}

// checkDuplicate runs regardless of earlier failures.
func checkDuplicate(problems []Problem, in Raw, existing []Contact) []Problem {
	key := Key(in.FirstName, in.LastName)
	for _, c := range existing {
		if c.Key() == key {
			return append(problems, Problem{
				Field:   FieldFullName,
				Kind:    DuplicateContact,
				Message: key + " is already on your contact list. Duplicates are not allowed.",
			})
		}
	}
	return problems
}
