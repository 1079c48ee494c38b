// Package contact defines the contact record, the submission validator,
// and the display ordering used by every view of the contact list.
package contact

// Contact is a validated person record. Values are never modified after
// validation; there is no update or delete.
type Contact struct {
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	PhoneNumber string `yaml:"phone_number"`
}

// Raw is an unvalidated submission as gathered from a form or the command line.
type Raw struct {
	FirstName   string
	LastName    string
	PhoneNumber string
}

// Key returns the duplicate key for a first and last name.
// Comparison against it is case-sensitive.
func Key(firstName, lastName string) string {
	return firstName + " " + lastName
}

// Key returns the contact's duplicate key.
func (c Contact) Key() string {
	return Key(c.FirstName, c.LastName)
}

// FullName returns "First Last".
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Raw returns the contact as a submission with identical field values.
func (c Contact) Raw() Raw {
	return Raw{FirstName: c.FirstName, LastName: c.LastName, PhoneNumber: c.PhoneNumber}
}
