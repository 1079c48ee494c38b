// Package seed resolves the initial contact set from a preset or a YAML file.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/smileynet/contactbook/internal/contact"
)

// Preset names accepted by Loader.Load.
const (
	PresetDefault = "default"
	PresetEmpty   = "empty"
)

// ErrNoContacts indicates a seed file that parsed but listed no contacts.
var ErrNoContacts = errors.New("seed: no contacts defined")

// seedFile is the top-level YAML structure for a seed file.
type seedFile struct {
	Contacts []contact.Contact `yaml:"contacts"`
}

// Loader resolves seed specifiers. Presets are read from fsys as
// "<preset>.yaml".
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads presets from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load resolves specifier to a contact list. The specifier can be a
// preset name ("default", "empty") or a path to a YAML file.
// An empty specifier means "default".
func (l *Loader) Load(specifier string) ([]contact.Contact, error) {
	switch specifier {
	case "", PresetDefault:
		data, err := fs.ReadFile(l.fsys, PresetDefault+".yaml")
		if err != nil {
			return nil, fmt.Errorf("seed: reading preset %s: %w", PresetDefault, err)
		}
		return Parse(data)
	case PresetEmpty:
		return nil, nil
	}
	return LoadFile(specifier)
}

// LoadFile loads contacts from a YAML file on disk.
func LoadFile(path string) ([]contact.Contact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a seed file. Each entry must pass the same validation a
// submission would, checked against the entries before it.
func Parse(data []byte) ([]contact.Contact, error) {
	var file seedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		// Comment-only files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, ErrNoContacts
		}
		return nil, fmt.Errorf("seed: parsing YAML: %w", err)
	}

	if len(file.Contacts) == 0 {
		return nil, ErrNoContacts
	}

	contacts := make([]contact.Contact, 0, len(file.Contacts))
	for i, c := range file.Contacts {
		outcome := contact.Validate(c.Raw(), contacts)
		if err := outcome.Err(); err != nil {
			return nil, fmt.Errorf("seed: contacts[%d]: %w", i, err)
		}
		contacts = append(contacts, outcome.Contact)
	}
	return contacts, nil
}
