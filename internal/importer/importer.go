package importer

import (
	"sort"
	"strings"
)

// Registry holds bank profiles keyed by lower-cased name.
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry creates an empty profile registry.
func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]Profile)}
}

// Register adds a profile, replacing any profile with the same name.
func (r *Registry) Register(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.profiles[strings.ToLower(p.Name)] = p
	return nil
}

// Lookup returns the profile for bank.
func (r *Registry) Lookup(bank string) (Profile, error) {
	p, ok := r.profiles[strings.ToLower(bank)]
	if !ok {
		return Profile{}, &UnsupportedBankError{Bank: bank}
	}
	return p, nil
}

// Converter returns a LineConverter for bank.
func (r *Registry) Converter(bank string) (*LineConverter, error) {
	p, err := r.Lookup(bank)
	if err != nil {
		return nil, err
	}
	return NewLineConverter(p), nil
}

// Names returns the registered profile names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with all built-in profiles.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, p := range BuiltinProfiles() {
		if err := r.Register(p); err != nil {
			panic("invalid built-in profile: " + err.Error())
		}
	}
	return r
}
