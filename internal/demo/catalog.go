package demo

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/validkit/pkg/binder"
	"github.com/dmitrymomot/validkit/pkg/schema"
)

// ErrUnknownSchema is returned for a schema name that is not in the catalog.
var ErrUnknownSchema = errors.New("unknown schema")

// Entry is a type-erased schema with a constructor for its raw record.
type Entry struct {
	Schema schema.Nested
	NewRaw func() any
}

// Catalog holds the demo schemas built with one set of options.
type Catalog struct {
	signups *schema.Schema[RawSignup, Signup]
	entries map[string]Entry
}

// NewCatalog builds every demo schema with opts (logger, observers, parallelism).
func NewCatalog(opts ...schema.Option) *Catalog {
	addresses := NewAddresses(opts...)
	profiles := NewProfiles(opts...)
	signups := NewSignups(profiles, addresses, opts...)

	return &Catalog{
		signups: signups,
		entries: map[string]Entry{
			addresses.Name(): {Schema: addresses, NewRaw: func() any { return new(RawAddress) }},
			profiles.Name():  {Schema: profiles, NewRaw: func() any { return new(RawProfile) }},
			signups.Name():   {Schema: signups, NewRaw: func() any { return new(RawSignup) }},
		},
	}
}

// Signups returns the typed registration schema.
func (c *Catalog) Signups() *schema.Schema[RawSignup, Signup] {
	return c.signups
}

// Names lists the schemas in the catalog, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the entry registered under name.
func (c *Catalog) Lookup(name string) (Entry, error) {
	e, ok := c.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}
	return e, nil
}

// Validate decodes data by contentType into the raw record of the named
// schema and validates it. Decoding errors come from binder; validation
// failures are a *schema.ValidationError.
func (c *Catalog) Validate(name string, data []byte, contentType string) (any, error) {
	e, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	raw := e.NewRaw()
	if err := binder.Decode(data, contentType, raw); err != nil {
		return nil, err
	}
	return e.Schema.ValidateValue(raw)
}
