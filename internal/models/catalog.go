package models

import "github.com/samber/lo"

// Code is one entry of a Catalog: the numeric ID used by forms and requests,
// the wire name the API answers with, and the label shown to people.
type Code struct {
	ID    int
	Name  string
	Label string
}

// Catalog is a bidirectional code table. Lookups are exact.
type Catalog struct {
	codes  []Code
	byID   map[int]Code
	byName map[string]Code
}

func NewCatalog(codes ...Code) *Catalog {
	c := &Catalog{
		codes:  codes,
		byID:   make(map[int]Code, len(codes)),
		byName: make(map[string]Code, len(codes)),
	}
	for _, code := range codes {
		c.byID[code.ID] = code
		c.byName[code.Name] = code
	}
	return c
}

// ID returns the numeric ID for a wire name.
func (c *Catalog) ID(name string) (int, bool) {
	code, ok := c.byName[name]
	return code.ID, ok
}

// Name returns the wire name for a numeric ID.
func (c *Catalog) Name(id int) (string, bool) {
	code, ok := c.byID[id]
	return code.Name, ok
}

// Label returns the display label for a wire name, or the name itself when
// the catalog does not know it.
func (c *Catalog) Label(name string) string {
	if code, ok := c.byName[name]; ok {
		return code.Label
	}
	return name
}

func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

func (c *Catalog) Codes() []Code {
	return append([]Code(nil), c.codes...)
}

func (c *Catalog) Names() []string {
	return lo.Map(c.codes, func(code Code, _ int) string { return code.Name })
}
