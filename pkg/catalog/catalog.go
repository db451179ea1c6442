package catalog

import (
	"sort"
	"strings"
)

// Catalog is the loaded, expanded property catalog. Treat it as read-only.
type Catalog struct {
	Properties map[string]*Metadata
	Sets       map[string]*PropertySet
	Actions    map[string]*Action

	usage map[string][]string // property -> sorted set names
}

// New builds a Catalog from already-expanded parts. Nil maps are allowed.
func New(props map[string]*Metadata, sets map[string]*PropertySet, actions map[string]*Action) *Catalog {
	if props == nil {
		props = map[string]*Metadata{}
	}
	if sets == nil {
		sets = map[string]*PropertySet{}
	}
	if actions == nil {
		actions = map[string]*Action{}
	}
	for name, md := range props {
		if md != nil {
			md.Name = name
		}
	}

	c := &Catalog{
		Properties: props,
		Sets:       sets,
		Actions:    actions,
		usage:      make(map[string][]string),
	}
	for _, setName := range c.SetNames() {
		seen := make(map[string]bool)
		for _, name := range sets[setName].Names() {
			if seen[name] {
				continue
			}
			seen[name] = true
			c.usage[name] = append(c.usage[name], setName)
		}
	}
	return c
}

// Property returns the metadata for name.
func (c *Catalog) Property(name string) (*Metadata, bool) {
	md, ok := c.Properties[name]
	return md, ok && md != nil
}

// PropertyNames returns all property names, sorted.
func (c *Catalog) PropertyNames() []string {
	return sortedKeys(c.Properties)
}

// SetNames returns all set names, sorted.
func (c *Catalog) SetNames() []string {
	return sortedKeys(c.Sets)
}

// ActionNames returns all action names, sorted.
func (c *Catalog) ActionNames() []string {
	return sortedKeys(c.Actions)
}

// SetsUsing returns the sorted names of sets that list prop as a member.
func (c *Catalog) SetsUsing(prop string) []string {
	return c.usage[prop]
}

// IsUsed reports whether prop is a member of at least one set.
func (c *Catalog) IsUsed(prop string) bool {
	return len(c.usage[prop]) > 0
}

// CName returns the C macro name documenting prop: the metadata's cname
// override, the name itself when it already carries the "k" prefix, or
// "k" + name otherwise.
func (c *Catalog) CName(prop string) string {
	if md, ok := c.Property(prop); ok && md.CName != "" {
		return md.CName
	}
	if strings.HasPrefix(prop, "k") {
		return prop
	}
	return "k" + prop
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
