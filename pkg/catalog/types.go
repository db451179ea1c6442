package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// PropType is a property value type tag.
type PropType string

// Property value types.
const (
	TypeInt     PropType = "int"
	TypeDouble  PropType = "double"
	TypeEnum    PropType = "enum"
	TypeBool    PropType = "bool"
	TypeString  PropType = "string"
	TypeBytes   PropType = "bytes"
	TypePointer PropType = "pointer"
)

// AllTypes lists the property types in their C++ enumeration order.
var AllTypes = []PropType{TypeInt, TypeDouble, TypeEnum, TypeBool, TypeString, TypeBytes, TypePointer}

var titleCaser = cases.Title(language.Und)

// CppName returns the C++ enumerator name, e.g. "Int" for int.
func (t PropType) CppName() string {
	return titleCaser.String(string(t))
}

// Writable says which side of the API may set a property.
type Writable string

// Writable classifications.
const (
	WritableHost   Writable = "host"
	WritablePlugin Writable = "plugin"
	WritableAll    Writable = "all"
)

// CppName returns the C++ enumerator name, e.g. "Host" for host.
func (w Writable) CppName() string {
	return titleCaser.String(string(w))
}

// TypeList holds one or more type tags. In YAML it may be written as a
// scalar (`type: int`) or a list (`type: [int, string]`).
type TypeList []PropType

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *TypeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || value.Value == "" {
			*l = nil
			return nil
		}
		*l = TypeList{PropType(value.Value)}
		return nil
	case yaml.SequenceNode:
		var types []PropType
		if err := value.Decode(&types); err != nil {
			return err
		}
		*l = types
		return nil
	default:
		return fmt.Errorf("line %d: type must be a scalar or a list", value.Line)
	}
}

// Strings returns the type tags as plain strings.
func (l TypeList) Strings() []string {
	out := make([]string, len(l))
	for i, t := range l {
		out[i] = string(t)
	}
	return out
}

// Flag is a boolean that accepts true/false and 1/0 in any case.
type Flag bool

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Flag) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a boolean", value.Line)
	}
	switch strings.ToLower(value.Value) {
	case "true", "1":
		*f = true
	case "false", "0", "":
		*f = false
	default:
		return fmt.Errorf("line %d: invalid boolean %q", value.Line, value.Value)
	}
	return nil
}

// Literal returns the canonical lowercase C++ literal.
func (f Flag) Literal() string {
	if f {
		return "true"
	}
	return "false"
}

// Text keeps a YAML scalar verbatim, so version numbers like 1.4 are not
// reformatted as floats. A list is joined with ", ".
type Text string

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Text) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*t = ""
			return nil
		}
		*t = Text(value.Value)
	case yaml.SequenceNode:
		parts := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			parts = append(parts, item.Value)
		}
		*t = Text(strings.Join(parts, ", "))
	default:
		return fmt.Errorf("line %d: expected a scalar or a list", value.Line)
	}
	return nil
}

// Metadata describes a single property.
type Metadata struct {
	Name         string   `yaml:"-"`
	Types        TypeList `yaml:"type" validate:"required,min=1,dive,oneof=int double enum bool string bytes pointer"`
	Dimension    *int     `yaml:"dimension" validate:"required,gte=0"`
	Writable     Writable `yaml:"writable" validate:"required,oneof=host plugin all"`
	HostOptional Flag     `yaml:"hostOptional"`
	Values       []string `yaml:"values" validate:"omitempty,dive,required"`
	Default      Text     `yaml:"default"`
	Introduced   Text     `yaml:"introduced"`
	Deprecated   Text     `yaml:"deprecated"`
	CName        string   `yaml:"cname"`
}

// HasType reports whether t is one of the property's types.
func (m *Metadata) HasType(t PropType) bool {
	for _, have := range m.Types {
		if have == t {
			return true
		}
	}
	return false
}

// Dim returns the dimension, or 0 when unset.
func (m *Metadata) Dim() int {
	if m.Dimension == nil {
		return 0
	}
	return *m.Dimension
}

// Member is one entry of a property set, with its explicit per-member options.
type Member struct {
	Name    string
	Options map[string]string
}

// PropertySet is an expanded, named collection of properties.
type PropertySet struct {
	Name     string
	Members  []Member
	Defaults map[string]string
}

// Names returns the member names in declaration order.
func (s *PropertySet) Names() []string {
	names := make([]string, len(s.Members))
	for i, m := range s.Members {
		names[i] = m.Name
	}
	return names
}

// Details returns, for each member, the set defaults overlaid with the
// member's own options, overlaid with "name".
func (s *PropertySet) Details() []map[string]string {
	out := make([]map[string]string, len(s.Members))
	for i, m := range s.Members {
		d := make(map[string]string, len(s.Defaults)+len(m.Options)+1)
		for k, v := range s.Defaults {
			d[k] = v
		}
		for k, v := range m.Options {
			d[k] = v
		}
		d["name"] = m.Name
		out[i] = d
	}
	return out
}

// WriteAccess returns the set's default write access for documentation.
func (s *PropertySet) WriteAccess() string {
	if w, ok := s.Defaults["write"]; ok && w != "" {
		return w
	}
	if w, ok := s.Defaults["writable"]; ok && w != "" {
		return w
	}
	return "unknown"
}

// Action lists the input and output argument properties of an action.
type Action struct {
	Name    string
	InArgs  []string
	OutArgs []string
}
