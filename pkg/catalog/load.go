package catalog

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// document mirrors the top level of ofx-props.yml.
type document struct {
	Properties   map[string]*Metadata  `yaml:"properties"`
	PropertySets map[string]any        `yaml:"propertySets"`
	Actions      map[string]*actionDoc `yaml:"Actions"`
}

type actionDoc struct {
	InArgs  []string `yaml:"inArgs"`
	OutArgs []string `yaml:"outArgs"`
}

// rawSet is a mapping-style property set: a props list plus default options.
type rawSet struct {
	Props   []string       `mapstructure:"props"`
	Options map[string]any `mapstructure:",remain"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(validateEnumValues, Metadata{})
	return v
}

// validateEnumValues requires a values list whenever enum is among the types.
func validateEnumValues(sl validator.StructLevel) {
	md := sl.Current().Interface().(Metadata)
	if md.HasType(TypeEnum) && len(md.Values) == 0 {
		sl.ReportError(md.Values, "values", "Values", "enum_values", "")
	}
}

// Load reads and parses the catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user's configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes, validates and expands a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if doc.Properties == nil {
		return nil, errors.New("missing 'properties' section")
	}
	if doc.PropertySets == nil {
		return nil, errors.New("missing 'propertySets' section")
	}

	for _, name := range sortedKeys(doc.Properties) {
		if err := ValidateMetadata(name, doc.Properties[name]); err != nil {
			return nil, err
		}
	}

	tokens := make(map[string][]string, len(doc.PropertySets))
	defaults := make(map[string]map[string]string, len(doc.PropertySets))
	for _, name := range sortedKeys(doc.PropertySets) {
		props, opts, err := decodeSet(name, doc.PropertySets[name])
		if err != nil {
			return nil, err
		}
		tokens[name] = props
		defaults[name] = opts
	}

	expanded, err := Expand(tokens)
	if err != nil {
		return nil, err
	}

	sets := make(map[string]*PropertySet, len(expanded))
	for name, members := range expanded {
		set := &PropertySet{Name: name, Defaults: defaults[name]}
		for _, tok := range members {
			m, err := ParseMember(tok)
			if err != nil {
				return nil, fmt.Errorf("property set %s: %w", name, err)
			}
			set.Members = append(set.Members, m)
		}
		sets[name] = set
	}

	actions := make(map[string]*Action, len(doc.Actions))
	for name, a := range doc.Actions {
		act := &Action{Name: name}
		if a != nil {
			act.InArgs = a.InArgs
			act.OutArgs = a.OutArgs
		}
		actions[name] = act
	}

	return New(doc.Properties, sets, actions), nil
}

// ValidateMetadata checks a single property's metadata.
func ValidateMetadata(name string, md *Metadata) error {
	if md == nil {
		return fmt.Errorf("%w: %s has no metadata", ErrInvalidMetadata, name)
	}
	if err := validate.Struct(md); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrInvalidMetadata, name, describeValidation(err))
	}
	return nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "enum_values":
			msgs = append(msgs, "values are required for enum properties")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s %q must be one of [%s]", fe.Field(), fe.Value(), fe.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// decodeSet accepts both catalog layouts: a bare member list, or a mapping
// with a props list and scalar default options.
func decodeSet(name string, raw any) ([]string, map[string]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil, nil
	case []any:
		var props []string
		if err := mapstructure.Decode(v, &props); err != nil {
			return nil, nil, fmt.Errorf("property set %s: %w", name, err)
		}
		return props, nil, nil
	case map[string]any:
		var rs rawSet
		if err := mapstructure.Decode(v, &rs); err != nil {
			return nil, nil, fmt.Errorf("property set %s: %w", name, err)
		}
		opts := make(map[string]string, len(rs.Options))
		for k, val := range rs.Options {
			if s, ok := scalarString(val); ok {
				opts[k] = s
			}
		}
		return rs.Props, opts, nil
	default:
		return nil, nil, fmt.Errorf("property set %s must be a list or a mapping", name)
	}
}

func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	default:
		return "", false
	}
}
