package emit

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AcademySoftwareFoundation/openfx/pkg/catalog"
)

// typeCategories are the property reference sections, in output order.
var typeCategories = []struct {
	Type  catalog.PropType
	Title string
}{
	{catalog.TypeBool, "Boolean"},
	{catalog.TypeDouble, "Double"},
	{catalog.TypeEnum, "Enumeration"},
	{catalog.TypeInt, "Integer"},
	{catalog.TypePointer, "Pointer"},
	{catalog.TypeString, "String"},
}

// DocOptions controls the generated reference documents.
type DocOptions struct {
	// PropsDocName is the Sphinx document name of the property reference,
	// used for the cross-document link from the set reference.
	PropsDocName string
}

// DefaultPropsDocName is the document name of the generated property reference.
const DefaultPropsDocName = "ofxPropertiesReferenceGenerated"

// Anchor labels.
func propLabel(name string) string   { return "prop_" + name }
func setLabel(name string) string    { return "propset_" + name }
func actionLabel(name string) string { return "action_" + name }

// category returns the section a property is documented in: the first of
// its types that has a section. Properties are documented exactly once so
// their anchors stay unique.
func category(md *catalog.Metadata) (catalog.PropType, bool) {
	for _, t := range md.Types {
		for _, c := range typeCategories {
			if c.Type == t {
				return t, true
			}
		}
	}
	return "", false
}

// WritePropertyReference emits the flat property reference grouped by type.
func WritePropertyReference(w io.Writer, cat *catalog.Catalog) error {
	doc := NewRSTWriter()
	doc.Label("propertiesReferenceGenerated")
	doc.Title("Properties Reference (Generated)", '=')
	doc.Line("This reference is auto-generated from property definitions in the OpenFX source code.")
	doc.Line("It provides a structured view of properties with their types, dimensions, and where they are used.")
	doc.Paragraph("For each property, a link to the detailed Doxygen documentation is provided when available.")

	byType := make(map[catalog.PropType][]string)
	for _, name := range cat.PropertyNames() {
		md, ok := cat.Property(name)
		if !ok {
			return fmt.Errorf("%w: %s has no metadata", ErrIncompleteMetadata, name)
		}
		if t, ok := category(md); ok {
			byType[t] = append(byType[t], name)
		}
	}

	for _, c := range typeCategories {
		props := byType[c.Type]
		if len(props) == 0 {
			continue
		}
		doc.Title(c.Title+" Properties", '-')
		for _, name := range props {
			md, _ := cat.Property(name)
			writeProperty(doc, cat, name, md)
		}
	}

	_, err := doc.WriteTo(w)
	return err
}

func writeProperty(doc *RSTWriter, cat *catalog.Catalog, name string, md *catalog.Metadata) {
	cname := cat.CName(name)

	doc.Label(propLabel(name))
	doc.Title(Bold(name), '^')

	doc.Field("C #define", CMacro(cname))
	if len(md.Types) > 1 {
		doc.Field("Type", "Multiple types: "+strings.Join(md.Types.Strings(), ", "))
	} else {
		doc.Field("Type", string(md.Types[0]))
	}
	if md.Dim() == 0 {
		doc.Field("Dimension", "Variable (0 or more)")
	} else {
		doc.Field("Dimension", strconv.Itoa(md.Dim()))
	}

	if sets := cat.SetsUsing(name); len(sets) > 0 {
		refs := make([]string, len(sets))
		for i, s := range sets {
			refs[i] = Ref(s, setLabel(s))
		}
		doc.Field("Used in Property Sets", strings.Join(refs, ", "))
	}

	if md.HasType(catalog.TypeEnum) && len(md.Values) > 0 {
		doc.Line("- " + Bold("Valid Values") + ":")
		for _, v := range md.Values {
			doc.Line("  - " + Literal(v))
		}
	}

	if md.Default != "" {
		doc.Field("Default", string(md.Default))
	}
	if md.Introduced != "" {
		doc.Field("Introduced in", "version "+string(md.Introduced))
	}
	if md.Deprecated != "" {
		doc.Field("Deprecated in", "version "+string(md.Deprecated))
	}

	doc.Field("Doc", fmt.Sprintf("For detailed doc, see %s.", CMacro(cname)))
	doc.Blank()
}

// memberLine renders one property of a set or action argument list.
func memberLine(cat *catalog.Catalog, name string) string {
	md, ok := cat.Property(name)
	if !ok {
		return Literal(name) + " - (No metadata available)"
	}
	dim := "Variable"
	if md.Dim() != 0 {
		dim = strconv.Itoa(md.Dim())
	}
	return fmt.Sprintf("%s - Type: %s, Dimension: %s (doc: %s)",
		Ref(name, propLabel(name)), strings.Join(md.Types.Strings(), "/"), dim, CMacro(cat.CName(name)))
}

// WritePropertySetReference emits the per-set reference followed by the
// action argument listings.
func WritePropertySetReference(w io.Writer, cat *catalog.Catalog, opts DocOptions) error {
	docName := opts.PropsDocName
	if docName == "" {
		docName = DefaultPropsDocName
	}

	doc := NewRSTWriter()
	doc.Label("propertySetReferenceGenerated")
	doc.Title("Property Sets Reference (Generated)", '=')
	doc.Line("This reference is auto-generated from property set definitions in the OpenFX source code.")
	doc.Line("It provides an overview of property sets and their associated properties.")
	doc.Paragraph(fmt.Sprintf("For each property, a link to its detailed description in the :doc:`Properties Reference (Generated) <%s>` is provided.", docName))

	doc.Title("Regular Property Sets", '-')
	doc.Paragraph("These property sets represent collections of properties associated with various OpenFX objects.")

	setNames := cat.SetNames()
	doc.Paragraph(Bold("Property Sets Quick Reference"))
	toc := make([]string, len(setNames))
	for i, s := range setNames {
		toc[i] = Ref(s, setLabel(s))
	}
	doc.TOC(toc)

	for _, s := range setNames {
		set := cat.Sets[s]
		doc.Label(setLabel(s))
		doc.Title(Bold(s), '^')
		doc.Field("Write Access", set.WriteAccess())
		doc.Blank()
		doc.Paragraph(Bold("Properties"))

		members := uniqueSorted(set.Names())
		if len(members) == 0 {
			doc.Paragraph("No properties defined for this set.")
			continue
		}
		lines := make([]string, len(members))
		for i, m := range members {
			lines[i] = memberLine(cat, m)
		}
		doc.BulletList(lines)
	}

	writeActions(doc, cat)

	_, err := doc.WriteTo(w)
	return err
}

func writeActions(doc *RSTWriter, cat *catalog.Catalog) {
	doc.Title("Actions Property Sets", '-')
	doc.Line("Actions in OFX have input and output property sets that are used to pass data between the host and plugin.")
	doc.Line("For each action, the required input properties (passed from host to plugin) and output properties")
	doc.Paragraph("(set by the plugin for the host to read) are documented.")

	actionNames := cat.ActionNames()
	doc.Paragraph(Bold("Actions Quick Reference"))
	toc := make([]string, len(actionNames))
	for i, a := range actionNames {
		toc[i] = Ref(a, actionLabel(a))
	}
	doc.TOC(toc)

	for _, a := range actionNames {
		action := cat.Actions[a]
		doc.Label(actionLabel(a))
		doc.Title(Bold(a), '^')

		if len(action.InArgs) == 0 && len(action.OutArgs) == 0 {
			doc.Paragraph("-- no in/out args --")
			continue
		}
		for _, args := range []struct {
			title string
			names []string
		}{
			{"Input Arguments", action.InArgs},
			{"Output Arguments", action.OutArgs},
		} {
			if len(args.names) == 0 {
				continue
			}
			doc.Paragraph(Bold(args.title))
			lines := make([]string, len(args.names))
			for i, p := range args.names {
				lines[i] = memberLine(cat, p)
			}
			doc.BulletList(lines)
		}
	}
}

// WriteDoxygenReference emits the legacy Properties Reference page: one
// doxygendefine directive per property name, sorted and de-duplicated.
func WriteDoxygenReference(w io.Writer, names []string) error {
	doc := NewRSTWriter()
	doc.Label("propertiesReference")
	doc.Title("Properties Reference", '=')
	for _, name := range uniqueSorted(names) {
		doc.Directive("doxygendefine", name)
	}
	_, err := doc.WriteTo(w)
	return err
}
