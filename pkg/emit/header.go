// Package emit renders the artifacts generated from a property catalog: the
// C++ metadata and props-by-set headers, the reStructuredText property and
// property-set references, and the Doxygen define list.
//
// Emitters write to an io.Writer and fail fast: a property whose metadata is
// incomplete aborts the whole artifact with an error naming it. Callers that
// write files should render into memory first so a failure leaves no partial
// output behind.
package emit

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/AcademySoftwareFoundation/openfx/pkg/catalog"
)

// ErrIncompleteMetadata is returned when a property lacks a required field.
var ErrIncompleteMetadata = errors.New("incomplete property metadata")

// HeaderOptions controls the generated C++ headers.
type HeaderOptions struct {
	Namespace string
	Includes  []string
	Generator string
}

// DefaultIncludes are the OpenFX headers that define every property macro.
var DefaultIncludes = []string{
	"ofxImageEffect.h",
	"ofxGPURender.h",
	"ofxColour.h",
	"ofxDrawSuite.h",
	"ofxParametricParam.h",
	"ofxKeySyms.h",
	"ofxOld.h",
}

// DefaultHeaderOptions returns the options matching the OpenFX tree.
func DefaultHeaderOptions() HeaderOptions {
	return HeaderOptions{
		Namespace: "OpenFX",
		Includes:  append([]string(nil), DefaultIncludes...),
		Generator: "ofxprops",
	}
}

func (o HeaderOptions) withDefaults() HeaderOptions {
	d := DefaultHeaderOptions()
	if o.Namespace == "" {
		o.Namespace = d.Namespace
	}
	if o.Includes == nil {
		o.Includes = d.Includes
	}
	if o.Generator == "" {
		o.Generator = d.Generator
	}
	return o
}

const metadataTypes = `enum class PropType {
   %s
};

enum class Writable {
   Host,
   Plugin,
   All
};

struct PropsMetadata {
  std::string name;
  std::vector<PropType> types;
  int dimension;
  Writable writable;
  bool host_optional;
  std::vector<const char *> values; // for enums
};

`

func writePreamble(b *strings.Builder, opts HeaderOptions, std ...string) {
	b.WriteString("// Copyright OpenFX and contributors to the OpenFX project.\n")
	b.WriteString("// SPDX-License-Identifier: BSD-3-Clause\n")
	fmt.Fprintf(b, "// NOTE: This file is auto-generated by %s. DO NOT EDIT.\n\n", opts.Generator)
	b.WriteString("#pragma once\n\n")
	for _, h := range std {
		fmt.Fprintf(b, "#include <%s>\n", h)
	}
	for _, h := range opts.Includes {
		fmt.Fprintf(b, "#include \"%s\"\n", h)
	}
	fmt.Fprintf(b, "\nnamespace %s {\n", opts.Namespace)
}

func writePostamble(b *strings.Builder, opts HeaderOptions) {
	fmt.Fprintf(b, "};\n} // namespace %s\n", opts.Namespace)
}

// WriteMetadataHeader emits the props_metadata table, one record per
// property in name order.
func WriteMetadataHeader(w io.Writer, cat *catalog.Catalog, opts HeaderOptions) error {
	opts = opts.withDefaults()

	var b strings.Builder
	writePreamble(&b, opts, "string", "vector")

	cppTypes := make([]string, len(catalog.AllTypes))
	for i, t := range catalog.AllTypes {
		cppTypes[i] = t.CppName()
	}
	fmt.Fprintf(&b, metadataTypes, strings.Join(cppTypes, ",\n   "))

	b.WriteString("const std::vector<struct PropsMetadata> props_metadata {\n")
	for _, name := range cat.PropertyNames() {
		record, err := metadataRecord(name, cat.Properties[name])
		if err != nil {
			return err
		}
		b.WriteString(record)
		b.WriteByte('\n')
	}
	writePostamble(&b, opts)

	_, err := io.WriteString(w, b.String())
	return err
}

// metadataRecord renders
//
//	{ NAME, {PropType::T,...}, DIM, Writable::W, HOSTOPT, {"v",...} },
func metadataRecord(name string, md *catalog.Metadata) (string, error) {
	switch {
	case md == nil:
		return "", fmt.Errorf("%w: %s has no metadata", ErrIncompleteMetadata, name)
	case len(md.Types) == 0:
		return "", fmt.Errorf("%w: %s is missing type", ErrIncompleteMetadata, name)
	case md.Dimension == nil:
		return "", fmt.Errorf("%w: %s is missing dimension", ErrIncompleteMetadata, name)
	case md.Writable == "":
		return "", fmt.Errorf("%w: %s is missing writable", ErrIncompleteMetadata, name)
	case md.HasType(catalog.TypeEnum) && len(md.Values) == 0:
		return "", fmt.Errorf("%w: %s is an enum without values", ErrIncompleteMetadata, name)
	}

	types := make([]string, len(md.Types))
	for i, t := range md.Types {
		types[i] = "PropType::" + t.CppName()
	}

	values := "{}"
	if md.HasType(catalog.TypeEnum) {
		quoted := make([]string, len(md.Values))
		for i, v := range md.Values {
			quoted[i] = `"` + v + `"`
		}
		values = "{" + strings.Join(quoted, ",") + "}"
	}

	return fmt.Sprintf("{ %s, {%s}, %d, Writable::%s, %s, %s },",
		name, strings.Join(types, ","), *md.Dimension, md.Writable.CppName(), md.HostOptional.Literal(), values), nil
}

// WritePropSetsHeader emits the prop_sets map: every set in name order with
// its distinct member names sorted.
func WritePropSetsHeader(w io.Writer, cat *catalog.Catalog, opts HeaderOptions) error {
	opts = opts.withDefaults()

	var b strings.Builder
	writePreamble(&b, opts, "string", "vector", "map")

	b.WriteString("const std::map<std::string, std::vector<const char *>> prop_sets {\n")
	for _, setName := range cat.SetNames() {
		members := uniqueSorted(cat.Sets[setName].Names())
		if len(members) == 0 {
			fmt.Fprintf(&b, "{ %q, {} },\n", setName)
			continue
		}
		fmt.Fprintf(&b, "{ %q, { %s } },\n", setName, strings.Join(members, ",\n   "))
	}
	writePostamble(&b, opts)

	_, err := io.WriteString(w, b.String())
	return err
}

func uniqueSorted(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	n := 0
	for i, s := range out {
		if i > 0 && s == out[n-1] {
			continue
		}
		out[n] = s
		n++
	}
	return out[:n]
}
