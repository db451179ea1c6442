package emit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docsCatalog = `
properties:
  kOfxPropTime: {type: double, dimension: 1, writable: host, introduced: "1.2"}
  kOfxPropLabels: {type: string, dimension: 0, writable: plugin, default: ""}
  kOfxImageClipPropFieldOrder:
    type: [enum, string]
    dimension: 1
    writable: all
    values: [kOfxImageFieldNone, kOfxImageFieldLower]
    default: kOfxImageFieldNone
    deprecated: "1.5"
  OfxPropBuffer: {type: bytes, dimension: 1, writable: host}
  kOfxPropSpecial: {type: int, dimension: 1, writable: host, cname: kOfxPropSpecialMacro}
propertySets:
  ClipInstance:
    write: host
    props: [kOfxImageClipPropFieldOrder, kOfxPropTime, kOfxPropGhost]
  EffectDescriptor:
    props: ["kOfxPropLabels | write=plugin", kOfxPropTime, kOfxPropTime]
  Empty: []
Actions:
  Load:
    inArgs:
    outArgs:
  Render:
    inArgs: [kOfxPropTime, kOfxPropMissing]
    outArgs: []
`

func TestWritePropertyReference(t *testing.T) {
	cat := parse(t, docsCatalog)

	var buf bytes.Buffer
	require.NoError(t, WritePropertyReference(&buf, cat))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, ".. _propertiesReferenceGenerated:\n\nProperties Reference (Generated)\n================================\n\n"))

	assert.Contains(t, out, "Double Properties\n-----------------\n\n")
	assert.Contains(t, out, "Enumeration Properties\n")
	assert.NotContains(t, out, "Boolean Properties")

	assert.Contains(t, out, ".. _prop_kOfxPropTime:\n\n**kOfxPropTime**\n^^^^^^^^^^^^^^^^\n\n")
	assert.Contains(t, out, "- **C #define**: :c:macro:`kOfxPropTime`\n")
	assert.Contains(t, out, "- **Type**: double\n")
	assert.Contains(t, out, "- **Dimension**: 1\n")
	assert.Contains(t, out, "- **Used in Property Sets**: :ref:`ClipInstance <propset_ClipInstance>`, :ref:`EffectDescriptor <propset_EffectDescriptor>`\n")
	assert.Contains(t, out, "- **Introduced in**: version 1.2\n")
	assert.Contains(t, out, "- **Doc**: For detailed doc, see :c:macro:`kOfxPropTime`.\n")

	assert.Contains(t, out, "- **Dimension**: Variable (0 or more)\n")
	assert.Contains(t, out, "- **Type**: Multiple types: enum, string\n")
	assert.Contains(t, out, "- **Valid Values**:\n  - ``kOfxImageFieldNone``\n  - ``kOfxImageFieldLower``\n")
	assert.Contains(t, out, "- **Default**: kOfxImageFieldNone\n")
	assert.Contains(t, out, "- **Deprecated in**: version 1.5\n")

	assert.Contains(t, out, ":c:macro:`kOfxPropSpecialMacro`")
	// bytes has no section of its own
	assert.NotContains(t, out, "prop_OfxPropBuffer")
	// multi-type properties are documented once
	assert.Equal(t, 1, strings.Count(out, ".. _prop_kOfxImageClipPropFieldOrder:"))
}

func TestWritePropertySetReference(t *testing.T) {
	cat := parse(t, docsCatalog)

	var buf bytes.Buffer
	require.NoError(t, WritePropertySetReference(&buf, cat, DocOptions{}))
	out := buf.String()

	assert.Contains(t, out, ":doc:`Properties Reference (Generated) <ofxPropertiesReferenceGenerated>`")
	assert.Contains(t, out, "**Property Sets Quick Reference**\n\n* :ref:`ClipInstance <propset_ClipInstance>`\n* :ref:`EffectDescriptor <propset_EffectDescriptor>`\n* :ref:`Empty <propset_Empty>`\n")

	assert.Contains(t, out, ".. _propset_ClipInstance:\n\n**ClipInstance**\n^^^^^^^^^^^^^^^^\n\n- **Write Access**: host\n")
	assert.Contains(t, out, "- :ref:`kOfxImageClipPropFieldOrder <prop_kOfxImageClipPropFieldOrder>` - Type: enum/string, Dimension: 1 (doc: :c:macro:`kOfxImageClipPropFieldOrder`)\n")
	assert.Contains(t, out, "- ``kOfxPropGhost`` - (No metadata available)\n")
	assert.Contains(t, out, "- :ref:`kOfxPropLabels <prop_kOfxPropLabels>` - Type: string, Dimension: Variable (doc: :c:macro:`kOfxPropLabels`)\n")
	assert.Contains(t, out, "- **Write Access**: unknown\n")
	assert.Contains(t, out, "No properties defined for this set.\n")

	// duplicates inside a set are listed once
	set := out[strings.Index(out, ".. _propset_EffectDescriptor:"):strings.Index(out, ".. _propset_Empty:")]
	assert.Equal(t, 1, strings.Count(set, "<prop_kOfxPropTime>"))
}

func TestWritePropertySetReference_Actions(t *testing.T) {
	cat := parse(t, docsCatalog)

	var buf bytes.Buffer
	require.NoError(t, WritePropertySetReference(&buf, cat, DocOptions{PropsDocName: "props"}))
	out := buf.String()

	assert.Contains(t, out, "<props>`")
	assert.Contains(t, out, "Actions Property Sets\n---------------------\n\n")
	assert.Contains(t, out, "**Actions Quick Reference**\n\n* :ref:`Load <action_Load>`\n* :ref:`Render <action_Render>`\n")
	assert.Contains(t, out, ".. _action_Load:\n\n**Load**\n^^^^^^^^\n\n-- no in/out args --\n")

	render := out[strings.Index(out, ".. _action_Render:"):]
	assert.Contains(t, render, "**Input Arguments**\n\n- :ref:`kOfxPropTime <prop_kOfxPropTime>`")
	assert.Contains(t, render, "- ``kOfxPropMissing`` - (No metadata available)\n")
	assert.NotContains(t, render, "**Output Arguments**")
}

func TestWriteDoxygenReference(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDoxygenReference(&buf, []string{"kOfxPropTime", "kOfxPropName", "kOfxPropTime"}))

	assert.Equal(t, ".. _propertiesReference:\n\n"+
		"Properties Reference\n"+
		"====================\n\n"+
		".. doxygendefine:: kOfxPropName\n\n"+
		".. doxygendefine:: kOfxPropTime\n\n", buf.String())
}
