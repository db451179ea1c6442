package emit

import (
	"fmt"
	"io"
	"strings"
)

// RSTWriter builds a reStructuredText document.
type RSTWriter struct {
	sb strings.Builder
}

// NewRSTWriter creates an empty writer.
func NewRSTWriter() *RSTWriter {
	return &RSTWriter{}
}

// Label writes a reference target, e.g. ".. _prop_kOfxPropName:".
func (w *RSTWriter) Label(name string) {
	fmt.Fprintf(&w.sb, ".. _%s:\n\n", name)
}

// Title writes a section title underlined with c.
func (w *RSTWriter) Title(text string, c byte) {
	w.sb.WriteString(text)
	w.sb.WriteByte('\n')
	w.sb.WriteString(strings.Repeat(string(c), len(text)))
	w.sb.WriteString("\n\n")
}

// Paragraph writes text followed by a blank line.
func (w *RSTWriter) Paragraph(text string) {
	w.sb.WriteString(text)
	w.sb.WriteString("\n\n")
}

// Line writes text and a newline.
func (w *RSTWriter) Line(text string) {
	w.sb.WriteString(text)
	w.sb.WriteByte('\n')
}

// Field writes a "- **name**: value" bullet.
func (w *RSTWriter) Field(name, value string) {
	fmt.Fprintf(&w.sb, "- %s: %s\n", Bold(name), value)
}

// BulletList writes items as "- " bullets followed by a blank line.
func (w *RSTWriter) BulletList(items []string) {
	for _, item := range items {
		w.sb.WriteString("- ")
		w.sb.WriteString(item)
		w.sb.WriteByte('\n')
	}
	w.sb.WriteByte('\n')
}

// TOC writes items as "* " bullets followed by a blank line.
func (w *RSTWriter) TOC(items []string) {
	for _, item := range items {
		w.sb.WriteString("* ")
		w.sb.WriteString(item)
		w.sb.WriteByte('\n')
	}
	w.sb.WriteByte('\n')
}

// Directive writes ".. name:: arg" followed by a blank line.
func (w *RSTWriter) Directive(name, arg string) {
	fmt.Fprintf(&w.sb, ".. %s:: %s\n\n", name, arg)
}

// CodeBlock writes a code-block directive with code indented beneath it.
func (w *RSTWriter) CodeBlock(lang, code string) {
	fmt.Fprintf(&w.sb, ".. code-block:: %s\n\n", lang)
	for _, line := range strings.Split(strings.TrimRight(code, "\n"), "\n") {
		if line == "" {
			w.sb.WriteByte('\n')
			continue
		}
		w.sb.WriteString("   ")
		w.sb.WriteString(line)
		w.sb.WriteByte('\n')
	}
	w.sb.WriteByte('\n')
}

// Blank writes an empty line.
func (w *RSTWriter) Blank() {
	w.sb.WriteByte('\n')
}

// String returns the document.
func (w *RSTWriter) String() string {
	return w.sb.String()
}

// WriteTo writes the document to out.
func (w *RSTWriter) WriteTo(out io.Writer) (int64, error) {
	n, err := io.WriteString(out, w.sb.String())
	return int64(n), err
}

// Bold returns **text**.
func Bold(text string) string {
	return "**" + text + "**"
}

// Literal returns ``text``.
func Literal(text string) string {
	return "``" + text + "``"
}

// Ref returns a :ref: role linking text to label.
func Ref(text, label string) string {
	return fmt.Sprintf(":ref:`%s <%s>`", text, label)
}

// CMacro returns a :c:macro: role for name.
func CMacro(name string) string {
	return fmt.Sprintf(":c:macro:`%s`", name)
}
