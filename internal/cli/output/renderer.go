// Package output renders command results for terminals, pipes and tools.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects how results are rendered.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

func newStyles(lg *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1: lg.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: lg.NewStyle().Bold(true).Underline(true),
		Bold:    lg.NewStyle().Bold(true),
		Muted:   lg.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lg.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lg.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lg.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Info:    lg.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

// Renderer writes results to stdout and diagnostics to stderr.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer. An empty or unknown mode means auto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeMarkdown, ModeJSON:
	default:
		mode = ModeAuto
	}

	tty := isTerminal(out)
	lg := lipgloss.NewRenderer(out)
	if !tty {
		lg.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  tty,
		styles: newStyles(lg),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// EffectiveMode resolves auto: text on a terminal, markdown otherwise.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// Styles returns the text-mode styles.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Writer returns the result writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// Println writes a line of output.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// Printf writes formatted output.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Header writes a level 1 or 2 heading in the effective mode.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeText {
		style := r.styles.Header2
		if level <= 1 {
			style = r.styles.Header1
		}
		r.Println(style.Render(text))
		return
	}
	r.Println(FormatHeader(level, text))
}

// Success reports a successful outcome.
func (r *Renderer) Success(msg string) {
	r.status(r.out, r.styles.Success, "✔", msg)
}

// Warning reports a non-fatal problem on stderr.
func (r *Renderer) Warning(msg string) {
	r.status(r.errOut, r.styles.Warning, "!", msg)
}

// Error reports a failure on stderr.
func (r *Renderer) Error(msg string) {
	r.status(r.errOut, r.styles.Error, "✘", msg)
}

func (r *Renderer) status(w io.Writer, style lipgloss.Style, icon, msg string) {
	if r.EffectiveMode() == ModeText {
		_, _ = fmt.Fprintln(w, style.Render(icon+" "+msg))
		return
	}
	_, _ = fmt.Fprintln(w, msg)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatHeader returns a markdown heading.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + text + "\n"
}

// FormatKeyValue returns a markdown list item.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("- **%s:** %s", key, value)
}
