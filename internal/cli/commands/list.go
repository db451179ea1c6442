package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AcademySoftwareFoundation/openfx/internal/cli/output"
	"github.com/AcademySoftwareFoundation/openfx/pkg/catalog"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// listKinds are the catalog views list can show.
var listKinds = []string{"properties", "sets", "actions"}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [properties|sets|actions]",
		Short: "List catalog properties, property sets or actions",
		Long: `List the contents of the expanded property catalog.

Output adapts to environment:
  - Terminal: table
  - Piped/Scripted: Markdown table (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # List all properties
  ofxprops list

  # List property sets as JSON
  ofxprops list sets --output json`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: listKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "properties"
			if len(args) > 0 {
				kind = args[0]
			}
			return runList(cmd, kind)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command, kind string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	cat, err := cmdCtx.Engine.Load()
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(listJSON(cat, kind))
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)

	var title string
	switch kind {
	case "sets":
		title = fmt.Sprintf("Property Sets (%d total)", len(cat.Sets))
		t.AppendHeader(table.Row{"Set", "Write Access", "Members"})
		for _, name := range cat.SetNames() {
			set := cat.Sets[name]
			t.AppendRow(table.Row{name, set.WriteAccess(), len(set.Members)})
		}
	case "actions":
		title = fmt.Sprintf("Actions (%d total)", len(cat.Actions))
		t.AppendHeader(table.Row{"Action", "In Args", "Out Args"})
		for _, name := range cat.ActionNames() {
			a := cat.Actions[name]
			t.AppendRow(table.Row{name, strings.Join(a.InArgs, ", "), strings.Join(a.OutArgs, ", ")})
		}
	default:
		title = fmt.Sprintf("Properties (%d total)", len(cat.Properties))
		t.AppendHeader(table.Row{"Property", "Type", "Dimension", "Writable", "Sets"})
		for _, name := range cat.PropertyNames() {
			md, ok := cat.Property(name)
			if !ok {
				t.AppendRow(table.Row{name, "-", "-", "-", len(cat.SetsUsing(name))})
				continue
			}
			t.AppendRow(table.Row{name, strings.Join(md.Types.Strings(), ", "), dimension(md), string(md.Writable), len(cat.SetsUsing(name))})
		}
	}

	r.Header(1, title)
	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}
	return nil
}

func dimension(md *catalog.Metadata) string {
	if md.Dim() == 0 {
		return "variable"
	}
	return strconv.Itoa(md.Dim())
}

// PropertyJSON is the JSON form of one property.
type PropertyJSON struct {
	Name         string   `json:"name"`
	Types        []string `json:"types"`
	Dimension    int      `json:"dimension"`
	Writable     string   `json:"writable"`
	HostOptional bool     `json:"host_optional"`
	Values       []string `json:"values,omitempty"`
	Sets         []string `json:"sets"`
}

// SetJSON is the JSON form of one property set.
type SetJSON struct {
	Name        string   `json:"name"`
	WriteAccess string   `json:"write_access"`
	Members     []string `json:"members"`
}

// ActionJSON is the JSON form of one action.
type ActionJSON struct {
	Name    string   `json:"name"`
	InArgs  []string `json:"in_args"`
	OutArgs []string `json:"out_args"`
}

func listJSON(cat *catalog.Catalog, kind string) any {
	switch kind {
	case "sets":
		out := make([]SetJSON, 0, len(cat.Sets))
		for _, name := range cat.SetNames() {
			set := cat.Sets[name]
			out = append(out, SetJSON{Name: name, WriteAccess: set.WriteAccess(), Members: nonNil(set.Names())})
		}
		return out
	case "actions":
		out := make([]ActionJSON, 0, len(cat.Actions))
		for _, name := range cat.ActionNames() {
			a := cat.Actions[name]
			out = append(out, ActionJSON{Name: name, InArgs: nonNil(a.InArgs), OutArgs: nonNil(a.OutArgs)})
		}
		return out
	default:
		out := make([]PropertyJSON, 0, len(cat.Properties))
		for _, name := range cat.PropertyNames() {
			p := PropertyJSON{Name: name, Sets: nonNil(cat.SetsUsing(name))}
			if md, ok := cat.Property(name); ok {
				p.Types = md.Types.Strings()
				p.Dimension = md.Dim()
				p.Writable = string(md.Writable)
				p.HostOptional = bool(md.HostOptional)
				p.Values = md.Values
			}
			out = append(out, p)
		}
		return out
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
