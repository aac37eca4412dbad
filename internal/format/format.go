// Package format renders tables for terminal and Markdown output.
package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode selects the table rendering.
type Mode int

const (
	ASCII    Mode = iota // box-drawing terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// Align is a column alignment.
type Align int

const (
	AlignDefault Align = iota
	AlignLeft
	AlignRight
)

// Table accumulates rows and renders them in the Mode it was created with.
type Table struct {
	w    table.Writer
	mode Mode
}

// NewTable returns an empty table for mode m.
func NewTable(m Mode) *Table {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return &Table{w: w, mode: m}
}

// Title sets a caption rendered above ASCII tables. Markdown ignores it.
func (t *Table) Title(s string) {
	if t.mode == ASCII {
		t.w.SetTitle(s)
	}
}

// Header sets the column headers.
func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.w.AppendHeader(row)
}

// Row appends a data row.
func (t *Table) Row(vals ...any) {
	t.w.AppendRow(table.Row(vals))
}

// AlignColumns sets the alignment of the given 1-based columns.
func (t *Table) AlignColumns(a Align, cols ...int) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, n := range cols {
		cfgs[i] = table.ColumnConfig{Number: n, Align: toTextAlign(a)}
	}
	t.w.SetColumnConfigs(cfgs)
}

// String renders the table.
func (t *Table) String() string {
	if t.mode == Markdown {
		return t.w.RenderMarkdown()
	}
	return t.w.Render()
}

func toTextAlign(a Align) text.Align {
	switch a {
	case AlignLeft:
		return text.AlignLeft
	case AlignRight:
		return text.AlignRight
	default:
		return text.AlignDefault
	}
}
