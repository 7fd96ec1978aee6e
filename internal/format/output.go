package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// Table is implemented by results that can be printed as rows.
type Table interface {
	Header() []any
	Rows() [][]any
}

// Write writes output in the requested format.
//
// Supported formats:
// - table (default; v must implement Table, otherwise json is used)
// - json
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "table":
		t, ok := v.(Table)
		if !ok {
			return WriteJSON(w, v, pretty)
		}
		return WriteTable(w, t)
	case "json":
		return WriteJSON(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteTable prints t with a bold header row.
func WriteTable(w io.Writer, t Table) error {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	if h := t.Header(); len(h) > 0 {
		cells := make([]any, len(h))
		for i, c := range h {
			cells[i] = bold.Sprint(c)
		}
		tbl.AddRow(cells...)
	}
	for _, r := range t.Rows() {
		tbl.AddRow(r...)
	}
	_, err := fmt.Fprintln(w, tbl)
	return err
}
