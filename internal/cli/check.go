package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"treetool/internal/codec"
	"treetool/internal/except"
)

type checkResult struct {
	Path      string `json:"path"`
	OK        bool   `json:"ok"`
	Entries   int    `json:"entries"`
	Delimiter string `json:"delimiter"`
	Kind      string `json:"kind,omitempty"`
	Error     string `json:"error,omitempty"`
}

type checkReport []checkResult

func (r checkReport) Header() []any {
	return []any{"PATH", "STATUS", "ENTRIES", "DELIMITER", "ERROR"}
}

func (r checkReport) Rows() [][]any {
	ok := color.New(color.FgGreen).Sprint("OK")
	fail := color.New(color.FgRed, color.Bold).Sprint("FAIL")
	rows := make([][]any, 0, len(r))
	for _, c := range r {
		status := ok
		if !c.OK {
			status = fail
		}
		rows = append(rows, []any{c.Path, status, c.Entries, c.Delimiter, c.Error})
	}
	return rows
}

func (r checkReport) failed() int {
	n := 0
	for _, c := range r {
		if !c.OK {
			n++
		}
	}
	return n
}

func checkFile(path string) checkResult {
	root, delim, err := codec.DecodeFile(path)
	res := checkResult{Path: path, OK: err == nil, Delimiter: delim.String()}
	if err != nil {
		res.Error = err.Error()
		var xe *except.Error
		if errors.As(err, &xe) {
			res.Kind = xe.Kind.String()
		}
		return res
	}
	res.Entries = root.Count()
	return res
}

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate outline files without opening the editor",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report := make(checkReport, 0, len(args))
			for _, p := range args {
				report = append(report, checkFile(p))
			}
			if err := writeOut(cmd, app, report); err != nil {
				return writeErr(cmd, err)
			}
			if n := report.failed(); n > 0 {
				return writeErr(cmd, fmt.Errorf("%d of %d file(s) failed", n, len(report)))
			}
			return nil
		},
	}
}
