package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"treetool/internal/codec"
	"treetool/internal/publish"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		formatName  string
		out         string
		title       string
		overwrite   bool
		visibleOnly bool
		standalone  bool
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Render an outline as markdown, html or re-indented text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := publish.ParseFormat(formatName)
			if err != nil {
				return writeErr(cmd, err)
			}
			root, _, err := codec.DecodeFile(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			b, err := publish.Render(root, f, publish.Options{
				Title:       strings.TrimSpace(title),
				VisibleOnly: visibleOnly,
				Standalone:  standalone,
			})
			if err != nil {
				return writeErr(cmd, err)
			}

			out = strings.TrimSpace(out)
			if out == "" || out == "-" {
				_, err := cmd.OutOrStdout().Write(b)
				return err
			}
			if out == args[0] {
				return writeErr(cmd, errors.New("refusing to export over the source file"))
			}
			if err := publish.WriteFile(out, b, overwrite); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"path":   out,
				"format": string(f),
				"bytes":  len(b),
			})
		},
	}

	cmd.Flags().StringVar(&formatName, "format", string(publish.FormatMarkdown), "Export format (markdown|html|tabs|spaces)")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&title, "title", "", "Heading above the list (markdown, html)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing output file")
	cmd.Flags().BoolVar(&visibleOnly, "visible-only", false, "Skip the children of collapsed entries")
	cmd.Flags().BoolVar(&standalone, "standalone", false, "Wrap html output in a full document")
	return cmd
}
