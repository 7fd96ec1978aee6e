package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"treetool/internal/docs"
	"treetool/internal/publish"
)

type topicList []string

func (t topicList) Header() []any { return []any{"TOPIC"} }

func (t topicList) Rows() [][]any {
	rows := make([][]any, 0, len(t))
	for _, s := range t {
		rows = append(rows, []any{s})
	}
	return rows
}

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, topicList(docs.Topics()))
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `treetool docs` to list topics)", topic))
			}

			if raw || cmd.OutOrStdout() != os.Stdout || !isTerminal(os.Stdout) {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			out, err := publish.RenderDocument(body, publish.StyleDark, 80)
			if err != nil {
				return writeErr(cmd, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")

	return cmd
}
