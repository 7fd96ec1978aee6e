package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"treetool/internal/codec"
	"treetool/internal/publish"
)

func newShowCmd() *cobra.Command {
	var (
		style       string
		width       int
		visibleOnly bool
		title       string
	)

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print an outline rendered for the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _, err := codec.DecodeFile(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if style == "" {
				style = publish.StyleNoTTY
				if cmd.OutOrStdout() == os.Stdout && isTerminal(os.Stdout) {
					style = publish.StyleDark
				}
			}
			out, err := publish.RenderTerminal(root, publish.Options{
				Title:       title,
				VisibleOnly: visibleOnly,
			}, style, width)
			if err != nil {
				return writeErr(cmd, err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "Glamour style (dark|light|notty; default: dark on a terminal)")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width")
	cmd.Flags().BoolVar(&visibleOnly, "visible-only", false, "Skip the children of collapsed entries")
	cmd.Flags().StringVar(&title, "title", "", "Heading above the list")
	return cmd
}
