package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"treetool/internal/format"
	"treetool/internal/session"
	"treetool/internal/store"
	"treetool/internal/tui"
)

// Set with -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type App struct {
	ConfigPath string
	HelpBar    bool
	PrettyJSON bool
	Format     string
}

// interactive reports whether stdin and stdout are both terminals.
var interactive = func() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// runProgram starts the TUI; tests replace it.
var runProgram = tui.Run

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "treetool [file]",
		Short:         "Terminal outline editor for indented text files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		Example: strings.TrimSpace(`
  # Edit an outline (created if missing)
  treetool notes.txt

  # Validate files without opening the editor
  treetool check notes.txt todo.txt

  # Render for sharing
  treetool export notes.txt --format markdown
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app, args)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Config file (default: ~/.treetool.yaml)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVarP(&app.Format, "output", "o", envOr("TREETOOL_OUTPUT", "table"), "Report format (table|json)")
	cmd.Flags().BoolVar(&app.HelpBar, "help-bar", false, "Start with the key help bar visible")

	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newRecentCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runTUI(cmd *cobra.Command, app *App, args []string) error {
	cfg, err := loadConfig(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	if cmd.Flags().Changed("help-bar") {
		cfg.ShowHelp = app.HelpBar
	}
	if !interactive() {
		return writeErr(cmd, errors.New("treetool needs an interactive terminal (try `treetool show` or `treetool export`)"))
	}

	s := session.New(nil)
	s.PreserveDelimiter = cfg.PreserveDelimiter

	var status string
	if len(args) == 1 {
		path, err := store.ExpandPath(args[0])
		if err != nil {
			return writeErr(cmd, err)
		}
		status = openStartupFile(s, path)
	}

	recent := openRecentBestEffort(cmd.Context(), cfg)
	if recent != nil {
		defer recent.Close()
		if s.Path != "" {
			ctx, cancel := context.WithTimeout(contextOrBackground(cmd.Context()), 2*time.Second)
			_ = recent.Touch(ctx, s.Path, s.Root.Count())
			cancel()
		}
	}

	return runProgram(tui.Options{
		Session: s,
		Config:  cfg,
		Recent:  recent,
		Version: version,
		Status:  status,
	})
}

// openStartupFile loads path into s, creating an empty file first when none
// exists. It returns the status message to greet the user with.
func openStartupFile(s *session.Session, path string) string {
	created, err := session.EnsureFile(path)
	if err != nil {
		return "Failed to create file."
	}
	if err := s.Open(path); err != nil {
		return err.Error()
	}
	if created {
		return fmt.Sprintf("Created '%s'", path)
	}
	return ""
}

func loadConfig(app *App) (*store.Config, error) {
	return store.LoadConfig(app.ConfigPath)
}

func openRecentBestEffort(ctx context.Context, cfg *store.Config) *store.Recent {
	if cfg == nil || strings.TrimSpace(cfg.RecentDB) == "" {
		return nil
	}
	r, err := store.OpenRecent(contextOrBackground(ctx), cfg.RecentDB)
	if err != nil {
		return nil
	}
	return r
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
