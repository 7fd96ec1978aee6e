package cli

import (
	"errors"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"treetool/internal/store"
)

type recentReport []store.RecentFile

func (r recentReport) Header() []any {
	return []any{"PATH", "OPENED", "ENTRIES"}
}

func (r recentReport) Rows() [][]any {
	rows := make([][]any, 0, len(r))
	for _, f := range r {
		rows = append(rows, []any{f.Path, humanize.Time(f.OpenedAt), f.Entries})
	}
	return rows
}

func newRecentCmd(app *App) *cobra.Command {
	var (
		limit  int
		forget string
		prune  int
	)

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List files recently opened in the editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if strings.TrimSpace(cfg.RecentDB) == "" {
				return writeErr(cmd, errors.New("recent files are disabled (recent_db is empty)"))
			}
			ctx := contextOrBackground(cmd.Context())
			r, err := store.OpenRecent(ctx, cfg.RecentDB)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer r.Close()

			if forget = strings.TrimSpace(forget); forget != "" {
				if err := r.Forget(ctx, forget); err != nil {
					return writeErr(cmd, err)
				}
			}
			if prune > 0 {
				if err := r.Prune(ctx, prune); err != nil {
					return writeErr(cmd, err)
				}
			}
			if !cmd.Flags().Changed("limit") {
				limit = cfg.RecentLimit
			}
			files, err := r.List(ctx, limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			if files == nil {
				files = []store.RecentFile{}
			}
			return writeOut(cmd, app, recentReport(files))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows (default: recent_limit from config)")
	cmd.Flags().StringVar(&forget, "forget", "", "Remove a file from the index")
	cmd.Flags().IntVar(&prune, "prune", 0, "Keep only the N most recent files")
	return cmd
}
