package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aaronwald/adrank/internal/config"
	"github.com/aaronwald/adrank/internal/data"
	"github.com/aaronwald/adrank/internal/ranking"
	"github.com/aaronwald/adrank/internal/store"
	"github.com/aaronwald/adrank/internal/types"
	"github.com/spf13/cobra"

	_ "github.com/lib/pq"
)

var exportCmd = &cobra.Command{
	Use:   "export [input]",
	Short: "Archive a computed ranking to Postgres",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

// Flags
var (
	exportNow    string
	exportConfig string
)

func init() {
	exportCmd.Flags().StringVar(&exportNow, "now", "", "ISO 8601 timestamp used as the current time for still-active ads (default: wall clock)")
	exportCmd.Flags().StringVar(&exportConfig, "config", "", "YAML config with database_url and table (default: DATABASE_URL env)")
}

func runExport(cmd *cobra.Command, args []string) error {
	input := defaultInput
	if len(args) > 0 {
		input = args[0]
	}

	now, err := resolveNow(exportNow)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(exportConfig)
	if err != nil {
		return err
	}

	payload, err := data.ReadPayload(input)
	if err != nil {
		return err
	}

	entries := ranking.BuildRanking(types.ExtractAds(payload), now)
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ranking.EmptyReportMessage)
		return nil
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	st, err := store.NewStore(db, cfg.Table)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}

	saved, err := st.SaveRanking(ctx, entries, time.Now().UTC())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d of %d ranked ads to %s\n", saved, len(entries), cfg.Table)
	return nil
}

// ExportCommand returns the export command for registration
func ExportCommand() *cobra.Command {
	return exportCmd
}
