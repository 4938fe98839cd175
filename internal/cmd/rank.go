package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/aaronwald/adrank/internal/data"
	"github.com/aaronwald/adrank/internal/ranking"
	"github.com/aaronwald/adrank/internal/types"
	"github.com/spf13/cobra"
)

func runRank(cmd *cobra.Command, args []string) error {
	input := defaultInput
	if len(args) > 0 {
		input = args[0]
	}

	now, err := resolveNow(rankNow)
	if err != nil {
		return err
	}

	payload, err := data.ReadPayload(input)
	if err != nil {
		return err
	}

	entries := ranking.BuildRanking(types.ExtractAds(payload), now)
	report := ranking.RenderReport(entries)
	fmt.Fprintln(cmd.OutOrStdout(), report)

	outPath := rankOutput
	if outPath == "" {
		outPath = defaultOutputPath(input)
	}
	if err := os.WriteFile(outPath, []byte(report+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// resolveNow parses the --now override, or falls back to wall-clock UTC. An
// unparseable override is fatal before any output is produced.
func resolveNow(override string) (time.Time, error) {
	if override == "" {
		return time.Now().UTC(), nil
	}
	now, ok := ranking.ParseISO(override)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid --now value: %s", override)
	}
	return now, nil
}
