package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/schedtools/st/internal/db"
	"github.com/schedtools/st/internal/table"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunHistory(cmd.OutOrStdout(), historyLimit)
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum runs to list")
	rootCmd.AddCommand(historyCmd)
}

func RunHistory(w io.Writer, limit int) error {
	if _, err := os.Stat(historyPath); os.IsNotExist(err) {
		return fmt.Errorf("run `st init` first")
	}

	sqlDB, err := db.Open(historyPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	runs, err := db.RecentRuns(sqlDB, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "no recorded runs")
		return nil
	}

	rows := [][]string{{"when", "mode", "suite", "score", "time"}}
	for _, r := range runs {
		var score, elapsed string
		switch r.Mode {
		case "verify":
			score = fmt.Sprintf("%d/%d", r.Passed, r.Total)
		case "profile":
			elapsed = fmt.Sprintf("%g ms", r.DurationMillis)
		}
		rows = append(rows, []string{r.CreatedAt, r.Mode, r.TestPath, score, elapsed})
	}

	aligns := []table.Align{table.Left, table.Left, table.Left, table.Right, table.Right}
	for _, line := range table.Render(rows, aligns, 0) {
		fmt.Fprintln(w, line)
	}
	return nil
}
