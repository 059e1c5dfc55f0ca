package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/schedtools/st/internal/db"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Enable run-history recording in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInit(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func RunInit(w io.Writer) error {
	_, err := os.Stat(stateDir)
	dirExists := err == nil
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return fmt.Errorf("creating %s directory: %w", stateDir, err)
	}
	if dirExists {
		fmt.Fprintf(w, "%s/ already exists\n", stateDir)
	} else {
		fmt.Fprintf(w, "%s/ created\n", stateDir)
	}

	_, err = os.Stat(historyPath)
	dbExists := err == nil
	sqlDB, err := db.Open(historyPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	sqlDB.Close()
	if dbExists {
		fmt.Fprintf(w, "%s already exists\n", historyPath)
	} else {
		fmt.Fprintf(w, "%s created\n", historyPath)
	}

	return nil
}
