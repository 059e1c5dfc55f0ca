package cmd

import (
	"fmt"
	"os"

	"github.com/schedtools/st/internal/db"
	"github.com/schedtools/st/internal/parser"
	"github.com/spf13/cobra"
)

const (
	defaultDoc  = "unit_tests.md"
	defaultProg = "./rr"
	stateDir    = "sts"
	historyPath = "sts/history.db"
)

func loadTree(testPath string) (*parser.Tree, error) {
	content, err := os.ReadFile(testPath)
	if err != nil {
		return nil, fmt.Errorf("reading test document: %w", err)
	}
	return parser.Parse(testPath, content)
}

// splitDocArgs separates the optional document path from pass-through
// scheduler args given after `--`.
func splitDocArgs(cmd *cobra.Command, args []string) (string, []string) {
	var extra []string
	if at := cmd.ArgsLenAtDash(); at >= 0 {
		args, extra = args[:at], args[at:]
	}
	if len(args) > 0 {
		return args[0], extra
	}
	return defaultDoc, extra
}

// recordRun appends to the history database when `st init` has been
// run in this directory; otherwise recording is skipped.
func recordRun(run db.Run) {
	if _, err := os.Stat(historyPath); err != nil {
		return
	}
	sqlDB, err := db.Open(historyPath)
	if err != nil {
		return
	}
	defer sqlDB.Close()
	if err := db.RecordRun(sqlDB, run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}
