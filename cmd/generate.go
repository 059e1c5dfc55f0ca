package cmd

import (
	"io"

	"github.com/schedtools/st/internal/runner"
	"github.com/schedtools/st/internal/ui"
	"github.com/spf13/cobra"
)

var (
	generateSections []string
	generateProg     string
)

var generateCmd = &cobra.Command{
	Use:   "generate [testfile] [-- prog-args...]",
	Short: "Regenerate an expectations transcript from the scheduler's output",
	RunE: func(cmd *cobra.Command, args []string) error {
		docPath, extra := splitDocArgs(cmd, args)
		adapter := schedulerAdapter(generateProg, extra)
		return RunGenerate(cmd.OutOrStdout(), docPath, adapter, generateSections)
	},
}

func init() {
	generateCmd.Flags().StringArrayVarP(&generateSections, "section", "s", nil, "run only the named sections")
	generateCmd.Flags().StringVar(&generateProg, "prog", defaultProg, "path to the scheduler binary")
	rootCmd.AddCommand(generateCmd)
}

func RunGenerate(w io.Writer, testPath string, adapter runner.Adapter, sections []string) error {
	tree, err := loadTree(testPath)
	if err != nil {
		return err
	}

	g := runner.NewGenerate(adapter)
	ui.Transcript(w, runner.Walk(tree, g, sections, false))
	g.Report().Print(w)
	return nil
}
