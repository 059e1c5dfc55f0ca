package cmd

import (
	"io"

	"github.com/schedtools/st/internal/db"
	"github.com/schedtools/st/internal/runner"
	"github.com/schedtools/st/internal/ui"
	"github.com/spf13/cobra"
)

var (
	verifySections []string
	verifyVerbose  bool
	verifyProg     string
)

var verifyCmd = &cobra.Command{
	Use:   "verify [testfile] [-- prog-args...]",
	Short: "Check scheduler output against the document's expectations",
	RunE: func(cmd *cobra.Command, args []string) error {
		docPath, extra := splitDocArgs(cmd, args)
		adapter := schedulerAdapter(verifyProg, extra)
		return RunVerify(cmd.OutOrStdout(), docPath, adapter, verifySections, verifyVerbose)
	},
}

func init() {
	verifyCmd.Flags().StringArrayVarP(&verifySections, "section", "s", nil, "run only the named sections")
	verifyCmd.Flags().BoolVarP(&verifyVerbose, "verbose", "v", false, "show passing cases too")
	verifyCmd.Flags().StringVar(&verifyProg, "prog", defaultProg, "path to the scheduler binary")
	rootCmd.AddCommand(verifyCmd)
}

func RunVerify(w io.Writer, testPath string, adapter runner.Adapter, sections []string, verbose bool) error {
	tree, err := loadTree(testPath)
	if err != nil {
		return err
	}

	v := runner.NewVerify(testPath, adapter, verbose)
	ui.Transcript(w, runner.Walk(tree, v, sections, verbose))
	v.Report().Print(w)

	recordRun(db.Run{
		Mode:     "verify",
		TestPath: testPath,
		Passed:   v.Score().Passed(),
		Total:    v.Score().Total(),
	})
	return nil
}
