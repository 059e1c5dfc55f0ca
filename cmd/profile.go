package cmd

import (
	"io"

	"github.com/schedtools/st/internal/db"
	"github.com/schedtools/st/internal/runner"
	"github.com/schedtools/st/internal/ui"
	"github.com/spf13/cobra"
)

var (
	profileSections []string
	profileProg     string
)

var profileCmd = &cobra.Command{
	Use:   "profile [testfile] [-- prog-args...]",
	Short: "Time scheduler runs across the document's generator values",
	RunE: func(cmd *cobra.Command, args []string) error {
		docPath, extra := splitDocArgs(cmd, args)
		adapter := schedulerAdapter(profileProg, extra)
		return RunProfile(cmd.OutOrStdout(), docPath, adapter, profileSections)
	},
}

func init() {
	profileCmd.Flags().StringArrayVarP(&profileSections, "section", "s", nil, "run only the named sections")
	profileCmd.Flags().StringVar(&profileProg, "prog", defaultProg, "path to the scheduler binary")
	rootCmd.AddCommand(profileCmd)
}

func RunProfile(w io.Writer, testPath string, adapter runner.Adapter, sections []string) error {
	tree, err := loadTree(testPath)
	if err != nil {
		return err
	}

	p := runner.NewProfile(testPath, adapter)
	ui.Transcript(w, runner.Walk(tree, p, sections, false))
	p.Report().Print(w)

	recordRun(db.Run{
		Mode:           "profile",
		TestPath:       testPath,
		DurationMillis: p.Stats().TotalMillis(),
	})
	return nil
}
