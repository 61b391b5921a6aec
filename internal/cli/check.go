package cli

import (
	"fmt"

	"github.com/mgpai22/srtkit/internal/subtitle"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [subtitle_file...]",
	Short: "Validate SubRip files",
	Long: `Parse each file and report the first malformed block as
file:row:column. Rows count blocks from zero; interval errors point one
row further.

Examples:
  srtkit check movie.srt
  srtkit check --strict season1/*.srt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts := parseOptions(cmd)
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	styledOut := isTerminal(out)
	styledErr := isTerminal(errOut)

	failed := 0
	for _, path := range args {
		file, err := subtitle.Open(path, opts)
		if err != nil {
			failed++
			logger.Debugw("Check failed", "file", path, "error", err)
			fmt.Fprintln(errOut, formatDiagnostic(path, err, styledErr))
			continue
		}
		fmt.Fprintf(out, "%s %s (%d nodes, %s)\n",
			render(okStyle, styledOut, "ok"),
			path,
			file.Len(),
			file.Charset,
		)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}
