package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mgpai22/srtkit/internal/subtitle"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [subtitle_file]",
	Short: "Rewrite a SubRip file in canonical form",
	Long: `Parse a SubRip file and write every cue back with zero-padded
timestamps, LF line endings and UTF-8 text. Without --output the result
is printed to stdout.

Examples:
  srtkit fmt movie.srt
  srtkit fmt legacy.srt -o clean.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	path := args[0]
	outputPath, _ := cmd.Flags().GetString("output")

	file, err := subtitle.Open(path, parseOptions(cmd))
	if err != nil {
		return fmt.Errorf("%s", formatDiagnostic(path, err, false))
	}

	logger.Infow("Parsed subtitle file",
		"file", path,
		"nodes", file.Len(),
		"charset", file.Charset,
	)

	if outputPath == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), file.Render())
		return err
	}

	if err := file.Write(outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Formatted subtitles written: %s\n", absOutput)
	return nil
}
