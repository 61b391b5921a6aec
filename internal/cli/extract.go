package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgpai22/srtkit/internal/ffmpeg"
	"github.com/mgpai22/srtkit/internal/subtitle"
	"github.com/mgpai22/srtkit/internal/video"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [video_file]",
	Short: "Extract an embedded subtitle stream from a video file",
	Long: `Extract a subtitle stream from a video container with ffmpeg,
validate it and save it as a canonical SubRip file.

Examples:
  srtkit extract movie.mkv
  srtkit extract movie.mkv --stream 1 -o movie.en.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		IntP("stream", "s", 0, "Subtitle stream index within the container (0 = first)")
}

// swapped out by tests
var newProcessor = func(ffmpegPath string) video.Processor {
	return video.NewProcessor(ffmpegPath)
}

func defaultExtractOutput(videoPath string, stream int) string {
	base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	if stream > 0 {
		return fmt.Sprintf("%s.%d.srt", base, stream)
	}
	return base + ".srt"
}

func runExtract(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	stream, _ := cmd.Flags().GetInt("stream")
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = defaultExtractOutput(videoPath, stream)
	}

	ffmpegPath, err := ffmpeg.Path(cfg.FFmpegPath)
	if err != nil {
		return err
	}

	logger.Infow("Extracting subtitles",
		"video", videoPath,
		"output", outputPath,
		"stream", stream,
		"ffmpeg", ffmpegPath,
	)

	processor := newProcessor(ffmpegPath)
	text, err := processor.ExtractSubtitles(
		cmd.Context(),
		videoPath,
		video.ExtractOptions{Stream: stream},
	)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	file, err := subtitle.Load([]byte(text), parseOptions(cmd))
	if err != nil {
		return fmt.Errorf(
			"extracted stream is not valid SubRip: %s",
			formatDiagnostic(videoPath, err, false),
		)
	}

	if err := file.Write(outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles extracted successfully: %s (%d nodes)\n", absOutput, file.Len())
	return nil
}
