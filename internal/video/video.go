package video

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// defines interface for video processing operations
type Processor interface {
	// returns one embedded subtitle stream converted to SubRip text
	ExtractSubtitles(
		ctx context.Context,
		videoPath string,
		opts ExtractOptions,
	) (string, error)
}

type ExtractOptions struct {
	// zero-based index among the container's subtitle streams
	Stream int
}

// default implementation using ffmpeg
type DefaultProcessor struct {
	ffmpegPath string
}

func NewProcessor(ffmpegPath string) *DefaultProcessor {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &DefaultProcessor{
		ffmpegPath: ffmpegPath,
	}
}

// builds the ffmpeg arguments that write subtitle stream N as SRT to stdout
func extractArgs(videoPath string, opts ExtractOptions) []string {
	kwargs := ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:s:%d", opts.Stream),
		"f":   "srt",
	}
	return ffmpeg.Input(videoPath).
		Output("pipe:", kwargs).
		GlobalArgs("-nostdin", "-loglevel", "error").
		GetArgs()
}

func (p *DefaultProcessor) ExtractSubtitles(
	ctx context.Context,
	videoPath string,
	opts ExtractOptions,
) (string, error) {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return "", fmt.Errorf("video file not found: %s", videoPath)
	}
	if opts.Stream < 0 {
		return "", fmt.Errorf("subtitle stream must be non-negative, got %d", opts.Stream)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.ffmpegPath, extractArgs(videoPath, opts)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("ffmpeg subtitle extraction failed: %w: %s", err, msg)
		}
		return "", fmt.Errorf("ffmpeg subtitle extraction failed: %w", err)
	}

	return stdout.String(), nil
}
