package video

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mgpai22/srtkit/internal/srt"
)

func hasPair(args []string, flag, value string) bool {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag && args[i+1] == value {
			return true
		}
	}
	return false
}

func TestExtractArgs(t *testing.T) {
	args := extractArgs("movie.mkv", ExtractOptions{Stream: 2})

	if !hasPair(args, "-i", "movie.mkv") {
		t.Errorf("missing input in %v", args)
	}
	if !hasPair(args, "-map", "0:s:2") {
		t.Errorf("missing stream map in %v", args)
	}
	if !hasPair(args, "-f", "srt") {
		t.Errorf("missing srt format in %v", args)
	}
	if !strings.Contains(strings.Join(args, " "), " pipe:") {
		t.Errorf("output should go to stdout, got %v", args)
	}
}

func TestExtractSubtitlesMissingFile(t *testing.T) {
	p := NewProcessor("")
	_, err := p.ExtractSubtitles(
		context.Background(),
		filepath.Join(t.TempDir(), "missing.mkv"),
		ExtractOptions{},
	)
	if err == nil {
		t.Error("expected error for missing video")
	}
}

func TestExtractSubtitlesNegativeStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "video.mkv")
	if err := os.WriteFile(path, []byte("not a video"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := NewProcessor("").ExtractSubtitles(context.Background(), path, ExtractOptions{Stream: -1})
	if err == nil {
		t.Error("expected error for negative stream")
	}
}

// Integration test: only runs if SRTKIT_TEST_VIDEO points at a video with subtitles
func TestExtractSubtitlesIntegration(t *testing.T) {
	videoPath := os.Getenv("SRTKIT_TEST_VIDEO")
	if videoPath == "" {
		t.Skip("SRTKIT_TEST_VIDEO not set; skipping integration test")
	}

	text, err := NewProcessor("").ExtractSubtitles(context.Background(), videoPath, ExtractOptions{})
	if err != nil {
		t.Fatalf("ExtractSubtitles error: %v", err)
	}
	nodes, err := srt.Parse(strings.ReplaceAll(text, "\r\n", "\n"))
	if err != nil {
		t.Fatalf("extracted text does not parse: %v", err)
	}
	if len(nodes) == 0 {
		t.Error("expected at least one subtitle node")
	}
}
