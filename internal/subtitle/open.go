package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/srtkit/internal/srt"
)

func Open(path string, opts srt.Options) (*File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".srt" {
		return nil, fmt.Errorf("unsupported subtitle format: %s", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}

	file, err := Load(data, opts)
	if err != nil {
		return nil, err
	}
	file.Path = path
	return file, nil
}

// Load decodes raw bytes to UTF-8, normalises CRLF and lone CR line
// endings to LF and
// parses the result. Parse failures are returned as *srt.ParseError.
func Load(data []byte, opts srt.Options) (*File, error) {
	decoded, charset, err := toUTF8(data)
	if err != nil {
		return nil, err
	}

	text := normalizeLineEndings(string(decoded))

	nodes, err := srt.ParseWithOptions(text, opts)
	if err != nil {
		return nil, err
	}

	return &File{
		Charset: charset,
		nodes:   nodes,
	}, nil
}
