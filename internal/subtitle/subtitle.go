package subtitle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mgpai22/srtkit/internal/srt"
)

var ErrEmptyText = errors.New("cue text is empty")

// parsed SubRip file
type File struct {
	Path string
	// charset the raw bytes were decoded from
	Charset string

	nodes []srt.Node
}

func NewFile(nodes []srt.Node) *File {
	return &File{
		Charset: "UTF-8",
		nodes:   append([]srt.Node(nil), nodes...),
	}
}

// Nodes returns a copy of the parsed nodes in declaration order.
func (f *File) Nodes() []srt.Node {
	return append([]srt.Node(nil), f.nodes...)
}

func (f *File) Len() int {
	return len(f.nodes)
}

// normalizeLineEndings turns CRLF and lone CR into LF
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// NormalizeText makes text safe to place inside a block: line endings
// become LF and empty rows are dropped, since an empty row would end the
// block early. Rows holding only spaces are kept.
func NormalizeText(text string) string {
	rows := strings.Split(normalizeLineEndings(text), "\n")
	kept := rows[:0]
	for _, row := range rows {
		if row != "" {
			kept = append(kept, row)
		}
	}
	return strings.Join(kept, "\n")
}

// replaces the text of the node at position index, keeping index and
// interval. text goes through NormalizeText; ErrEmptyText is returned when
// nothing is left.
func (f *File) SetText(index int, text string) error {
	if index < 0 || index >= len(f.nodes) {
		return fmt.Errorf(
			"index %d out of range (0-%d)",
			index,
			len(f.nodes)-1,
		)
	}
	text = NormalizeText(text)
	if text == "" {
		return fmt.Errorf("entry %d: %w", index, ErrEmptyText)
	}
	old := f.nodes[index]
	f.nodes[index] = srt.Node{
		Index:    old.Index,
		Interval: old.Interval,
		Text:     text,
	}
	return nil
}
