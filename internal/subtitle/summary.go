package subtitle

import (
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/mgpai22/srtkit/internal/srt"
)

// aggregate view of a parsed document
type Summary struct {
	Nodes int
	// first start and last end, in declaration order
	Start srt.Time
	End   srt.Time
	// sum of all interval durations
	CueSeconds float64
	// same sum at millisecond precision
	CueTime time.Duration
	// intervals whose end precedes their start
	Inverted int

	Language           string
	LanguageConfidence float64
}

func Summarize(nodes []srt.Node) Summary {
	s := Summary{Nodes: len(nodes)}
	if len(nodes) == 0 {
		return s
	}

	s.Start = nodes[0].Interval.Start
	s.End = nodes[len(nodes)-1].Interval.End

	texts := make([]string, 0, len(nodes))
	for _, node := range nodes {
		seconds := node.Interval.Seconds()
		if seconds < 0 {
			s.Inverted++
		}
		s.CueSeconds += seconds
		s.CueTime += node.Interval.End.Duration() - node.Interval.Start.Duration()
		texts = append(texts, node.Text)
	}

	info := whatlanggo.Detect(strings.Join(texts, "\n"))
	if info.Confidence > 0 {
		s.Language = info.Lang.String()
		s.LanguageConfidence = info.Confidence
	}
	return s
}
