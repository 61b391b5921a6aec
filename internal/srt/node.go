package srt

import "strconv"

// ordered start/end pair; start <= end is not enforced
type Interval struct {
	Start Time
	End   Time
}

// Seconds is end minus start and goes negative for inverted intervals.
func (i Interval) Seconds() float64 {
	return i.End.TotalSeconds() - i.Start.TotalSeconds()
}

func (i Interval) Canonical() string {
	return i.Start.Canonical() + " " + intervalSeparator + " " + i.End.Canonical()
}

// one cue as declared in the source text
type Node struct {
	Index    int
	Interval Interval
	Text     string
}

// Canonical renders the node as it appears on disk, without a trailing
// newline. Joining several nodes into a document is left to the caller.
func (n Node) Canonical() string {
	return strconv.Itoa(n.Index) + "\n" + n.Interval.Canonical() + "\n" + n.Text
}
