package srt

import (
	"strconv"
	"strings"
)

const (
	blockSeparator    = "\n\n"
	rowSeparator      = "\n"
	intervalSeparator = "-->"

	// index row, interval row, at least one text row
	minBlockRows = 3
)

// parser behaviour switches
type Options struct {
	// Strict rejects interval rows carrying tokens after the end timestamp.
	// By default they are ignored.
	Strict bool
}

// Parse decodes a whole SubRip document. Blank input yields an empty,
// non-nil slice. Parsing stops at the first invalid block and returns only
// the error.
func Parse(text string) ([]Node, error) {
	return ParseWithOptions(text, Options{})
}

func ParseWithOptions(text string, opts Options) ([]Node, error) {
	if strings.TrimSpace(text) == "" {
		return []Node{}, nil
	}

	text = strings.Trim(text, "\r\n")

	blocks := strings.Split(text, blockSeparator)
	nodes := make([]Node, 0, len(blocks))
	for position, block := range blocks {
		node, err := parseBlock(block, position, opts)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func parseBlock(block string, position int, opts Options) (Node, error) {
	rows := strings.Split(block, rowSeparator)
	if len(rows) < minBlockRows {
		return Node{}, newParseError(IncompleteNode, 0, position)
	}

	index, err := strconv.Atoi(rows[0])
	if err != nil {
		return Node{}, newParseError(InvalidIndex, 0, position)
	}

	interval, err := parseInterval(rows[1], position+1, opts)
	if err != nil {
		return Node{}, err
	}

	return Node{
		Index:    index,
		Interval: interval,
		Text:     strings.Join(rows[2:], rowSeparator),
	}, nil
}

func parseInterval(row string, rowNumber int, opts Options) (Interval, error) {
	tokens := strings.Split(row, " ")

	if !matchTimestamp(tokens[0]) {
		return Interval{}, newParseError(MalformedInterval, 0, rowNumber)
	}

	separatorColumn := len(tokens[0]) + 1
	if len(tokens) < 2 || tokens[1] != intervalSeparator {
		return Interval{}, newParseError(
			MalformedInterval,
			separatorColumn,
			rowNumber,
		)
	}

	if len(tokens) < 3 || !matchTimestamp(tokens[2]) {
		return Interval{}, newParseError(MalformedInterval, 0, rowNumber)
	}

	if opts.Strict && len(tokens) > 3 {
		extraColumn := separatorColumn + len(tokens[1]) + 1 + len(tokens[2]) + 1
		return Interval{}, newParseError(
			MalformedInterval,
			extraColumn,
			rowNumber,
		)
	}

	return Interval{
		Start: mustDecodeTime(tokens[0]),
		End:   mustDecodeTime(tokens[2]),
	}, nil
}
