package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mgpai22/srtkit/internal/srt"
	"github.com/mgpai22/srtkit/internal/subtitle"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [subtitle_file]",
	Short: "List cues with display times and durations",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().
		Int("width", 40, "Truncate cue text to this many characters")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	width, _ := cmd.Flags().GetInt("width")

	file, err := subtitle.Open(path, parseOptions(cmd))
	if err != nil {
		return fmt.Errorf("%s", formatDiagnostic(path, err, false))
	}

	nodes := file.Nodes()
	out := cmd.OutOrStdout()
	styled := isTerminal(out)

	fmt.Fprintln(out, nodeTable(nodes, width, styled))
	fmt.Fprint(out, formatSummary(subtitle.Summarize(nodes), file.Charset))
	return nil
}

func nodeTable(nodes []srt.Node, width int, styled bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "START", "END", "DURATION", "TEXT")
	if styled {
		t = t.StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return pathStyle
			}
			return lipgloss.NewStyle()
		})
	}

	for _, node := range nodes {
		t.Row(
			strconv.Itoa(node.Index),
			node.Interval.Start.Display(),
			node.Interval.End.Display(),
			strconv.FormatFloat(node.Interval.Seconds(), 'f', 3, 64)+"s",
			cueSnippet(node.Text, width),
		)
	}
	return t.Render()
}

// cueSnippet flattens multi-line text onto one line and truncates it
func cueSnippet(text string, width int) string {
	flat := strings.ReplaceAll(text, "\n", " / ")
	runes := []rune(flat)
	if width > 0 && len(runes) > width {
		return string(runes[:width]) + "…"
	}
	return flat
}

func formatSummary(s subtitle.Summary, charset string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "nodes:     %d\n", s.Nodes)
	fmt.Fprintf(&sb, "charset:   %s\n", charset)
	if s.Nodes > 0 {
		fmt.Fprintf(&sb, "span:      %s - %s\n", s.Start.Display(), s.End.Display())
		fmt.Fprintf(&sb, "cue time:  %s (%.3fs)\n",
			srt.TimeFromDuration(s.CueTime).Display(),
			s.CueSeconds,
		)
	}
	if s.Inverted > 0 {
		fmt.Fprintf(&sb, "inverted:  %d\n", s.Inverted)
	}
	if s.Language != "" {
		fmt.Fprintf(&sb, "language:  %s (%.2f)\n", s.Language, s.LanguageConfidence)
	}
	return sb.String()
}
