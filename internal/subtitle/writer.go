package subtitle

import (
	"os"
	"path/filepath"
	"strings"
)

// Render joins the canonical form of every node with a blank line and
// ends the document with a single newline.
func (f *File) Render() string {
	if len(f.nodes) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, node := range f.nodes {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(node.Canonical())
	}
	sb.WriteString("\n")
	return sb.String()
}

// writes the rendered document, creating parent directories
func (f *File) Write(path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(f.Render()), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
