package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/standards-cli/internal/model"
	"github.com/sells-group/standards-cli/internal/pipeline"
)

// WriteMarkdown renders the full assembly result as a Markdown report:
// summary, merged match table, and per-module content with attribution.
func WriteMarkdown(w io.Writer, result *pipeline.Result) error {
	var sb strings.Builder

	sb.WriteString("# Standards Assembly\n\n")
	sb.WriteString(fmt.Sprintf("Total: %d (rule %d, ai %d, manual %d; unresolved %d)\n\n",
		result.Summary.Total,
		result.Summary.BySource[model.SourceRule],
		result.Summary.BySource[model.SourceAI],
		result.Summary.BySource[model.SourceManual],
		result.Summary.Unresolved,
	))

	sb.WriteString("| ID | Name | Priority | Source | Reason |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, m := range result.Matches {
		name, priority := "", ""
		if m.Item != nil {
			name, priority = m.Item.Name, m.Item.Priority
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			m.StandardID, escapeCell(name), priority, m.Source, escapeCell(m.Reason)))
	}

	for _, mod := range result.Modules {
		sb.WriteString(fmt.Sprintf("\n## Module: %s\n\n", mod.Module))
		sb.WriteString(fmt.Sprintf("Sources: %s\n\n", mod.Attribution))
		writeTableMarkdown(&sb, mod)
	}

	_, err := io.WriteString(w, sb.String())
	return eris.Wrap(err, "export: write markdown")
}

func writeTableMarkdown(sb *strings.Builder, content pipeline.ModuleContent) {
	t := content.Table
	if len(t.Keys) == 0 {
		return
	}

	for i, key := range t.Keys {
		if i > 0 {
			sb.WriteString(" | ")
		} else {
			sb.WriteString("| ")
		}
		sb.WriteString(escapeCell(t.HeaderFor(key)))
	}
	sb.WriteString(" |\n|")
	sb.WriteString(strings.Repeat("---|", len(t.Keys)))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		sb.WriteString("| ")
		for i, key := range t.Keys {
			if i > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(escapeCell(row[key]))
		}
		sb.WriteString(" |\n")
	}
}

// escapeCell keeps pipe characters from breaking table layout.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
