package advisor

import (
	"fmt"
	"strings"

	"github.com/sells-group/standards-cli/internal/model"
)

// systemPrompt frames the completion for engineering-standard selection.
const systemPrompt = `You are an expert in engineering process-compliance systems. Given a project profile and a library of standard descriptions, you recommend which additional standards apply to the project.

Rules:
- Recommend between 5 and 10 standard IDs.
- Only recommend IDs that appear in the provided standard library.
- Do not repeat IDs that are already selected.
- Respond with one recommendation per line in exactly this format:
  ID: reason
- Do not add headings, numbering, or any other text.`

// BuildPrompt deterministically serializes the profile, the already
// selected standard ids, and every semantic description into a single
// natural-language block. Descriptions are prompt material only; they never
// filter or exclude.
func BuildPrompt(profile model.Profile, existing []model.MatchResult, descriptions []model.SemanticDescription) string {
	var sb strings.Builder

	sb.WriteString("Project profile:\n")
	sb.WriteString(fmt.Sprintf("- Industries: %s\n", joinOrNone(profile.Industries)))
	sb.WriteString(fmt.Sprintf("- Project types: %s\n", joinOrNone(profile.ProjectTypes)))
	sb.WriteString(fmt.Sprintf("- Target modules: %s\n", joinOrNone(profile.Modules)))

	sb.WriteString("\nAlready selected standards:\n")
	if len(existing) == 0 {
		sb.WriteString("- none\n")
	}
	for _, m := range existing {
		sb.WriteString(fmt.Sprintf("- %s\n", m.StandardID))
	}

	sb.WriteString("\nStandard library:\n")
	for _, d := range descriptions {
		sb.WriteString(fmt.Sprintf("\n%s:\n%s\n", d.StandardID, d.Content))
		if len(d.Applicable) > 0 {
			sb.WriteString("Applicable scenarios:\n")
			for _, s := range d.Applicable {
				sb.WriteString(fmt.Sprintf("- %s\n", s))
			}
		}
		if len(d.NotRecommended) > 0 {
			sb.WriteString("Not recommended for:\n")
			for _, s := range d.NotRecommended {
				sb.WriteString(fmt.Sprintf("- %s\n", s))
			}
		}
	}

	sb.WriteString("\nRecommend 5-10 additional standard IDs with reasons, one per line, as `ID: reason`.\n")

	return sb.String()
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
