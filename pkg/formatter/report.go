package formatter

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/generator"
)

// ToMarkdown renders a generation run as a markdown report: a summary table
// of every component followed by one section per component with its
// metadata, analysis findings, and the generated sources. The output is
// ready to drop into a project wiki or hand to a reviewer.
func ToMarkdown(artifacts []*generator.Artifact, fileName string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Generated Components - %s\n\n", fileName))
	sb.WriteString("This document lists the components generated from the Figma file.\n\n")

	if len(artifacts) == 0 {
		sb.WriteString("No components were generated.\n")
		return sb.String()
	}

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Component | Type | Complexity | Accuracy | Accessibility | Responsive |\n")
	sb.WriteString("|-----------|------|------------|----------|---------------|------------|\n")
	for _, art := range artifacts {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %d%% | %s | %s |\n",
			art.Name,
			art.Metadata.ComponentType,
			art.Metadata.ComplexityTier,
			art.Metadata.EstimatedAccuracy,
			accessibilityCell(art),
			responsiveCell(art),
		))
	}
	sb.WriteString("\n")

	for _, art := range artifacts {
		writeComponentSection(&sb, art)
	}

	return sb.String()
}

func writeComponentSection(sb *strings.Builder, art *generator.Artifact) {
	sb.WriteString(fmt.Sprintf("## %s\n\n", art.Name))
	sb.WriteString(fmt.Sprintf("- **Source node**: `%s`\n", art.Metadata.SourceNodeID))
	sb.WriteString(fmt.Sprintf("- **Component type**: %s\n", art.Metadata.ComponentType))
	sb.WriteString(fmt.Sprintf("- **Complexity**: %s\n", art.Metadata.ComplexityTier))
	sb.WriteString(fmt.Sprintf("- **Estimated accuracy**: %d%%\n", art.Metadata.EstimatedAccuracy))
	if len(art.Metadata.Dependencies) > 0 {
		sb.WriteString(fmt.Sprintf("- **Dependencies**: %s\n", strings.Join(art.Metadata.Dependencies, ", ")))
	}
	sb.WriteString("\n")

	if art.Accessibility.ComplianceTier != "" {
		sb.WriteString("### Accessibility\n\n")
		sb.WriteString(fmt.Sprintf("- **Score**: %d (%s)\n", art.Accessibility.Score, art.Accessibility.ComplianceTier))
		for _, issue := range art.Accessibility.Issues {
			sb.WriteString(fmt.Sprintf("- [%s] %s (fix: %s)\n", issue.Severity, issue.Message, issue.SuggestedFix))
		}
		for _, suggestion := range art.Accessibility.Suggestions {
			sb.WriteString(fmt.Sprintf("- Suggestion: %s\n", suggestion))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("### Markup\n\n")
	sb.WriteString(fmt.Sprintf("```%s\n", markupFence(art)))
	sb.WriteString(ensureNewline(art.Markup))
	sb.WriteString("```\n\n")

	if art.Style != "" {
		sb.WriteString("### Styles\n\n")
		sb.WriteString(fmt.Sprintf("```%s\n", styleFence(art)))
		sb.WriteString(ensureNewline(art.Style))
		sb.WriteString("```\n\n")
	}

	if art.TypeDescription != "" {
		sb.WriteString("### Types\n\n")
		sb.WriteString("```ts\n")
		sb.WriteString(ensureNewline(art.TypeDescription))
		sb.WriteString("```\n\n")
	}
}

func accessibilityCell(art *generator.Artifact) string {
	if art.Accessibility.ComplianceTier == "" {
		return "-"
	}
	return fmt.Sprintf("%s (%d)", art.Accessibility.ComplianceTier, art.Accessibility.Score)
}

func responsiveCell(art *generator.Artifact) string {
	if art.Responsive.Mobile == "" && !art.Responsive.HasResponsiveDesign {
		return "-"
	}
	if art.Responsive.HasResponsiveDesign {
		return "yes"
	}
	return "no"
}

// markupFence picks the code fence language from the artifact's framework
// core dependency, which is always first in the dependency list.
func markupFence(art *generator.Artifact) string {
	deps := art.Metadata.Dependencies
	if len(deps) == 0 {
		return "html"
	}
	switch deps[0] {
	case "react":
		if hasDep(deps, "typescript") {
			return "tsx"
		}
		return "jsx"
	case "vue":
		return "vue"
	default:
		return "html"
	}
}

func styleFence(art *generator.Artifact) string {
	if hasDep(art.Metadata.Dependencies, "styled-components") {
		return "ts"
	}
	return "css"
}

func hasDep(deps []string, want string) bool {
	for _, dep := range deps {
		if dep == want {
			return true
		}
	}
	return false
}

func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
