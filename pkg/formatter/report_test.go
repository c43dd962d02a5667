package formatter

import (
	"strings"
	"testing"

	"github.com/hellenic-development/figma-codegen/pkg/generator"
	"github.com/stretchr/testify/assert"
)

func sampleArtifact() *generator.Artifact {
	return &generator.Artifact{
		ID:              "1:2",
		Name:            "Card1",
		Markup:          "const Card1 = () => {};\n",
		Style:           ".Card1 {\n  width: 320px;\n}\n",
		TypeDescription: "export interface Card1Props {\n  className?: string;\n}\n",
		Accessibility: generator.AccessibilityReport{
			Score:          85,
			ComplianceTier: "AA",
			Issues: []generator.Issue{{
				Severity:     generator.SeverityError,
				Message:      `image "Photo" is missing alternative text`,
				Element:      "1:3",
				SuggestedFix: "write a descriptive alt text",
			}},
			Suggestions: []string{"verify contrast"},
		},
		Responsive: generator.ResponsiveReport{
			Mobile:              "<!-- mobile -->",
			Tablet:              "<!-- tablet -->",
			Desktop:             "<!-- desktop -->",
			HasResponsiveDesign: true,
		},
		Metadata: generator.Metadata{
			SourceNodeID:      "1:2",
			ComponentType:     generator.ComponentCard,
			ComplexityTier:    generator.ComplexitySimple,
			EstimatedAccuracy: 100,
			Dependencies:      []string{"react", "typescript"},
		},
	}
}

func TestToMarkdown(t *testing.T) {
	got := ToMarkdown([]*generator.Artifact{sampleArtifact()}, "Landing Page")

	assert.True(t, strings.HasPrefix(got, "# Generated Components - Landing Page\n"))
	assert.Contains(t, got, "| Component | Type | Complexity | Accuracy | Accessibility | Responsive |")
	assert.Contains(t, got, "| Card1 | card | simple | 100% | AA (85) | yes |")

	assert.Contains(t, got, "## Card1\n")
	assert.Contains(t, got, "- **Source node**: `1:2`")
	assert.Contains(t, got, "- **Dependencies**: react, typescript")
	assert.Contains(t, got, "- [error] image \"Photo\" is missing alternative text (fix: write a descriptive alt text)")
	assert.Contains(t, got, "- Suggestion: verify contrast")

	assert.Contains(t, got, "```tsx\nconst Card1 = () => {};\n```")
	assert.Contains(t, got, "```css\n.Card1 {\n  width: 320px;\n}\n```")
	assert.Contains(t, got, "```ts\nexport interface Card1Props {\n  className?: string;\n}\n```")
}

func TestToMarkdownEmpty(t *testing.T) {
	got := ToMarkdown(nil, "Landing Page")

	assert.Contains(t, got, "No components were generated.")
	assert.NotContains(t, got, "## Summary")
}

func TestToMarkdownDisabledReports(t *testing.T) {
	art := sampleArtifact()
	art.Accessibility = generator.AccessibilityReport{}
	art.Responsive = generator.ResponsiveReport{}

	got := ToMarkdown([]*generator.Artifact{art}, "Landing Page")

	assert.Contains(t, got, "| Card1 | card | simple | 100% | - | - |")
	assert.NotContains(t, got, "### Accessibility")
}

func TestMarkupFence(t *testing.T) {
	art := sampleArtifact()
	assert.Equal(t, "tsx", markupFence(art))

	art.Metadata.Dependencies = []string{"react"}
	assert.Equal(t, "jsx", markupFence(art))

	art.Metadata.Dependencies = []string{"vue"}
	assert.Equal(t, "vue", markupFence(art))

	art.Metadata.Dependencies = []string{"html"}
	assert.Equal(t, "html", markupFence(art))

	art.Metadata.Dependencies = nil
	assert.Equal(t, "html", markupFence(art))
}

func TestStyleFence(t *testing.T) {
	art := sampleArtifact()
	assert.Equal(t, "css", styleFence(art))

	art.Metadata.Dependencies = []string{"react", "styled-components"}
	assert.Equal(t, "ts", styleFence(art))
}
