package generator

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// Severity grades an accessibility issue. Errors describe violations that
// block assistive technology; warnings describe risks worth reviewing.
// Info exists for findings that are purely informational; no current check
// emits it.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is a single accessibility finding tied to a node in the design.
type Issue struct {
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
	Element      string   `json:"element"`
	SuggestedFix string   `json:"suggestedFix"`
}

// AccessibilityReport scores a component subtree. The score starts at 100
// and each finding deducts a fixed amount, clamped at zero.
type AccessibilityReport struct {
	Score          int      `json:"score"`
	Issues         []Issue  `json:"issues"`
	Suggestions    []string `json:"suggestions"`
	ComplianceTier string   `json:"complianceTier"`
}

// ContrastFunc estimates the contrast ratio of a text node against its
// background. Implementations receive the text node itself; resolving the
// effective background is up to the implementation.
type ContrastFunc func(n *figma.Node) float64

// DefaultContrast is a stub estimator that returns the 4.5:1 WCAG AA
// threshold for every node. It never flags text, only triggers the manual
// verification suggestion. Substitute a real relative-luminance formula via
// Engine.Contrast once background resolution is available.
func DefaultContrast(n *figma.Node) float64 {
	return 4.5
}

const (
	imageIssuePenalty    = 15
	contrastIssuePenalty = 10
	minContrastRatio     = 4.5
)

// AnalyzeAccessibility walks the target subtree in document order and
// produces the accessibility report. A nil contrast estimator falls back to
// DefaultContrast.
func AnalyzeAccessibility(root *figma.Node, contrast ContrastFunc) AccessibilityReport {
	if contrast == nil {
		contrast = DefaultContrast
	}

	report := AccessibilityReport{
		Score:       100,
		Issues:      []Issue{},
		Suggestions: []string{},
	}
	inspectNode(root, contrast, &report)

	if report.Score < 0 {
		report.Score = 0
	}
	report.ComplianceTier = complianceTier(report.Score)
	return report
}

// inspectNode checks one node and recurses into its children. Per node the
// checks run in a fixed order: image fill, then text contrast, then
// interactive naming, so issue order is deterministic.
func inspectNode(n *figma.Node, contrast ContrastFunc, report *AccessibilityReport) {
	if n.HasVisibleImageFill() {
		report.Issues = append(report.Issues, Issue{
			Severity:     SeverityError,
			Message:      fmt.Sprintf("image %q is missing alternative text", n.Name),
			Element:      n.ID,
			SuggestedFix: "write a descriptive alt text for the exported image",
		})
		report.Score -= imageIssuePenalty
	}

	if KindOf(n.Type) == KindText {
		if ratio := contrast(n); ratio < minContrastRatio {
			report.Issues = append(report.Issues, Issue{
				Severity:     SeverityWarning,
				Message:      fmt.Sprintf("text %q has an estimated contrast ratio of %.2f:1, below the 4.5:1 minimum", n.Name, ratio),
				Element:      n.ID,
				SuggestedFix: "darken the text or lighten the background to reach 4.5:1",
			})
			report.Score -= contrastIssuePenalty
		} else {
			report.Suggestions = append(report.Suggestions,
				fmt.Sprintf("verify that text %q keeps a contrast ratio of at least 4.5:1 on its final background", n.Name))
		}
	}

	if isInteractiveName(n.Name) {
		report.Suggestions = append(report.Suggestions,
			fmt.Sprintf("make %q reachable and operable with the keyboard", n.Name),
			fmt.Sprintf("give %q an ARIA role and an accessible name", n.Name),
			fmt.Sprintf("add a visible focus indicator to %q", n.Name),
		)
	}

	for i := range n.Children {
		inspectNode(&n.Children[i], contrast, report)
	}
}

// isInteractiveName reports whether a layer name suggests an interactive
// control.
func isInteractiveName(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range []string{"button", "link", "input", "click"} {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// complianceTier buckets a score: 80 and above meets AA, 60 and above
// meets A, anything lower is non-compliant.
func complianceTier(score int) string {
	switch {
	case score >= 80:
		return "AA"
	case score >= 60:
		return "A"
	default:
		return "Non-compliant"
	}
}
