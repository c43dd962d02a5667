package generator

import (
	"fmt"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// ResponsiveReport carries the per-breakpoint variants of a component and
// whether the design itself encodes adaptive behavior.
type ResponsiveReport struct {
	Mobile              string `json:"mobile"`
	Tablet              string `json:"tablet"`
	Desktop             string `json:"desktop"`
	HasResponsiveDesign bool   `json:"hasResponsiveDesign"`
}

// AnalyzeResponsive derives the breakpoint variants for a component. Each
// variant is the synthesized markup prefixed with a comment marker naming
// the breakpoint it targets; the markers document intent for the developer
// picking up the component, nothing is rewritten per breakpoint.
func AnalyzeResponsive(n *figma.Node, fw Framework, markup string) ResponsiveReport {
	return ResponsiveReport{
		Mobile:              breakpointMarker(fw, "mobile", "max-width: 640px") + markup,
		Tablet:              breakpointMarker(fw, "tablet", "max-width: 1024px") + markup,
		Desktop:             breakpointMarker(fw, "desktop", "min-width: 1025px") + markup,
		HasResponsiveDesign: hasResponsiveDesign(n),
	}
}

func breakpointMarker(fw Framework, name, query string) string {
	if fw == FrameworkReact {
		return fmt.Sprintf("{/* %s (%s) */}\n", name, query)
	}
	return fmt.Sprintf("<!-- %s (%s) -->\n", name, query)
}

// hasResponsiveDesign reports whether the node carries an adaptive signal:
// an auto-layout direction, or constraints that deviate from the default
// top-left pinning.
func hasResponsiveDesign(n *figma.Node) bool {
	if n.LayoutMode == "HORIZONTAL" || n.LayoutMode == "VERTICAL" {
		return true
	}
	if c := n.Constraints; c != nil {
		if c.Horizontal != "" && c.Horizontal != "LEFT" {
			return true
		}
		if c.Vertical != "" && c.Vertical != "TOP" {
			return true
		}
	}
	return false
}
