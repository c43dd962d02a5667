package generator

import (
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// Component type classifications inferred from a node's name and shape.
const (
	ComponentButton  = "button"
	ComponentCard    = "card"
	ComponentText    = "text"
	ComponentInput   = "input"
	ComponentLayout  = "layout"
	ComponentComplex = "complex"
)

// Complexity tiers derived from the complexity score.
const (
	ComplexitySimple  = "simple"
	ComplexityMedium  = "medium"
	ComplexityComplex = "complex"
)

// Metadata describes one generated component: where it came from, what it
// looks like, how confident the generator is, and what the consuming
// project needs installed.
type Metadata struct {
	SourceNodeID         string   `json:"sourceNodeId"`
	ComponentType        string   `json:"componentType"`
	ComplexityTier       string   `json:"complexityTier"`
	EstimatedAccuracy    int      `json:"estimatedAccuracy"`
	GenerationDurationMs int64    `json:"generationDurationMs"`
	Dependencies         []string `json:"dependencies"`
}

// ComputeMetadata classifies the target node and estimates generation
// accuracy. GenerationDurationMs is left at zero; the engine stamps it
// once the whole per-node pipeline has finished.
func ComputeMetadata(n *figma.Node, opts Options) Metadata {
	compType := componentType(n)
	tier := complexityTier(n)
	return Metadata{
		SourceNodeID:      n.ID,
		ComponentType:     compType,
		ComplexityTier:    tier,
		EstimatedAccuracy: estimateAccuracy(n, compType, tier),
		Dependencies:      dependencies(n, opts),
	}
}

// componentType classifies a node by its layer name first, then by its
// structure. The first matching rule wins.
func componentType(n *figma.Node) string {
	name := strings.ToLower(n.Name)
	switch {
	case strings.Contains(name, "button"):
		return ComponentButton
	case strings.Contains(name, "card"):
		return ComponentCard
	case KindOf(n.Type) == KindText || strings.Contains(name, "text"):
		return ComponentText
	case strings.Contains(name, "input"):
		return ComponentInput
	case len(n.Children) > 3:
		return ComponentLayout
	default:
		return ComponentComplex
	}
}

// complexityTier scores a node by direct child count plus 2 when it has
// effects and 1 when it has more than one fill, then buckets the score.
func complexityTier(n *figma.Node) string {
	score := len(n.Children)
	if len(n.Effects) >= 1 {
		score += 2
	}
	if len(n.Fills) >= 2 {
		score++
	}
	switch {
	case score <= 3:
		return ComplexitySimple
	case score <= 8:
		return ComplexityMedium
	default:
		return ComplexityComplex
	}
}

// estimateAccuracy starts at 85 and adjusts for how well this generator
// handles the shape: simple nodes gain, wide nodes lose, well-known
// component types gain. The result stays within [70, 100].
func estimateAccuracy(n *figma.Node, compType, tier string) int {
	accuracy := 85
	if tier == ComplexitySimple {
		accuracy += 10
	}
	if len(n.Children) > 5 {
		accuracy -= 5
	}
	switch compType {
	case ComponentButton, ComponentText, ComponentCard:
		accuracy += 5
	}

	if accuracy > 100 {
		accuracy = 100
	}
	if accuracy < 70 {
		accuracy = 70
	}
	return accuracy
}

// dependencies lists what the consuming project needs, in a fixed order:
// the framework core, then typescript, then the image-optimization package
// when the subtree carries image fills, then styled-components.
func dependencies(n *figma.Node, opts Options) []string {
	deps := []string{string(opts.Framework)}
	if opts.TypeScript {
		deps = append(deps, "typescript")
	}
	if opts.OptimizeImages && hasImageDescendant(n) {
		switch opts.Framework {
		case FrameworkReact:
			deps = append(deps, "next/image")
		case FrameworkVue:
			deps = append(deps, "@nuxt/image")
		}
	}
	if opts.Styling == StylingStyledComponents {
		deps = append(deps, "styled-components")
	}
	return deps
}

// hasImageDescendant reports whether the node or anything below it has a
// visible image fill.
func hasImageDescendant(n *figma.Node) bool {
	if n.HasVisibleImageFill() {
		return true
	}
	for i := range n.Children {
		if hasImageDescendant(&n.Children[i]) {
			return true
		}
	}
	return false
}
