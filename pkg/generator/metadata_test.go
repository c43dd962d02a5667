package generator

import (
	"testing"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/stretchr/testify/assert"
)

func TestComponentTypePrecedence(t *testing.T) {
	tests := []struct {
		name string
		node figma.Node
		want string
	}{
		{"button by name", figma.Node{Name: "Primary Button", Type: "FRAME"}, ComponentButton},
		{"button beats card", figma.Node{Name: "Card Button", Type: "FRAME"}, ComponentButton},
		{"card by name", figma.Node{Name: "Product Card", Type: "FRAME"}, ComponentCard},
		{"text by node type", figma.Node{Name: "Promo", Type: "TEXT"}, ComponentText},
		{"text by name", figma.Node{Name: "Body Text", Type: "FRAME"}, ComponentText},
		{"input by name", figma.Node{Name: "Search Input", Type: "FRAME"}, ComponentInput},
		{
			"layout by child count",
			frame("1", "Grid", frame("2", "a"), frame("3", "b"), frame("4", "c"), frame("5", "d")),
			ComponentLayout,
		},
		{"complex fallback", figma.Node{Name: "Blob", Type: "VECTOR"}, ComponentComplex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.node
			assert.Equal(t, tt.want, componentType(&n))
		})
	}
}

func TestComplexityTier(t *testing.T) {
	three := frame("1", "Row", frame("2", "a"), frame("3", "b"), frame("4", "c"))
	three.Fills = []figma.Paint{{Type: "SOLID", Visible: true, Opacity: 1}}
	assert.Equal(t, ComplexitySimple, complexityTier(&three))

	four := frame("1", "Row", frame("2", "a"), frame("3", "b"), frame("4", "c"), frame("5", "d"))
	assert.Equal(t, ComplexityMedium, complexityTier(&four))

	var nine figma.Node
	nine.Type = "FRAME"
	for i := 0; i < 9; i++ {
		nine.Children = append(nine.Children, figma.Node{Type: "FRAME"})
	}
	assert.Equal(t, ComplexityComplex, complexityTier(&nine))
}

func TestComplexityTierCountsEffectsAndFills(t *testing.T) {
	n := frame("1", "Panel", frame("2", "a"), frame("3", "b"))
	n.Effects = []figma.Effect{{Type: "DROP_SHADOW", Visible: true}}
	n.Fills = []figma.Paint{
		{Type: "SOLID", Visible: true, Opacity: 1},
		{Type: "IMAGE", Visible: true, Opacity: 1},
	}

	// 2 children + 2 for effects + 1 for multiple fills = 5
	assert.Equal(t, ComplexityMedium, complexityTier(&n))
}

func TestComputeMetadataHeadingScenario(t *testing.T) {
	heading := textNode("5:1", "Heading", "Welcome", 24)

	meta := ComputeMetadata(&heading, DefaultOptions())

	assert.Equal(t, "5:1", meta.SourceNodeID)
	assert.Equal(t, ComponentText, meta.ComponentType)
	assert.Equal(t, ComplexitySimple, meta.ComplexityTier)
	assert.GreaterOrEqual(t, meta.EstimatedAccuracy, 90)
	assert.LessOrEqual(t, meta.EstimatedAccuracy, 100)
	assert.Zero(t, meta.GenerationDurationMs)
}

func TestComputeMetadataCardScenario(t *testing.T) {
	card := frame("2:1", "Card 1",
		textNode("2:2", "Title", "Hello", 24),
		textNode("2:3", "Body", "World", 14),
	)

	meta := ComputeMetadata(&card, DefaultOptions())

	assert.Equal(t, ComponentCard, meta.ComponentType)
	assert.Equal(t, ComplexitySimple, meta.ComplexityTier)
	assert.GreaterOrEqual(t, meta.EstimatedAccuracy, 90)
	assert.LessOrEqual(t, meta.EstimatedAccuracy, 100)
}

func TestEstimateAccuracyWideNode(t *testing.T) {
	wide := frame("1", "Dashboard")
	for i := 0; i < 9; i++ {
		wide.Children = append(wide.Children, figma.Node{Type: "FRAME"})
	}

	meta := ComputeMetadata(&wide, DefaultOptions())

	// 85 base, no simple bonus, -5 for more than five children
	assert.Equal(t, ComponentLayout, meta.ComponentType)
	assert.Equal(t, ComplexityComplex, meta.ComplexityTier)
	assert.Equal(t, 80, meta.EstimatedAccuracy)
}

func TestMetadataDependencies(t *testing.T) {
	withImage := frame("1", "Hero", imageRect("2", "Photo", 10, 10))
	noImage := frame("3", "Box", frame("4", "Inner"))

	reactDefaults := DefaultOptions()
	assert.Equal(t, []string{"react", "typescript", "next/image"}, dependencies(&withImage, reactDefaults))
	assert.Equal(t, []string{"react", "typescript"}, dependencies(&noImage, reactDefaults))

	vueOpts := Options{Framework: FrameworkVue, Styling: StylingTailwind, OptimizeImages: true}
	assert.Equal(t, []string{"vue", "@nuxt/image"}, dependencies(&withImage, vueOpts))

	htmlOpts := Options{Framework: FrameworkHTML, Styling: StylingCSS, OptimizeImages: true}
	assert.Equal(t, []string{"html"}, dependencies(&withImage, htmlOpts))

	styled := Options{Framework: FrameworkReact, Styling: StylingStyledComponents, TypeScript: true}
	assert.Equal(t, []string{"react", "typescript", "styled-components"}, dependencies(&noImage, styled))

	noOptimize := DefaultOptions()
	noOptimize.OptimizeImages = false
	assert.Equal(t, []string{"react", "typescript"}, dependencies(&withImage, noOptimize))
}

func TestHasImageDescendant(t *testing.T) {
	direct := imageRect("1", "Photo", 10, 10)
	assert.True(t, hasImageDescendant(&direct))

	nested := frame("2", "Outer", frame("3", "Inner", imageRect("4", "Deep", 10, 10)))
	assert.True(t, hasImageDescendant(&nested))

	none := frame("5", "Outer", textNode("6", "Label", "Hi", 12))
	assert.False(t, hasImageDescendant(&none))
}
