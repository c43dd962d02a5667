package figmacodegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/generator"
)

func TestParseNodeIDs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single id", "1:2", []string{"1:2"}},
		{"multiple ids", "1:2,1:3,1:4", []string{"1:2", "1:3", "1:4"}},
		{"spaces trimmed", " 1:2 , 1:3 ", []string{"1:2", "1:3"}},
		{"empty parts dropped", "1:2,,1:3,", []string{"1:2", "1:3"}},
		{"empty string", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNodeIDs(tt.in))
		})
	}
}

func TestRunRejectsInvalidOptions(t *testing.T) {
	_, err := Run(Options{
		AccessToken: "figd_abc",
		FileURL:     "https://www.figma.com/file/ABC123/Design",
		Generation: generator.Options{
			Framework:  generator.FrameworkHTML,
			Styling:    generator.StylingTailwind,
			TypeScript: true,
		},
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "typescript output is not available")
}

func TestRunRequiresToken(t *testing.T) {
	_, err := Run(Options{
		FileURL: "https://www.figma.com/file/ABC123/Design",
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "access token is required")
}

func TestRunRejectsBadURL(t *testing.T) {
	_, err := Run(Options{
		AccessToken: "figd_abc",
		FileURL:     "https://example.com/not-figma",
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "extract file key")
}

func TestFileForNodes(t *testing.T) {
	opts := &Options{}
	fileResp := &figma.FileResponse{
		Name:    "Design System",
		Version: "42",
		Document: figma.Node{
			ID:   "0:0",
			Name: "Document",
			Type: "DOCUMENT",
		},
	}
	nodesResp := &figma.NodesResponse{
		Nodes: map[string]figma.NodeData{
			"1:2": {Document: figma.Node{ID: "1:2", Name: "Card", Type: "FRAME"}},
			"1:5": {Document: figma.Node{ID: "1:5", Name: "Button", Type: "COMPONENT"}},
		},
	}

	file := fileForNodes(opts, fileResp, nodesResp, []string{"1:2", "9:9", "1:5"})

	assert.Equal(t, "Design System", file.Name)
	assert.Equal(t, "42", file.Version)
	assert.Equal(t, "0:0", file.Document.ID)

	// The unresolved ID is skipped; the fetched subtrees become document
	// children and declared components at the same time.
	require.Len(t, file.Document.Children, 2)
	assert.Equal(t, "1:2", file.Document.Children[0].ID)
	assert.Equal(t, "1:5", file.Document.Children[1].ID)

	require.Len(t, file.Components, 2)
	assert.Equal(t, "Card", file.Components["1:2"].Name)
	assert.Equal(t, "Button", file.Components["1:5"].Name)
	_, ghost := file.Components["9:9"]
	assert.False(t, ghost)
}
