package generator

import (
	"fmt"
	"sort"
	"time"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// Artifact is the complete generation output for one component: the
// markup, the stylesheet, the optional type description, and the three
// analysis reports.
type Artifact struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Markup          string              `json:"markup"`
	Style           string              `json:"style"`
	TypeDescription string              `json:"typeDescription,omitempty"`
	Accessibility   AccessibilityReport `json:"accessibility"`
	Responsive      ResponsiveReport    `json:"responsive"`
	Metadata        Metadata            `json:"metadata"`
}

// Engine turns Figma document trees into component artifacts. An Engine
// holds validated options and no other state, so distinct engines can run
// concurrently; a single Generate call is synchronous and does no I/O.
type Engine struct {
	opts Options

	// Contrast estimates text contrast for the accessibility analysis.
	// Nil falls back to DefaultContrast.
	Contrast ContrastFunc
}

// NewEngine validates the options and returns a ready engine. Invalid
// options fail here, before any artifact is produced.
func NewEngine(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Engine{opts: opts}, nil
}

// Options returns the validated options the engine runs with.
func (e *Engine) Options() Options {
	return e.opts
}

// Generate produces one artifact per target node. When the file declares
// components, those are the targets, resolved against the document tree in
// sorted-ID order; component IDs that resolve to no node are skipped.
// Otherwise the top-most frames with at least one child stand in as
// component roots. The same document, options, and custom code always
// produce the same artifacts, apart from the measured durations.
func (e *Engine) Generate(file *figma.FileResponse, custom CustomCode) ([]*Artifact, error) {
	if file == nil {
		return nil, fmt.Errorf("generate: file response is nil")
	}

	targets := e.selectTargets(file)
	artifacts := make([]*Artifact, 0, len(targets))
	for _, n := range targets {
		artifacts = append(artifacts, e.generateOne(n, custom))
	}
	return artifacts, nil
}

// selectTargets picks the nodes to generate from.
func (e *Engine) selectTargets(file *figma.FileResponse) []*figma.Node {
	if len(file.Components) > 0 {
		index := make(map[string]*figma.Node)
		indexNodes(&file.Document, index)

		ids := make([]string, 0, len(file.Components))
		for id := range file.Components {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		var targets []*figma.Node
		for _, id := range ids {
			if n, ok := index[id]; ok {
				targets = append(targets, n)
			}
		}
		return targets
	}

	var frames []*figma.Node
	collectMainFrames(&file.Document, &frames)
	return frames
}

// generateOne runs the whole per-node pipeline and measures its duration.
func (e *Engine) generateOne(n *figma.Node, custom CustomCode) *Artifact {
	start := time.Now()

	name := SanitizeComponentName(n.Name)
	markup := SynthesizeMarkup(n, e.opts, name)
	style := EmitStyle(ExtractStyle(n), e.opts.Styling, name, htmlTagFor(n))

	var typeDesc string
	if e.opts.TypeScript {
		typeDesc = TypeDescription(n, e.opts, name)
	}

	var accessibility AccessibilityReport
	if e.opts.Accessibility {
		accessibility = AnalyzeAccessibility(n, e.Contrast)
	}

	var responsive ResponsiveReport
	if e.opts.Responsive {
		responsive = AnalyzeResponsive(n, e.opts.Framework, markup)
	}

	meta := ComputeMetadata(n, e.opts)

	markup = InjectMarkup(markup, custom, e.opts.Framework)
	style = InjectStyle(style, custom)

	meta.GenerationDurationMs = time.Since(start).Milliseconds()

	return &Artifact{
		ID:              n.ID,
		Name:            name,
		Markup:          markup,
		Style:           style,
		TypeDescription: typeDesc,
		Accessibility:   accessibility,
		Responsive:      responsive,
		Metadata:        meta,
	}
}

// indexNodes maps every node in the subtree by ID. Figma documents are
// trees, so each ID appears once.
func indexNodes(n *figma.Node, index map[string]*figma.Node) {
	index[n.ID] = n
	for i := range n.Children {
		indexNodes(&n.Children[i], index)
	}
}

// collectMainFrames gathers the top-most frames that have at least one
// child. A collected frame is not descended into, so nested frames stay
// part of their ancestor's component.
func collectMainFrames(n *figma.Node, out *[]*figma.Node) {
	if KindOf(n.Type) == KindFrame && len(n.Children) > 0 {
		*out = append(*out, n)
		return
	}
	for i := range n.Children {
		collectMainFrames(&n.Children[i], out)
	}
}
