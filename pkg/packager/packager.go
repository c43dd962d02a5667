package packager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hellenic-development/figma-codegen/pkg/generator"
)

// Write lays the artifacts out as source files under dir, one set of files
// per component: the markup file named for the framework, the stylesheet
// named for the dialect, and the type description as a .types.ts file.
// Empty texts produce no file (the utility dialect has no stylesheet, html
// output has no types). Returns the paths written, in order.
func Write(dir string, artifacts []*generator.Artifact, opts generator.Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}

	var written []string
	for _, art := range artifacts {
		for _, file := range filesFor(art, opts) {
			path := filepath.Join(dir, file.name)
			if err := os.WriteFile(path, []byte(file.content), 0644); err != nil {
				return written, fmt.Errorf("failed to write %q: %w", file.name, err)
			}
			written = append(written, path)
		}
	}

	return written, nil
}

type outputFile struct {
	name    string
	content string
}

func filesFor(art *generator.Artifact, opts generator.Options) []outputFile {
	var files []outputFile

	if art.Markup != "" {
		files = append(files, outputFile{art.Name + MarkupExtension(opts), art.Markup})
	}
	if art.Style != "" {
		files = append(files, outputFile{art.Name + StyleSuffix(opts.Styling), art.Style})
	}
	if art.TypeDescription != "" {
		files = append(files, outputFile{art.Name + ".types.ts", art.TypeDescription})
	}

	return files
}

// MarkupExtension returns the component file extension for the given
// options: .tsx or .jsx for react, .vue for vue, .html for html.
func MarkupExtension(opts generator.Options) string {
	switch opts.Framework {
	case generator.FrameworkVue:
		return ".vue"
	case generator.FrameworkHTML:
		return ".html"
	default:
		if opts.TypeScript {
			return ".tsx"
		}
		return ".jsx"
	}
}

// StyleSuffix returns the stylesheet file suffix for a dialect. Tailwind
// emits no stylesheet text, so no file ever carries its suffix.
func StyleSuffix(styling generator.Styling) string {
	switch styling {
	case generator.StylingCSSModules:
		return ".module.css"
	case generator.StylingStyledComponents:
		return ".styles.ts"
	default:
		return ".css"
	}
}

// report is the combined analysis envelope written next to the sources,
// for consumers that want the findings without parsing the components.
type report struct {
	File       string            `json:"file"`
	Components []componentReport `json:"components"`
}

type componentReport struct {
	ID            string                        `json:"id"`
	Name          string                        `json:"name"`
	Accessibility generator.AccessibilityReport `json:"accessibility"`
	Responsive    generator.ResponsiveReport    `json:"responsive"`
	Metadata      generator.Metadata            `json:"metadata"`
}

// WriteReport writes the accessibility, responsiveness, and metadata
// reports of every artifact as one indented JSON file and returns its
// path.
func WriteReport(dir, fileName string, artifacts []*generator.Artifact) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}

	rep := report{
		File:       fileName,
		Components: make([]componentReport, 0, len(artifacts)),
	}
	for _, art := range artifacts {
		rep.Components = append(rep.Components, componentReport{
			ID:            art.ID,
			Name:          art.Name,
			Accessibility: art.Accessibility,
			Responsive:    art.Responsive,
			Metadata:      art.Metadata,
		})
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	path := filepath.Join(dir, "generation-report.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}
