package figmacodegen

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/assets"
	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/formatter"
	"github.com/hellenic-development/figma-codegen/pkg/generator"
	"github.com/hellenic-development/figma-codegen/pkg/packager"
)

// Version is the release version reported by the CLI and the HTTP API.
const Version = "0.1.0"

// Options configures the generation run.
type Options struct {
	AccessToken string
	FileURL     string   // Figma file URL
	NodeIDs     []string // empty = whole file (declared components, or main frames)

	Generation generator.Options    // zero value falls back to generator.DefaultOptions
	CustomCode generator.CustomCode // optional fragments injected into every artifact

	OutDir       string  // when set, component files and the report are written here
	ExportAssets bool    // download image-backed nodes next to the sources
	AssetFormat  string  // "png", "svg", "jpg", "pdf"
	AssetScale   float64 // export multiplier, raster formats only
	AssetDir     string  // local directory, default "assets"

	Logger Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the generation output.
type Result struct {
	Artifacts    []*generator.Artifact
	FileName     string         // Figma file name
	Markdown     string         // formatted markdown summary
	WrittenFiles []string       // paths written under OutDir, if any
	Assets       *assets.Result // exported image assets, when enabled
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run executes the full generation pipeline: fetch the document tree,
// synthesize one artifact per component, and optionally write sources and
// assets to disk.
func Run(opts Options) (*Result, error) {
	// Apply defaults.
	var zero generator.Options
	if opts.Generation == zero {
		opts.Generation = generator.DefaultOptions()
	}
	if opts.AssetFormat == "" {
		opts.AssetFormat = "png"
	}
	if opts.AssetDir == "" {
		opts.AssetDir = "assets"
	}
	if opts.AssetScale <= 0 {
		opts.AssetScale = 1
	}

	// Reject bad option combinations before any network traffic.
	engine, err := generator.NewEngine(opts.Generation)
	if err != nil {
		return nil, err
	}

	if opts.AccessToken == "" {
		return nil, fmt.Errorf("access token is required")
	}

	// Extract file key from URL.
	opts.logInfo("Extracting file key from URL...")
	fileKey, err := figma.ExtractFileKey(opts.FileURL)
	if err != nil {
		return nil, fmt.Errorf("extract file key: %w", err)
	}
	opts.logInfo("File key: %s", fileKey)

	// Extract node IDs from URL unless explicit ones were given.
	var targetNodeIDs []string
	if len(opts.NodeIDs) > 0 {
		opts.logInfo("Using %d explicit node ID(s)", len(opts.NodeIDs))
		targetNodeIDs = opts.NodeIDs
	} else {
		urlNodeIDs, err := figma.ExtractNodeIDs(opts.FileURL)
		if err != nil {
			return nil, fmt.Errorf("extract node IDs from URL: %w", err)
		}
		if len(urlNodeIDs) > 0 {
			targetNodeIDs = urlNodeIDs
			opts.logInfo("Found %d node(s) in URL", len(targetNodeIDs))
		} else {
			opts.logInfo("No node IDs in URL, generating from the whole file")
		}
	}

	opts.logInfo("Authenticating with Figma API...")
	client := figma.NewClient(opts.AccessToken)

	var file *figma.FileResponse

	// With specific nodes, fetch just those subtrees and present them to
	// the engine as declared components. Otherwise the whole file decides:
	// its declared components, or its main frames.
	if len(targetNodeIDs) > 0 {
		opts.logInfo("Fetching %d node(s) from Figma...", len(targetNodeIDs))
		nodesResp, err := client.GetFileNodes(fileKey, targetNodeIDs)
		if err != nil {
			return nil, fmt.Errorf("fetch nodes: %w", err)
		}

		opts.logInfo("Fetching file metadata...")
		fileResp, err := client.GetFile(fileKey)
		if err != nil {
			return nil, fmt.Errorf("fetch file metadata: %w", err)
		}

		file = fileForNodes(&opts, fileResp, nodesResp, targetNodeIDs)
	} else {
		opts.logInfo("Fetching file data from Figma...")
		file, err = client.GetFile(fileKey)
		if err != nil {
			return nil, fmt.Errorf("fetch file: %w", err)
		}
	}
	opts.logInfo("File: %s", file.Name)

	opts.logInfo("Generating components...")
	artifacts, err := engine.Generate(file, opts.CustomCode)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	opts.logInfo("Generated %d component(s)", len(artifacts))

	result := &Result{
		Artifacts: artifacts,
		FileName:  file.Name,
	}

	// Asset export (opt-in).
	if opts.ExportAssets {
		exported, err := exportAssets(&opts, client, fileKey, file)
		if err != nil {
			return nil, err
		}
		result.Assets = exported
	}

	opts.logInfo("Formatting the summary...")
	result.Markdown = formatter.ToMarkdown(artifacts, file.Name)

	// Write-out (opt-in).
	if opts.OutDir != "" {
		opts.logInfo("Writing component files to %s...", opts.OutDir)
		written, err := packager.Write(opts.OutDir, artifacts, opts.Generation)
		if err != nil {
			return nil, fmt.Errorf("write components: %w", err)
		}

		reportPath, err := packager.WriteReport(opts.OutDir, file.Name, artifacts)
		if err != nil {
			return nil, fmt.Errorf("write report: %w", err)
		}
		written = append(written, reportPath)

		result.WrittenFiles = written
		opts.logInfo("Wrote %d file(s)", len(written))
	}

	return result, nil
}

// fileForNodes assembles a file response whose declared components are
// exactly the requested nodes, so the engine targets them and nothing else.
// Requested IDs the API did not return are logged and skipped.
func fileForNodes(opts *Options, fileResp *figma.FileResponse, nodesResp *figma.NodesResponse, nodeIDs []string) *figma.FileResponse {
	doc := figma.Node{
		ID:   fileResp.Document.ID,
		Name: fileResp.Document.Name,
		Type: "DOCUMENT",
	}
	components := make(map[string]figma.Component, len(nodeIDs))

	for _, id := range nodeIDs {
		nd, ok := nodesResp.Nodes[id]
		if !ok {
			opts.logWarn("Node %s not found in file, skipping", id)
			continue
		}
		doc.Children = append(doc.Children, nd.Document)
		components[id] = figma.Component{Name: nd.Document.Name}
	}

	return &figma.FileResponse{
		Name:       fileResp.Name,
		Version:    fileResp.Version,
		Document:   doc,
		Components: components,
	}
}

// exportAssets downloads every image-backed node of the document, so the
// src paths in the generated markup resolve locally.
func exportAssets(opts *Options, client *figma.Client, fileKey string, file *figma.FileResponse) (*assets.Result, error) {
	validFormats := map[string]bool{"png": true, "svg": true, "jpg": true, "pdf": true}
	if !validFormats[opts.AssetFormat] {
		return nil, fmt.Errorf("invalid asset format %q (must be png, svg, jpg, or pdf)", opts.AssetFormat)
	}

	mediaNodes := assets.CollectMediaNodes(&file.Document)
	if len(mediaNodes) == 0 {
		opts.logInfo("No image-backed nodes to export")
		return &assets.Result{}, nil
	}

	opts.logInfo("Exporting %d image(s) to %s...", len(mediaNodes), opts.AssetDir)
	exported, err := assets.Export(client, fileKey, mediaNodes, assets.ExportConfig{
		Format:    opts.AssetFormat,
		Scale:     opts.AssetScale,
		OutputDir: opts.AssetDir,
	})
	if err != nil {
		return nil, fmt.Errorf("export assets: %w", err)
	}

	opts.logInfo("Exported %d image(s)", len(exported.Assets))
	for _, dlErr := range exported.Errors {
		opts.logWarn("%v", dlErr)
	}

	return exported, nil
}

// ParseNodeIDs parses a comma-separated string of node IDs and returns a slice.
func ParseNodeIDs(nodeIDsStr string) []string {
	parts := strings.Split(nodeIDsStr, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
