// Package figmacodegen turns Figma design documents into component code:
// markup for React, Vue, or plain HTML, a stylesheet in the chosen dialect,
// an optional TypeScript props interface, and per-component accessibility,
// responsiveness, and metadata reports.
//
// The CLI lives in cmd/figma-codegen; this root package exposes the same
// pipeline as a Go API so that callers can embed generation in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmacodegen:
//
//	import "github.com/hellenic-development/figma-codegen" // package figmacodegen
//
// # Quick start
//
//	result, err := figmacodegen.Run(figmacodegen.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    FileURL:     "https://www.figma.com/design/ABC123/My-Design",
//	    OutDir:      "generated",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Markdown)
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
//	type myLogger struct{}
//	func (l *myLogger) Infof(f string, a ...any)  { log.Printf("[INFO]  "+f, a...) }
//	func (l *myLogger) Warnf(f string, a ...any)  { log.Printf("[WARN]  "+f, a...) }
//	func (l *myLogger) Errorf(f string, a ...any) { log.Printf("[ERROR] "+f, a...) }
//
// # Component selection
//
// A file's published components become one artifact each. Files without
// declared components fall back to their top-most frames. To generate
// specific nodes instead, populate [Options.NodeIDs] or include node-id
// query parameters in the Figma URL.
//
// # Asset export
//
// When [Options.ExportAssets] is true the pipeline downloads every node
// carrying a visible IMAGE fill into [Options.AssetDir], using the same
// file names the generated markup references in src attributes.
//
// # Server
//
// The serve subcommand of the CLI exposes the engine over HTTP: clients
// POST a pre-fetched document tree to /api/generate and receive the
// artifacts back as JSON. See pkg/api.
package figmacodegen
