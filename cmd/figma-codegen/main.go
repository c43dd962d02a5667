package main

import (
	"fmt"
	"os"
	"path/filepath"

	figmacodegen "github.com/hellenic-development/figma-codegen"
	"github.com/hellenic-development/figma-codegen/pkg/api"
	"github.com/hellenic-development/figma-codegen/pkg/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	configFile string

	figmaURL    string
	accessToken string
	nodeIDs     string
	outDir      string
	summaryFile string

	framework      string
	styling        string
	typescript     bool
	accessibility  bool
	responsive     bool
	optimizeImages bool

	exportAssets bool
	assetFormat  string
	assetScale   float64
	assetDir     string

	customMarkupFile   string
	customStyleFile    string
	customAdvancedFile string

	serverHost string
	serverPort int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "figma-codegen",
		Short: "Generate component code from Figma files",
		Long:  "A tool to generate React, Vue, or HTML components with stylesheets, TypeScript types, and accessibility reports from Figma files via the Figma API",
		Run:   runGenerate,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file path (default: figma-codegen.json/.yaml in the working directory)")

	rootCmd.Flags().StringVarP(&figmaURL, "url", "u", "", "Figma file URL (required unless set in config or FIGMAGEN_URL)")
	rootCmd.Flags().StringVarP(&accessToken, "token", "t", "", "Figma Personal Access Token (required unless set in config or FIGMAGEN_TOKEN)")
	rootCmd.Flags().StringVarP(&nodeIDs, "node-ids", "n", "", "Comma-separated node IDs to generate (optional, generates specific nodes instead of declared components)")
	rootCmd.Flags().StringVarP(&outDir, "out-dir", "o", "generated", "Output directory for generated component files")
	rootCmd.Flags().StringVar(&summaryFile, "summary", "GENERATED_COMPONENTS.md", "Markdown summary file, written into the output directory")
	rootCmd.Flags().StringVar(&framework, "framework", "react", "Target framework: react, vue, html")
	rootCmd.Flags().StringVar(&styling, "styling", "tailwind", "Styling dialect: tailwind, css-modules, styled-components, css")
	rootCmd.Flags().BoolVar(&typescript, "typescript", true, "Emit a TypeScript props interface per component")
	rootCmd.Flags().BoolVar(&accessibility, "accessibility", true, "Run the accessibility analysis")
	rootCmd.Flags().BoolVar(&responsive, "responsive", true, "Run the responsiveness analysis")
	rootCmd.Flags().BoolVar(&optimizeImages, "optimize-images", true, "Use the framework's optimized image component for media nodes")
	rootCmd.Flags().BoolVar(&exportAssets, "export-assets", false, "Download image-backed nodes from Figma")
	rootCmd.Flags().StringVar(&assetFormat, "asset-format", "png", "Asset format: png, svg, jpg, pdf")
	rootCmd.Flags().Float64Var(&assetScale, "asset-scale", 1, "Asset export scale factor (raster formats only)")
	rootCmd.Flags().StringVar(&assetDir, "asset-dir", "assets", "Output directory for exported assets")
	rootCmd.Flags().StringVar(&customMarkupFile, "custom-markup", "", "File with custom markup appended to every component")
	rootCmd.Flags().StringVar(&customStyleFile, "custom-style", "", "File with custom styles appended to every stylesheet")
	rootCmd.Flags().StringVar(&customAdvancedFile, "custom-advanced-style", "", "File with advanced custom styles appended after the custom styles")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the generation HTTP API",
		Long:  "Serves POST /api/generate, which runs the engine over a posted document tree, plus GET /health and GET /api/options",
		Run:   runServe,
	}
	serveCmd.Flags().StringVar(&serverHost, "host", "127.0.0.1", "Bind address")
	serveCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-codegen version %s\n", figmacodegen.Version)
		},
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 Figma Component Generator")
	cyan.Println("============================")
	cyan.Println()

	cfg, err := config.Load(configFile)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cmd, cfg)

	// Token and URL may come from flags, config, or environment, so they
	// are checked after the merge rather than marked required on the flag.
	if cfg.Token == "" {
		red.Println("Error: a Figma access token is required (--token, config token, or FIGMAGEN_TOKEN)")
		os.Exit(1)
	}
	if cfg.URL == "" {
		red.Println("Error: a Figma file URL is required (--url, config url, or FIGMAGEN_URL)")
		os.Exit(1)
	}

	custom, err := cfg.CustomCode()
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	var parsedNodeIDs []string
	if cfg.NodeIDs != "" {
		parsedNodeIDs = figmacodegen.ParseNodeIDs(cfg.NodeIDs)
	}

	opts := figmacodegen.Options{
		AccessToken:  cfg.Token,
		FileURL:      cfg.URL,
		NodeIDs:      parsedNodeIDs,
		Generation:   cfg.GenerationOptions(),
		CustomCode:   custom,
		OutDir:       cfg.OutDir,
		ExportAssets: cfg.ExportAssets,
		AssetFormat:  cfg.AssetFormat,
		AssetScale:   cfg.AssetScale,
		AssetDir:     cfg.AssetDir,
		Logger:       &cliLogger{},
	}

	result, err := figmacodegen.Run(opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Display generation stats.
	cyan.Println("\n📊 Generation Summary:")
	fmt.Printf("  • File: %s\n", result.FileName)
	fmt.Printf("  • Components: %d\n", len(result.Artifacts))

	for _, art := range result.Artifacts {
		line := fmt.Sprintf("  • %s: %s, %s, %d%% accuracy",
			art.Name, art.Metadata.ComponentType, art.Metadata.ComplexityTier, art.Metadata.EstimatedAccuracy)
		if art.Accessibility.ComplianceTier != "" {
			line += fmt.Sprintf(", accessibility %s (%d)", art.Accessibility.ComplianceTier, art.Accessibility.Score)
		}
		fmt.Println(line)
	}

	if result.Assets != nil && len(result.Assets.Assets) > 0 {
		fmt.Printf("  • Exported Assets: %d\n", len(result.Assets.Assets))
	}
	if len(result.WrittenFiles) > 0 {
		fmt.Printf("  • Files Written: %d\n", len(result.WrittenFiles))
	}

	// Write the markdown summary next to the generated sources.
	if summaryFile != "" {
		summaryPath := filepath.Join(cfg.OutDir, summaryFile)
		green.Printf("\n💾 Writing summary to %s... ", summaryPath)
		if err := os.WriteFile(summaryPath, []byte(result.Markdown), 0644); err != nil {
			red.Printf("✗\n")
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		green.Println("✓")
	}

	green.Printf("\n✨ Successfully generated %d component(s) in %s\n\n", len(result.Artifacts), cfg.OutDir)
}

func runServe(cmd *cobra.Command, args []string) {
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cfg, err := config.Load(configFile)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("host") {
		cfg.ServerHost = serverHost
	}
	if cmd.Flags().Changed("port") {
		cfg.ServerPort = serverPort
	}

	addr := fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)
	cyan.Printf("\n🎨 figma-codegen %s\n", figmacodegen.Version)
	cyan.Printf("Listening on http://%s\n\n", addr)

	e := api.NewServer(figmacodegen.Version)
	if err := e.Start(addr); err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags copies every flag the user actually passed over the loaded
// config, which keeps the priority order flags > environment > file >
// defaults.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.URL = figmaURL
	}
	if flags.Changed("token") {
		cfg.Token = accessToken
	}
	if flags.Changed("node-ids") {
		cfg.NodeIDs = nodeIDs
	}
	if flags.Changed("out-dir") {
		cfg.OutDir = outDir
	}
	if flags.Changed("framework") {
		cfg.Framework = framework
	}
	if flags.Changed("styling") {
		cfg.Styling = styling
	}
	if flags.Changed("typescript") {
		cfg.TypeScript = typescript
	}
	if flags.Changed("accessibility") {
		cfg.Accessibility = accessibility
	}
	if flags.Changed("responsive") {
		cfg.Responsive = responsive
	}
	if flags.Changed("optimize-images") {
		cfg.OptimizeImages = optimizeImages
	}
	if flags.Changed("export-assets") {
		cfg.ExportAssets = exportAssets
	}
	if flags.Changed("asset-format") {
		cfg.AssetFormat = assetFormat
	}
	if flags.Changed("asset-scale") {
		cfg.AssetScale = assetScale
	}
	if flags.Changed("asset-dir") {
		cfg.AssetDir = assetDir
	}
	if flags.Changed("custom-markup") {
		cfg.CustomMarkupFile = customMarkupFile
	}
	if flags.Changed("custom-style") {
		cfg.CustomStyleFile = customStyleFile
	}
	if flags.Changed("custom-advanced-style") {
		cfg.CustomAdvancedFile = customAdvancedFile
	}
}

// cliLogger implements figmacodegen.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
