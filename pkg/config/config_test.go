package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hellenic-development/figma-codegen/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "generated", cfg.OutDir)
	assert.Equal(t, "react", cfg.Framework)
	assert.Equal(t, "tailwind", cfg.Styling)
	assert.True(t, cfg.TypeScript)
	assert.True(t, cfg.Accessibility)
	assert.True(t, cfg.Responsive)
	assert.True(t, cfg.OptimizeImages)
	assert.False(t, cfg.ExportAssets)
	assert.Equal(t, "png", cfg.AssetFormat)
	assert.Equal(t, 1.0, cfg.AssetScale)
	assert.Equal(t, "assets", cfg.AssetDir)
	assert.Equal(t, "127.0.0.1", cfg.ServerHost)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Empty(t, cfg.Token)
	assert.Empty(t, cfg.URL)
}

func TestLoadFromJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figma-codegen.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"framework": "vue",
		"styling": "css",
		"server_port": 9000,
		"token": "figd_abc"
	}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "vue", cfg.Framework)
	assert.Equal(t, "css", cfg.Styling)
	assert.Equal(t, 9000, cfg.ServerPort)
	assert.Equal(t, "figd_abc", cfg.Token)
	// Untouched keys keep their defaults.
	assert.Equal(t, "generated", cfg.OutDir)
	assert.True(t, cfg.TypeScript)
}

func TestLoadFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figma-codegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("framework: html\ntypescript: false\nasset_scale: 2\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "html", cfg.Framework)
	assert.False(t, cfg.TypeScript)
	assert.Equal(t, 2.0, cfg.AssetScale)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figma-codegen.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"framework": "vue", "server_port": 9000}`), 0644))

	t.Setenv("FIGMAGEN_FRAMEWORK", "html")
	t.Setenv("FIGMAGEN_TYPESCRIPT", "false")
	t.Setenv("FIGMAGEN_SERVER_PORT", "9090")
	t.Setenv("FIGMAGEN_TOKEN", "figd_env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "html", cfg.Framework)
	assert.False(t, cfg.TypeScript)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "figd_env", cfg.Token)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown framework", `{"framework": "svelte"}`},
		{"unknown styling", `{"styling": "sass"}`},
		{"unknown asset format", `{"asset_format": "webp"}`},
		{"asset scale above limit", `{"asset_scale": 5}`},
		{"asset scale zero", `{"asset_scale": 0}`},
		{"port out of range", `{"server_port": 70000}`},
		{"empty out dir", `{"out_dir": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "figma-codegen.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))

			_, err := Load(path)
			assert.Error(t, err)
			assert.ErrorContains(t, err, "config validation failed")
		})
	}
}

func TestGenerationOptions(t *testing.T) {
	cfg := &Config{
		Framework:      "vue",
		Styling:        "css",
		TypeScript:     true,
		Accessibility:  false,
		Responsive:     true,
		OptimizeImages: false,
	}

	opts := cfg.GenerationOptions()

	assert.Equal(t, generator.FrameworkVue, opts.Framework)
	assert.Equal(t, generator.StylingCSS, opts.Styling)
	assert.True(t, opts.TypeScript)
	assert.False(t, opts.Accessibility)
	assert.True(t, opts.Responsive)
	assert.False(t, opts.OptimizeImages)
}

func TestCustomCode(t *testing.T) {
	dir := t.TempDir()
	markupPath := filepath.Join(dir, "markup.txt")
	stylePath := filepath.Join(dir, "style.css")
	require.NoError(t, os.WriteFile(markupPath, []byte("<footer>custom</footer>\n"), 0644))
	require.NoError(t, os.WriteFile(stylePath, []byte(".x { color: red; }\n"), 0644))

	cfg := &Config{
		CustomMarkupFile: markupPath,
		CustomStyleFile:  stylePath,
	}

	custom, err := cfg.CustomCode()
	require.NoError(t, err)

	assert.Equal(t, "<footer>custom</footer>\n", custom.Markup)
	assert.Equal(t, ".x { color: red; }\n", custom.Style)
	assert.Empty(t, custom.AdvancedStyle)
}

func TestCustomCodeMissingFile(t *testing.T) {
	cfg := &Config{CustomMarkupFile: filepath.Join(t.TempDir(), "missing.txt")}

	_, err := cfg.CustomCode()
	assert.ErrorContains(t, err, "failed to read custom code file")
}

func TestCustomCodeEmpty(t *testing.T) {
	custom, err := (&Config{}).CustomCode()
	require.NoError(t, err)
	assert.True(t, custom.IsZero())
}
