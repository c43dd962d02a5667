package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/hellenic-development/figma-codegen/pkg/generator"
)

// Config represents the figma-codegen CLI configuration. Values merge in
// priority order: FIGMAGEN_* environment variables > config file >
// defaults. Flags are applied on top by the CLI itself.
type Config struct {
	Token   string `koanf:"token"`
	URL     string `koanf:"url"`
	NodeIDs string `koanf:"node_ids"` // comma-separated node IDs, overrides URL node-id

	OutDir         string  `koanf:"out_dir" validate:"required"`
	Framework      string  `koanf:"framework" validate:"oneof=react vue html"`
	Styling        string  `koanf:"styling" validate:"oneof=tailwind css-modules styled-components css"`
	TypeScript     bool    `koanf:"typescript"`
	Accessibility  bool    `koanf:"accessibility"`
	Responsive     bool    `koanf:"responsive"`
	OptimizeImages bool    `koanf:"optimize_images"`
	ExportAssets   bool    `koanf:"export_assets"`
	AssetFormat    string  `koanf:"asset_format" validate:"oneof=png jpg svg pdf"`
	AssetScale     float64 `koanf:"asset_scale" validate:"gt=0,lte=4"`
	AssetDir       string  `koanf:"asset_dir" validate:"required"`

	CustomMarkupFile   string `koanf:"custom_markup_file"`
	CustomStyleFile    string `koanf:"custom_style_file"`
	CustomAdvancedFile string `koanf:"custom_advanced_file"`

	ServerHost string `koanf:"server_host"`
	ServerPort int    `koanf:"server_port" validate:"min=1,max=65535"`
}

// Defaults returns the default configuration values.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"out_dir":         "generated",
		"framework":       "react",
		"styling":         "tailwind",
		"typescript":      true,
		"accessibility":   true,
		"responsive":      true,
		"optimize_images": true,
		"export_assets":   false,
		"asset_format":    "png",
		"asset_scale":     1.0,
		"asset_dir":       "assets",
		"server_host":     "127.0.0.1",
		"server_port":     8080,
	}
}

// Load merges defaults, the config file, and environment variables into a
// validated Config. An explicit path must exist; with an empty path the
// working directory is searched for figma-codegen.json/.yaml/.yml and a
// missing file is fine.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		k.Set(key, value)
	}

	explicit := path != ""
	if !explicit {
		path = discoverConfigFile()
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if explicit {
				return nil, fmt.Errorf("config file %q: %w", path, err)
			}
		} else if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, fmt.Errorf("failed to load config file %q: %w", path, err)
		}
	}

	k.Load(env.Provider("FIGMAGEN_", ".", envTransform), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// discoverConfigFile returns the first figma-codegen config file present
// in the working directory, or "".
func discoverConfigFile() string {
	for _, name := range []string{"figma-codegen.json", "figma-codegen.yaml", "figma-codegen.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return json.Parser()
	}
}

// envTransform converts environment variable names to config keys.
// Example: FIGMAGEN_ASSET_FORMAT -> asset_format
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "FIGMAGEN_"))
}

// GenerationOptions maps the configuration onto generation options. The
// combination is validated later by the engine, not here; format-level
// checks already happened in Load.
func (c *Config) GenerationOptions() generator.Options {
	return generator.Options{
		Framework:      generator.Framework(c.Framework),
		Styling:        generator.Styling(c.Styling),
		TypeScript:     c.TypeScript,
		Accessibility:  c.Accessibility,
		Responsive:     c.Responsive,
		OptimizeImages: c.OptimizeImages,
	}
}

// CustomCode reads the configured custom code files, if any, into the
// injection fragments. Unset paths contribute empty fragments.
func (c *Config) CustomCode() (generator.CustomCode, error) {
	var custom generator.CustomCode

	read := func(path string, dst *string) error {
		if path == "" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read custom code file %q: %w", path, err)
		}
		*dst = string(data)
		return nil
	}

	if err := read(c.CustomMarkupFile, &custom.Markup); err != nil {
		return custom, err
	}
	if err := read(c.CustomStyleFile, &custom.Style); err != nil {
		return custom, err
	}
	if err := read(c.CustomAdvancedFile, &custom.AdvancedStyle); err != nil {
		return custom, err
	}

	return custom, nil
}
