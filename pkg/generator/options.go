package generator

import "fmt"

// Framework selects the markup dialect of generated components.
type Framework string

// Supported frameworks.
const (
	FrameworkReact Framework = "react"
	FrameworkVue   Framework = "vue"
	FrameworkHTML  Framework = "html"
)

// Styling selects the stylesheet dialect of generated components.
type Styling string

// Supported styling dialects. Tailwind emits utility classes inline in the
// markup, css-modules and css emit a scoped rule block, and
// styled-components emits a template-literal declaration.
const (
	StylingTailwind         Styling = "tailwind"
	StylingCSSModules       Styling = "css-modules"
	StylingStyledComponents Styling = "styled-components"
	StylingCSS              Styling = "css"
)

// Options configures one generation call. The zero value is not usable;
// start from DefaultOptions and adjust. Options are immutable once handed
// to an Engine: the same value is threaded through every step so no global
// state exists.
type Options struct {
	Framework      Framework `json:"framework"`
	Styling        Styling   `json:"styling"`
	TypeScript     bool      `json:"typescript"`
	Accessibility  bool      `json:"accessibility"`
	Responsive     bool      `json:"responsive"`
	OptimizeImages bool      `json:"optimizeImages"`
}

// DefaultOptions returns the generation defaults: a typed React component
// styled with Tailwind utility classes, with both analysis reports enabled.
func DefaultOptions() Options {
	return Options{
		Framework:      FrameworkReact,
		Styling:        StylingTailwind,
		TypeScript:     true,
		Accessibility:  true,
		Responsive:     true,
		OptimizeImages: true,
	}
}

// Validate rejects unsupported option combinations before any artifact is
// produced. Partial output under a malformed configuration would be
// misleading, so the whole call fails up front instead.
func (o Options) Validate() error {
	switch o.Framework {
	case FrameworkReact, FrameworkVue, FrameworkHTML:
	default:
		return fmt.Errorf("unsupported framework %q (must be react, vue, or html)", o.Framework)
	}

	switch o.Styling {
	case StylingTailwind, StylingCSSModules, StylingStyledComponents, StylingCSS:
	default:
		return fmt.Errorf("unsupported styling %q (must be tailwind, css-modules, styled-components, or css)", o.Styling)
	}

	if o.Framework != FrameworkReact &&
		(o.Styling == StylingCSSModules || o.Styling == StylingStyledComponents) {
		return fmt.Errorf("styling %q requires the react framework, got %q", o.Styling, o.Framework)
	}

	if o.Framework == FrameworkHTML && o.TypeScript {
		return fmt.Errorf("typescript output is not available for the html framework")
	}

	return nil
}
