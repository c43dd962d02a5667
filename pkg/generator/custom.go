package generator

import "strings"

// CustomCode carries caller-authored fragments that are appended to the
// generated output. Fragments are treated as opaque text: no parsing, no
// validation, appended between marker comments so a later pass (or a
// human) can find and strip them.
type CustomCode struct {
	Markup        string `json:"markup,omitempty"`
	Style         string `json:"style,omitempty"`
	AdvancedStyle string `json:"advancedStyle,omitempty"`
}

// IsZero reports whether no fragment is set.
func (c CustomCode) IsZero() bool {
	return c.Markup == "" && c.Style == "" && c.AdvancedStyle == ""
}

// InjectMarkup appends the custom markup fragment between marker comments.
// React output gets line comments, vue and html get markup comments. An
// empty fragment leaves the markup untouched.
func InjectMarkup(markup string, custom CustomCode, fw Framework) string {
	if custom.Markup == "" {
		return markup
	}
	start, end := "// CUSTOM MARKUP START", "// CUSTOM MARKUP END"
	if fw != FrameworkReact {
		start, end = "<!-- CUSTOM MARKUP START -->", "<!-- CUSTOM MARKUP END -->"
	}
	return appendBlock(markup, start, custom.Markup, end)
}

// InjectStyle appends the custom style fragment and then the advanced
// style fragment, each between its own marker comments. Empty fragments
// are skipped.
func InjectStyle(style string, custom CustomCode) string {
	out := style
	if custom.Style != "" {
		out = appendBlock(out, "/* CUSTOM STYLE START */", custom.Style, "/* CUSTOM STYLE END */")
	}
	if custom.AdvancedStyle != "" {
		out = appendBlock(out, "/* ADVANCED STYLE START */", custom.AdvancedStyle, "/* ADVANCED STYLE END */")
	}
	return out
}

// appendBlock appends a marker-wrapped fragment, separated from existing
// output by one blank line. The fragment stays verbatim except for
// guaranteeing a trailing newline before the end marker.
func appendBlock(out, start, fragment, end string) string {
	if !strings.HasSuffix(fragment, "\n") {
		fragment += "\n"
	}

	var sb strings.Builder
	sb.WriteString(out)
	if out != "" {
		sb.WriteString("\n")
	}
	sb.WriteString(start)
	sb.WriteString("\n")
	sb.WriteString(fragment)
	sb.WriteString(end)
	sb.WriteString("\n")
	return sb.String()
}
