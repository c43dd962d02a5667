package generator

import (
	"fmt"
	"math"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// spacingScaleMax is the largest named Tailwind spacing step. Divided
// values past it fall back to an arbitrary-value bracket class.
const spacingScaleMax = 96

// ClassTokens maps a style record to Tailwind utility classes. Spacing and
// padding are divided by 4 and floored onto the named scale, corner radii
// are bucketed onto the named rounded-* steps, and the background color is
// bucketed onto a coarse token palette. Token order is fixed.
func ClassTokens(rec StyleRecord) []string {
	var tokens []string

	if rec.Direction != "" {
		tokens = append(tokens, "flex")
		if rec.Direction == "row" {
			tokens = append(tokens, "flex-row")
		} else {
			tokens = append(tokens, "flex-col")
		}
	}
	if rec.Gap != nil {
		tokens = append(tokens, spacingClass("gap", *rec.Gap))
	}
	if rec.PaddingTop != nil {
		tokens = append(tokens, spacingClass("pt", *rec.PaddingTop))
	}
	if rec.PaddingRight != nil {
		tokens = append(tokens, spacingClass("pr", *rec.PaddingRight))
	}
	if rec.PaddingBottom != nil {
		tokens = append(tokens, spacingClass("pb", *rec.PaddingBottom))
	}
	if rec.PaddingLeft != nil {
		tokens = append(tokens, spacingClass("pl", *rec.PaddingLeft))
	}
	if rec.Width != nil {
		tokens = append(tokens, fmt.Sprintf("w-[%gpx]", *rec.Width))
	}
	if rec.Height != nil {
		tokens = append(tokens, fmt.Sprintf("h-[%gpx]", *rec.Height))
	}
	if rec.Background != nil {
		tokens = append(tokens, "bg-"+colorToken(rec.Background))
	}
	if rec.CornerRadius != nil {
		tokens = append(tokens, radiusClass(*rec.CornerRadius))
	}

	return tokens
}

// spacingClass converts a pixel value to a Tailwind spacing class. The
// value is divided by 4 and floored; once the divided value exceeds the
// named scale an arbitrary-value class carrying the raw pixels is used.
func spacingClass(prefix string, pxValue float64) string {
	step := math.Floor(pxValue / 4)
	if step > spacingScaleMax {
		return fmt.Sprintf("%s-[%gpx]", prefix, pxValue)
	}
	return fmt.Sprintf("%s-%g", prefix, step)
}

// radiusClass buckets a corner radius onto the named Tailwind steps at the
// 2/4/6/8/12/16 px thresholds, else falls back to an arbitrary value.
func radiusClass(r float64) string {
	switch {
	case r <= 2:
		return "rounded-sm"
	case r <= 4:
		return "rounded"
	case r <= 6:
		return "rounded-md"
	case r <= 8:
		return "rounded-lg"
	case r <= 12:
		return "rounded-xl"
	case r <= 16:
		return "rounded-2xl"
	default:
		return fmt.Sprintf("rounded-[%gpx]", r)
	}
}

// colorToken buckets a color onto the coarse token palette used by the
// utility dialect: near-white and near-black first, then a dominant
// primary channel, else a neutral gray. The boundaries are intentionally
// coarse; a perceptual color match is out of scope.
func colorToken(c *figma.Color) string {
	switch {
	case c.R >= 0.9 && c.G >= 0.9 && c.B >= 0.9:
		return "white"
	case c.R <= 0.1 && c.G <= 0.1 && c.B <= 0.1:
		return "black"
	case c.R > 0.8 && c.G < 0.3 && c.B < 0.3:
		return "red-500"
	case c.G > 0.8 && c.R < 0.3 && c.B < 0.3:
		return "green-500"
	case c.B > 0.8 && c.R < 0.3 && c.G < 0.3:
		return "blue-500"
	default:
		return "gray-500"
	}
}

// EmitStyle renders a style record in the requested dialect, keyed by the
// scope name (the sanitized component name). The utility dialect returns
// an empty string because its classes are inlined in the markup; tag is
// the root element name and is only used by styled-components.
func EmitStyle(rec StyleRecord, styling Styling, scope, tag string) string {
	switch styling {
	case StylingCSSModules, StylingCSS:
		return ruleBlock(rec, scope)
	case StylingStyledComponents:
		return styledDeclaration(rec, scope, tag)
	default:
		return ""
	}
}

// ruleBlock emits one ".Scope { ... }" block with kebab-cased properties.
func ruleBlock(rec StyleRecord, scope string) string {
	var sb strings.Builder
	sb.WriteString("." + scope + " {\n")
	for _, p := range rec.Properties() {
		sb.WriteString(fmt.Sprintf("  %s: %s;\n", camelToKebab(p.Name), p.Value))
	}
	sb.WriteString("}\n")
	return sb.String()
}

// styledDeclaration wraps the kebab-cased rule body in a styled-components
// template literal bound to an exported Styled<Scope> identifier.
func styledDeclaration(rec StyleRecord, scope, tag string) string {
	var sb strings.Builder
	sb.WriteString("import styled from 'styled-components';\n\n")
	sb.WriteString(fmt.Sprintf("export const Styled%s = styled.%s`\n", scope, tag))
	for _, p := range rec.Properties() {
		sb.WriteString(fmt.Sprintf("  %s: %s;\n", camelToKebab(p.Name), p.Value))
	}
	sb.WriteString("`;\n")
	return sb.String()
}

// camelToKebab converts a camelCase property name to kebab-case: a hyphen
// is inserted before every uppercase letter that follows a lowercase
// letter or digit, then the whole string is lowered.
func camelToKebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'A' && ch <= 'Z' {
			if i > 0 {
				prev := s[i-1]
				if (prev >= 'a' && prev <= 'z') || (prev >= '0' && prev <= '9') {
					b.WriteByte('-')
				}
			}
			ch += 'a' - 'A'
		}
		b.WriteByte(ch)
	}
	return b.String()
}
