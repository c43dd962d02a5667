package generator

import (
	"fmt"
	"math"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// NodeKind is the closed set of node types the synthesizer distinguishes.
// Every switch over kinds carries an explicit KindUnknown arm so that
// unrecognized wire types degrade to a generic container on purpose, never
// by accident.
type NodeKind int

const (
	KindUnknown NodeKind = iota
	KindDocument
	KindCanvas
	KindFrame
	KindGroup
	KindVector
	KindText
	KindRectangle
	KindEllipse
	KindComponent
	KindInstance
)

// KindOf maps a Figma wire type string onto the closed node kind set.
func KindOf(wireType string) NodeKind {
	switch wireType {
	case "DOCUMENT":
		return KindDocument
	case "CANVAS":
		return KindCanvas
	case "FRAME":
		return KindFrame
	case "GROUP":
		return KindGroup
	case "VECTOR":
		return KindVector
	case "TEXT":
		return KindText
	case "RECTANGLE":
		return KindRectangle
	case "ELLIPSE":
		return KindEllipse
	case "COMPONENT":
		return KindComponent
	case "INSTANCE":
		return KindInstance
	default:
		return KindUnknown
	}
}

// isMedia reports whether the node renders as a media-embedding element:
// a rectangle or ellipse whose visible fill is image-typed.
func isMedia(n *figma.Node) bool {
	switch KindOf(n.Type) {
	case KindRectangle, KindEllipse:
		return n.HasVisibleImageFill()
	default:
		return false
	}
}

// htmlTagFor selects the output element for a node. Text nodes become an
// inline container, or a graded heading tag when the node reads like one;
// frames, groups, components and instances become generic containers, and
// so does every unknown type.
func htmlTagFor(n *figma.Node) string {
	switch KindOf(n.Type) {
	case KindText:
		return textTag(n)
	case KindRectangle, KindEllipse:
		if n.HasVisibleImageFill() {
			return "img"
		}
		return "div"
	case KindDocument, KindCanvas, KindFrame, KindGroup, KindVector, KindComponent, KindInstance:
		return "div"
	case KindUnknown:
		return "div"
	default:
		return "div"
	}
}

// textTag grades a text node: headings get h1/h2/h3 by font size, body
// text gets a span.
func textTag(n *figma.Node) string {
	if !isHeading(n) {
		return "span"
	}
	switch size := fontSize(n); {
	case size >= 32:
		return "h1"
	case size >= 24:
		return "h2"
	default:
		return "h3"
	}
}

// isHeading applies the heading heuristic: the layer name mentions
// title/heading/header, or the font size exceeds 20px.
func isHeading(n *figma.Node) bool {
	name := strings.ToLower(n.Name)
	if strings.Contains(name, "title") || strings.Contains(name, "heading") || strings.Contains(name, "header") {
		return true
	}
	return fontSize(n) > 20
}

func fontSize(n *figma.Node) float64 {
	if n.Style != nil {
		return n.Style.FontSize
	}
	return 0
}

// propSpec is one component prop inferred from the target node.
type propSpec struct {
	name     string
	tsType   string
	vueType  string
	required bool
}

// inferProps lists the props a target node implies: text nodes imply an
// optional children prop, media nodes imply required source and sizing
// props, and every node implies an optional className.
func inferProps(n *figma.Node, fw Framework) []propSpec {
	var props []propSpec
	if KindOf(n.Type) == KindText {
		childType := "React.ReactNode"
		if fw == FrameworkVue {
			childType = "string"
		}
		props = append(props, propSpec{name: "children", tsType: childType, vueType: "String"})
	}
	if isMedia(n) {
		props = append(props,
			propSpec{name: "src", tsType: "string", vueType: "String", required: true},
			propSpec{name: "alt", tsType: "string", vueType: "String", required: true},
			propSpec{name: "width", tsType: "number", vueType: "Number", required: true},
			propSpec{name: "height", tsType: "number", vueType: "Number", required: true},
		)
	}
	props = append(props, propSpec{name: "className", tsType: "string", vueType: "String"})
	return props
}

// TypeDescription renders the props implied by the target node as an
// exported TypeScript interface named <Scope>Props.
func TypeDescription(n *figma.Node, opts Options, scope string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("export interface %sProps {\n", scope))
	for _, p := range inferProps(n, opts.Framework) {
		marker := "?"
		if p.required {
			marker = ""
		}
		sb.WriteString(fmt.Sprintf("  %s%s: %s;\n", p.name, marker, p.tsType))
	}
	sb.WriteString("}\n")
	return sb.String()
}

// SynthesizeMarkup renders a complete, self-contained component for the
// target node in the configured framework: imports first, then the props
// interface when TypeScript is on, then the component with the recursively
// built element tree, then a default export. Children are emitted in their
// original order; text nodes short-circuit and wrap their literal content.
func SynthesizeMarkup(n *figma.Node, opts Options, scope string) string {
	g := &markupGen{opts: opts, scope: scope, root: n}
	switch opts.Framework {
	case FrameworkVue:
		return g.vueComponent()
	case FrameworkHTML:
		return g.htmlFragment()
	default:
		return g.reactComponent()
	}
}

type markupGen struct {
	opts      Options
	scope     string
	root      *figma.Node
	usesImage bool // an optimized Image element was emitted
}

func (g *markupGen) reactComponent() string {
	var body strings.Builder
	g.writeJSX(&body, g.root, 2, true)

	var imports []string
	if g.usesImage {
		imports = append(imports, "import Image from 'next/image';")
	}
	switch g.opts.Styling {
	case StylingCSSModules:
		imports = append(imports, fmt.Sprintf("import styles from './%s.module.css';", g.scope))
	case StylingStyledComponents:
		imports = append(imports, fmt.Sprintf("import { Styled%s } from './%s.styles';", g.scope, g.scope))
	}

	var sb strings.Builder
	for _, imp := range imports {
		sb.WriteString(imp)
		sb.WriteString("\n")
	}
	if len(imports) > 0 {
		sb.WriteString("\n")
	}

	if g.opts.TypeScript {
		sb.WriteString(TypeDescription(g.root, g.opts, g.scope))
		sb.WriteString("\n")
	}

	params := propNames(inferProps(g.root, g.opts.Framework))
	if g.opts.TypeScript {
		sb.WriteString(fmt.Sprintf("const %s = ({ %s }: %sProps) => {\n", g.scope, params, g.scope))
	} else {
		sb.WriteString(fmt.Sprintf("const %s = ({ %s }) => {\n", g.scope, params))
	}
	sb.WriteString("  return (\n")
	sb.WriteString(body.String())
	sb.WriteString("  );\n")
	sb.WriteString("};\n\n")
	sb.WriteString(fmt.Sprintf("export default %s;\n", g.scope))
	return sb.String()
}

func (g *markupGen) vueComponent() string {
	var body strings.Builder
	g.writeHTML(&body, g.root, 1, true)

	var sb strings.Builder
	sb.WriteString("<template>\n")
	sb.WriteString(body.String())
	sb.WriteString("</template>\n\n")
	if g.opts.TypeScript {
		sb.WriteString("<script lang=\"ts\">\n")
	} else {
		sb.WriteString("<script>\n")
	}
	sb.WriteString("export default {\n")
	sb.WriteString(fmt.Sprintf("  name: '%s',\n", g.scope))
	sb.WriteString("  props: {\n")
	for _, p := range inferProps(g.root, FrameworkVue) {
		sb.WriteString(fmt.Sprintf("    %s: { type: %s, required: %t },\n", p.name, p.vueType, p.required))
	}
	sb.WriteString("  },\n")
	sb.WriteString("};\n")
	sb.WriteString("</script>\n")
	return sb.String()
}

func (g *markupGen) htmlFragment() string {
	var sb strings.Builder
	g.writeHTML(&sb, g.root, 0, true)
	return sb.String()
}

// writeJSX emits one node and its subtree as JSX, one element per line,
// children indented one step deeper.
func (g *markupGen) writeJSX(sb *strings.Builder, n *figma.Node, depth int, isRoot bool) {
	indent := strings.Repeat("  ", depth)

	if isMedia(n) {
		g.writeJSXMedia(sb, n, indent, isRoot)
		return
	}

	tag := htmlTagFor(n)
	if isRoot && g.opts.Styling == StylingStyledComponents {
		tag = "Styled" + g.scope
	}
	attr := g.jsxClassAttr(n, isRoot)

	if KindOf(n.Type) == KindText {
		sb.WriteString(fmt.Sprintf("%s<%s%s>%s</%s>\n", indent, tag, attr, n.Characters, tag))
		return
	}

	if len(n.Children) == 0 {
		sb.WriteString(fmt.Sprintf("%s<%s%s />\n", indent, tag, attr))
		return
	}

	sb.WriteString(fmt.Sprintf("%s<%s%s>\n", indent, tag, attr))
	for i := range n.Children {
		g.writeJSX(sb, &n.Children[i], depth+1, false)
	}
	sb.WriteString(fmt.Sprintf("%s</%s>\n", indent, tag))
}

// writeJSXMedia emits a media element. The target node binds its source
// and sizing to the inferred props; nested media fall back to a
// deterministic asset path and the layer name as alternative text.
func (g *markupGen) writeJSXMedia(sb *strings.Builder, n *figma.Node, indent string, isRoot bool) {
	tag := "img"
	if g.opts.OptimizeImages {
		tag = "Image"
	}
	if isRoot && g.opts.Styling == StylingStyledComponents {
		tag = "Styled" + g.scope
	} else if tag == "Image" {
		g.usesImage = true
	}

	attr := g.jsxClassAttr(n, isRoot)
	if isRoot {
		sb.WriteString(fmt.Sprintf("%s<%s%s src={src} alt={alt} width={width} height={height} />\n", indent, tag, attr))
		return
	}

	size := ""
	if w, h, ok := boxSize(n); ok {
		size = fmt.Sprintf(" width={%d} height={%d}", w, h)
	}
	sb.WriteString(fmt.Sprintf("%s<%s%s src=%q alt=%q%s />\n", indent, tag, attr, mediaSrc(n), n.Name, size))
}

// writeHTML emits one node and its subtree as plain markup, shared by the
// vue template and the static html fragment.
func (g *markupGen) writeHTML(sb *strings.Builder, n *figma.Node, depth int, isRoot bool) {
	indent := strings.Repeat("  ", depth)

	if isMedia(n) {
		g.writeHTMLMedia(sb, n, indent, isRoot)
		return
	}

	tag := htmlTagFor(n)
	attr := g.htmlClassAttr(n, isRoot)

	if KindOf(n.Type) == KindText {
		sb.WriteString(fmt.Sprintf("%s<%s%s>%s</%s>\n", indent, tag, attr, n.Characters, tag))
		return
	}

	if len(n.Children) == 0 {
		sb.WriteString(fmt.Sprintf("%s<%s%s></%s>\n", indent, tag, attr, tag))
		return
	}

	sb.WriteString(fmt.Sprintf("%s<%s%s>\n", indent, tag, attr))
	for i := range n.Children {
		g.writeHTML(sb, &n.Children[i], depth+1, false)
	}
	sb.WriteString(fmt.Sprintf("%s</%s>\n", indent, tag))
}

func (g *markupGen) writeHTMLMedia(sb *strings.Builder, n *figma.Node, indent string, isRoot bool) {
	attr := g.htmlClassAttr(n, isRoot)

	var media string
	if isRoot && g.opts.Framework == FrameworkVue {
		media = ` :src="src" :alt="alt" :width="width" :height="height"`
	} else {
		media = fmt.Sprintf(" src=%q alt=%q", mediaSrc(n), n.Name)
		if w, h, ok := boxSize(n); ok {
			media += fmt.Sprintf(` width="%d" height="%d"`, w, h)
		}
	}

	closer := ">"
	if g.opts.Framework == FrameworkVue {
		closer = " />"
	}
	sb.WriteString(indent + "<img" + attr + media + closer + "\n")
}

// jsxClassAttr renders the class attribute for one element. The utility
// dialect inlines its tokens on every node; the scoped dialects reference
// the scope name on the root element only.
func (g *markupGen) jsxClassAttr(n *figma.Node, isRoot bool) string {
	switch g.opts.Styling {
	case StylingTailwind:
		tokens := ClassTokens(ExtractStyle(n))
		if len(tokens) == 0 {
			return ""
		}
		return fmt.Sprintf(" className=%q", strings.Join(tokens, " "))
	case StylingCSSModules:
		if isRoot {
			return fmt.Sprintf(" className={styles.%s}", g.scope)
		}
	case StylingCSS:
		if isRoot {
			return fmt.Sprintf(" className=%q", g.scope)
		}
	}
	return ""
}

func (g *markupGen) htmlClassAttr(n *figma.Node, isRoot bool) string {
	switch g.opts.Styling {
	case StylingTailwind:
		tokens := ClassTokens(ExtractStyle(n))
		if len(tokens) == 0 {
			return ""
		}
		return fmt.Sprintf(" class=%q", strings.Join(tokens, " "))
	case StylingCSS:
		if isRoot {
			return fmt.Sprintf(" class=%q", g.scope)
		}
	}
	return ""
}

func propNames(props []propSpec) string {
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.name
	}
	return strings.Join(names, ", ")
}

func boxSize(n *figma.Node) (int, int, bool) {
	box := n.AbsoluteBoundingBox
	if box == nil {
		return 0, 0, false
	}
	return int(math.Round(box.Width)), int(math.Round(box.Height)), true
}

// mediaSrc is the deterministic asset path a nested media element points
// at. The name matches what the asset exporter writes under its default
// configuration, png at scale 1; exports at another format or scale
// produce files the markup does not reference.
func mediaSrc(n *figma.Node) string {
	return "/assets/" + mediaFileName(n.Name, n.ID)
}

func mediaFileName(name, id string) string {
	base := toKebab(name)
	if base == "" {
		base = toKebab(id)
	}
	if base == "" {
		base = "asset"
	}
	return base + ".png"
}

// toKebab converts a layer name to kebab-case for asset file names.
func toKebab(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}

	return result.String()
}
