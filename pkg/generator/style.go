package generator

import (
	"fmt"
	"math"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// StyleRecord is the normalized visual description of a single node. Every
// field is optional: an attribute the node does not carry stays nil (or
// empty for Direction) and is omitted from emitted styles, never defaulted
// to zero. All styling dialects derive from this one record.
type StyleRecord struct {
	Width         *float64
	Height        *float64
	Background    *figma.Color // first visible SOLID fill, channels in 0-1
	CornerRadius  *float64
	Direction     string // "row", "column", or "" when no auto-layout
	Gap           *float64
	PaddingTop    *float64
	PaddingRight  *float64
	PaddingBottom *float64
	PaddingLeft   *float64
}

// Property is one CSS declaration of a style record, with a camelCase name.
// Dialect emitters kebab-case the name as needed.
type Property struct {
	Name  string
	Value string
}

// ExtractStyle reads the visual attributes of a node into a normalized
// style record. Dimensions come from the absolute bounding box, the
// background from the first visible solid fill, and the flex direction and
// gap from the auto-layout settings. Absent attributes are simply omitted
// so that no spurious style rules are emitted downstream.
func ExtractStyle(node *figma.Node) StyleRecord {
	var rec StyleRecord

	if box := node.AbsoluteBoundingBox; box != nil {
		w, h := box.Width, box.Height
		rec.Width = &w
		rec.Height = &h
	}

	for _, fill := range node.Fills {
		if fill.Type == "SOLID" && fill.Visible && fill.Color != nil {
			c := *fill.Color
			rec.Background = &c
			break
		}
	}

	if node.CornerRadius > 0 {
		r := node.CornerRadius
		rec.CornerRadius = &r
	}

	switch node.LayoutMode {
	case "HORIZONTAL":
		rec.Direction = "row"
	case "VERTICAL":
		rec.Direction = "column"
	}
	if rec.Direction != "" && node.ItemSpacing > 0 {
		g := node.ItemSpacing
		rec.Gap = &g
	}

	if node.PaddingTop > 0 {
		v := node.PaddingTop
		rec.PaddingTop = &v
	}
	if node.PaddingRight > 0 {
		v := node.PaddingRight
		rec.PaddingRight = &v
	}
	if node.PaddingBottom > 0 {
		v := node.PaddingBottom
		rec.PaddingBottom = &v
	}
	if node.PaddingLeft > 0 {
		v := node.PaddingLeft
		rec.PaddingLeft = &v
	}

	return rec
}

// Properties returns the record as an ordered list of CSS declarations.
// The order is fixed so that generated output is reproducible.
func (r StyleRecord) Properties() []Property {
	var props []Property

	if r.Width != nil {
		props = append(props, Property{"width", px(*r.Width)})
	}
	if r.Height != nil {
		props = append(props, Property{"height", px(*r.Height)})
	}
	if r.Background != nil {
		props = append(props, Property{"backgroundColor", cssColor(r.Background)})
	}
	if r.CornerRadius != nil {
		props = append(props, Property{"borderRadius", px(*r.CornerRadius)})
	}
	if r.Direction != "" {
		props = append(props, Property{"display", "flex"})
		props = append(props, Property{"flexDirection", r.Direction})
	}
	if r.Gap != nil {
		props = append(props, Property{"gap", px(*r.Gap)})
	}
	if r.PaddingTop != nil {
		props = append(props, Property{"paddingTop", px(*r.PaddingTop)})
	}
	if r.PaddingRight != nil {
		props = append(props, Property{"paddingRight", px(*r.PaddingRight)})
	}
	if r.PaddingBottom != nil {
		props = append(props, Property{"paddingBottom", px(*r.PaddingBottom)})
	}
	if r.PaddingLeft != nil {
		props = append(props, Property{"paddingLeft", px(*r.PaddingLeft)})
	}

	return props
}

// IsEmpty reports whether the record carries no styling at all.
func (r StyleRecord) IsEmpty() bool {
	return r.Width == nil && r.Height == nil && r.Background == nil &&
		r.CornerRadius == nil && r.Direction == "" && r.Gap == nil &&
		r.PaddingTop == nil && r.PaddingRight == nil &&
		r.PaddingBottom == nil && r.PaddingLeft == nil
}

// px formats a pixel measurement, dropping a trailing ".0".
func px(v float64) string {
	return fmt.Sprintf("%gpx", v)
}

// cssColor converts a Figma RGBA color (0-1 float channels) to a CSS
// rgba() value with channels scaled to 0-255. Alpha is preserved as-is.
func cssColor(c *figma.Color) string {
	r := int(math.Round(c.R * 255))
	g := int(math.Round(c.G * 255))
	b := int(math.Round(c.B * 255))
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, c.A)
}
