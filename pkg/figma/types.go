package figma

import "encoding/json"

// FileResponse is the payload of the Figma file endpoint: file metadata, the
// full document tree, and the components and styles published in the file.
type FileResponse struct {
	Name          string               `json:"name"`
	LastModified  string               `json:"lastModified"`
	ThumbnailURL  string               `json:"thumbnailUrl"`
	Version       string               `json:"version"`
	Document      Node                 `json:"document"`
	Components    map[string]Component `json:"components"`
	Styles        map[string]Style     `json:"styles"`
	SchemaVersion int                  `json:"schemaVersion"`
}

// NodesResponse is the payload of the Figma nodes endpoint when fetching a
// specific set of nodes. Nodes maps each requested node ID to its subtree.
type NodesResponse struct {
	Name         string              `json:"name"`
	LastModified string              `json:"lastModified"`
	Version      string              `json:"version"`
	Nodes        map[string]NodeData `json:"nodes"`
}

// NodeData wraps one fetched node with the components and styles referenced
// from inside its subtree.
type NodeData struct {
	Document   Node                 `json:"document"`
	Components map[string]Component `json:"components,omitempty"`
	Styles     map[string]Style     `json:"styles,omitempty"`
}

// Component is the metadata of a reusable component declared in a file.
// FileResponse.Components is keyed by the ID of the node that defines the
// component, which is how declared components are resolved to their subtrees.
type Component struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Style is a published style reference. StyleType is FILL, TEXT, EFFECT, or
// GRID.
type Style struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StyleType   string `json:"style_type"`
}

// ImagesResponse is the payload of the Figma image render endpoint. Images
// maps node IDs to short-lived download URLs; an empty URL means the node
// could not be rendered.
type ImagesResponse struct {
	Err    string            `json:"err,omitempty"`
	Images map[string]string `json:"images"`
}

// Node is a single element of the Figma document tree. Nodes can be frames,
// groups, text, shapes, or component definitions, each with fills, strokes,
// effects, layout settings, and children. Children are stored in paint order
// and every child belongs to exactly one parent, so the document is always a
// tree.
type Node struct {
	ID                    string            `json:"id"`
	Name                  string            `json:"name"`
	Type                  string            `json:"type"`
	Children              []Node            `json:"children,omitempty"`
	BackgroundColor       *Color            `json:"backgroundColor,omitempty"`
	Fills                 []Paint           `json:"fills,omitempty"`
	Strokes               []Paint           `json:"strokes,omitempty"`
	StrokeWeight          float64           `json:"strokeWeight,omitempty"`
	CornerRadius          float64           `json:"cornerRadius,omitempty"`
	Effects               []Effect          `json:"effects,omitempty"`
	Characters            string            `json:"characters,omitempty"`
	Style                 *TypeStyle        `json:"style,omitempty"`
	AbsoluteBoundingBox   *Rectangle        `json:"absoluteBoundingBox,omitempty"`
	Constraints           *LayoutConstraint `json:"constraints,omitempty"`
	LayoutMode            string            `json:"layoutMode,omitempty"`
	PrimaryAxisSizingMode string            `json:"primaryAxisSizingMode,omitempty"`
	CounterAxisSizingMode string            `json:"counterAxisSizingMode,omitempty"`
	PaddingLeft           float64           `json:"paddingLeft,omitempty"`
	PaddingRight          float64           `json:"paddingRight,omitempty"`
	PaddingTop            float64           `json:"paddingTop,omitempty"`
	PaddingBottom         float64           `json:"paddingBottom,omitempty"`
	ItemSpacing           float64           `json:"itemSpacing,omitempty"`
}

// HasVisibleImageFill reports whether any visible fill of the node is
// image-typed. Such nodes become media elements in generated markup and are
// the ones worth exporting as assets.
func (n *Node) HasVisibleImageFill() bool {
	for _, fill := range n.Fills {
		if fill.Type == "IMAGE" && fill.Visible {
			return true
		}
	}
	return false
}

// Color is an RGBA color with channel values in the 0 to 1 range.
// Channels are scaled to 0-255 when rendered as CSS.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint is a fill or stroke applied to a node. Type is SOLID, IMAGE,
// GRADIENT_LINEAR, and so on; Color is set for solid paints while ImageRef
// and ScaleMode are set for image paints.
type Paint struct {
	Type      string  `json:"type"`
	Visible   bool    `json:"visible"`
	Opacity   float64 `json:"opacity"`
	Color     *Color  `json:"color,omitempty"`
	ImageRef  string  `json:"imageRef,omitempty"`
	ScaleMode string  `json:"scaleMode,omitempty"`
}

type paintAlias Paint

// UnmarshalJSON applies the Figma API defaults: the endpoint omits
// "visible" and "opacity" when they hold their default values true and 1,
// so a plain decode would report every default-visible fill as hidden.
func (p *Paint) UnmarshalJSON(data []byte) error {
	alias := paintAlias{Visible: true, Opacity: 1}
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*p = Paint(alias)
	return nil
}

// Effect is a visual effect applied to a node such as a drop shadow, inner
// shadow, or blur. It includes positioning (offset), blur radius, spread,
// color, and blend mode settings.
type Effect struct {
	Type      string  `json:"type"`
	Visible   bool    `json:"visible"`
	Radius    float64 `json:"radius,omitempty"`
	Color     *Color  `json:"color,omitempty"`
	Offset    *Vector `json:"offset,omitempty"`
	Spread    float64 `json:"spread,omitempty"`
	BlendMode string  `json:"blendMode,omitempty"`
}

type effectAlias Effect

// UnmarshalJSON applies the Figma API default of "visible": true when the
// field is omitted.
func (e *Effect) UnmarshalJSON(data []byte) error {
	alias := effectAlias{Visible: true}
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*e = Effect(alias)
	return nil
}

// Vector is a 2D coordinate or offset, used for positioning effects like
// shadows.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TypeStyle carries the text styling of a TEXT node: font family, weight,
// size, line height, letter spacing, and alignment.
type TypeStyle struct {
	FontFamily          string  `json:"fontFamily"`
	FontPostScriptName  string  `json:"fontPostScriptName"`
	FontWeight          float64 `json:"fontWeight"`
	FontSize            float64 `json:"fontSize"`
	LineHeightPx        float64 `json:"lineHeightPx"`
	LineHeightPercent   float64 `json:"lineHeightPercent"`
	LetterSpacing       float64 `json:"letterSpacing"`
	TextAlignHorizontal string  `json:"textAlignHorizontal"`
	TextAlignVertical   string  `json:"textAlignVertical"`
}

// Rectangle is a bounding box with position (X, Y) and dimensions (Width,
// Height), in absolute canvas coordinates.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// LayoutConstraint defines how a node's position and size behave when its
// parent is resized. The Figma defaults are LEFT horizontally and TOP
// vertically; anything else means the designer chose an adaptive placement.
type LayoutConstraint struct {
	Vertical   string `json:"vertical"`
	Horizontal string `json:"horizontal"`
}
