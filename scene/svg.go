package scene

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/proxima/model"
)

// OpenSVG reads a scene from an SVG export file.
func OpenSVG(filename string) (*model.Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return ReadSVG(f)
}

// ReadSVG parses a design-tool SVG export into a scene. Rects, images,
// circles, ellipses and text nodes become elements; each <g> with an id
// becomes a container whose bounds are the union of its contents. Transform
// attributes are not interpreted, so exports must use absolute coordinates.
func ReadSVG(r io.Reader) (*model.Scene, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing SVG: %w", err)
	}

	svg := findNode(doc, "svg")
	if svg == nil {
		return nil, fmt.Errorf("no svg element found")
	}

	width, height := svgCanvasSize(svg)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("svg has no usable width/height or viewBox")
	}

	p := &svgParser{}
	for c := svg.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c, "")
	}

	return &model.Scene{
		Root:     model.NewBBox(0, 0, width, height),
		Elements: p.elements,
	}, nil
}

// svgCanvasSize resolves the canvas size from width/height attributes,
// falling back to the viewBox.
func svgCanvasSize(svg *html.Node) (float64, float64) {
	width := parseLength(attrValue(svg, "width"))
	height := parseLength(attrValue(svg, "height"))
	if width > 0 && height > 0 {
		return width, height
	}

	fields := strings.Fields(strings.ReplaceAll(attrValue(svg, "viewbox"), ",", " "))
	if len(fields) == 4 {
		return parseLength(fields[2]), parseLength(fields[3])
	}
	return width, height
}

type svgParser struct {
	elements []model.Element
	counter  int
}

func (p *svgParser) walk(n *html.Node, parent string) {
	if n.Type != html.ElementNode {
		return
	}

	switch strings.ToLower(n.Data) {
	case "g":
		p.walkGroup(n, parent)
	case "rect":
		p.add(n, parent, model.ElementTypeShape, rectBounds(n))
	case "image":
		p.add(n, parent, model.ElementTypeImage, rectBounds(n))
	case "circle":
		cx, cy := parseLength(attrValue(n, "cx")), parseLength(attrValue(n, "cy"))
		radius := parseLength(attrValue(n, "r"))
		p.add(n, parent, model.ElementTypeShape,
			model.NewBBox(cx-radius, cy-radius, 2*radius, 2*radius))
	case "ellipse":
		cx, cy := parseLength(attrValue(n, "cx")), parseLength(attrValue(n, "cy"))
		rx, ry := parseLength(attrValue(n, "rx")), parseLength(attrValue(n, "ry"))
		p.add(n, parent, model.ElementTypeShape, model.NewBBox(cx-rx, cy-ry, 2*rx, 2*ry))
	case "text":
		p.addText(n, parent)
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.walk(c, parent)
		}
	}
}

// walkGroup processes the group's contents first, then records the group
// itself as a container spanning them.
func (p *svgParser) walkGroup(n *html.Node, parent string) {
	id := p.elementID(n, "group")

	start := len(p.elements)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c, id)
	}
	if len(p.elements) == start {
		return
	}

	boxes := make([]model.BBox, 0, len(p.elements)-start)
	for _, el := range p.elements[start:] {
		boxes = append(boxes, el.Bounds)
	}
	bounds, ok := model.BoundingBoxOf(boxes)
	if !ok {
		return
	}

	p.elements = append(p.elements, model.Element{
		ID:      id,
		Name:    attrValue(n, "data-name"),
		Type:    model.ElementTypeContainer,
		Bounds:  bounds,
		Parent:  parent,
		Visible: nodeVisible(n),
	})
}

func (p *svgParser) add(n *html.Node, parent string, t model.ElementType, bounds model.BBox) {
	p.elements = append(p.elements, model.Element{
		ID:      p.elementID(n, n.Data),
		Name:    attrValue(n, "data-name"),
		Type:    t,
		Bounds:  bounds,
		Parent:  parent,
		Visible: nodeVisible(n),
	})
}

// addText records a text node. SVG text carries a baseline point rather than
// a box, so the box is estimated from the font size and glyph count.
func (p *svgParser) addText(n *html.Node, parent string) {
	text := strings.TrimSpace(textContent(n))
	fontSize := parseLength(attrValue(n, "font-size"))
	if fontSize <= 0 {
		fontSize = 16
	}

	x := parseLength(attrValue(n, "x"))
	y := parseLength(attrValue(n, "y"))
	width := 0.6 * fontSize * float64(len([]rune(text)))
	height := 1.2 * fontSize

	p.elements = append(p.elements, model.Element{
		ID:       p.elementID(n, "text"),
		Name:     attrValue(n, "data-name"),
		Type:     model.ElementTypeText,
		Bounds:   model.NewBBox(x, y-fontSize, width, height),
		Parent:   parent,
		Visible:  nodeVisible(n),
		Text:     text,
		FontSize: fontSize,
	})
}

func (p *svgParser) elementID(n *html.Node, kind string) string {
	if id := attrValue(n, "id"); id != "" {
		return id
	}
	p.counter++
	return fmt.Sprintf("svg-%s-%d", kind, p.counter)
}

func rectBounds(n *html.Node) model.BBox {
	return model.NewBBox(
		parseLength(attrValue(n, "x")),
		parseLength(attrValue(n, "y")),
		parseLength(attrValue(n, "width")),
		parseLength(attrValue(n, "height")),
	)
}

func nodeVisible(n *html.Node) bool {
	if attrValue(n, "visibility") == "hidden" {
		return false
	}
	if attrValue(n, "display") == "none" {
		return false
	}
	return !strings.Contains(strings.ReplaceAll(attrValue(n, "style"), " ", ""), "display:none")
}

// findNode locates the first element with the given tag name.
func findNode(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

// parseLength parses an SVG length, tolerating a px suffix. Anything
// unparseable reads as zero.
func parseLength(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
