// Package render draws analysis results over a scene-sized canvas for
// debugging. The overlay shows element outlines, cluster boxes with their
// stacking direction, anchor spokes, flow vectors and alignment lines, and
// writes out a PNG.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/proxima/model"
	"github.com/tsawler/proxima/proximity"
	"github.com/tsawler/proxima/relations"
)

// Options configures overlay rendering.
type Options struct {
	Background     color.Color
	ElementColor   color.Color
	ClusterColor   color.Color
	AnchorColor    color.Color
	FlowColor      color.Color
	AlignmentColor color.Color
	DrawLabels     bool
}

// DefaultOptions returns the default overlay palette.
func DefaultOptions() Options {
	return Options{
		Background:     color.White,
		ElementColor:   color.RGBA{R: 180, G: 180, B: 180, A: 255},
		ClusterColor:   color.RGBA{R: 30, G: 110, B: 220, A: 255},
		AnchorColor:    color.RGBA{R: 220, G: 60, B: 60, A: 255},
		FlowColor:      color.RGBA{R: 40, G: 160, B: 80, A: 255},
		AlignmentColor: color.RGBA{R: 200, G: 140, B: 20, A: 255},
		DrawLabels:     true,
	}
}

// Overlay accumulates drawing over one scene.
type Overlay struct {
	img   *image.RGBA
	scene *model.Scene
	opts  Options
}

// NewOverlay creates an overlay canvas matching the scene's root size, with
// every scene element outlined.
func NewOverlay(scene *model.Scene, opts Options) (*Overlay, error) {
	if scene == nil || !scene.Root.IsValid() {
		return nil, fmt.Errorf("scene has no drawable root")
	}

	width := int(math.Ceil(scene.Root.Width))
	height := int(math.Ceil(scene.Root.Height))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	o := &Overlay{img: img, scene: scene, opts: opts}
	for _, el := range scene.Elements {
		o.strokeRect(el.Bounds, opts.ElementColor)
	}
	return o, nil
}

// DrawClusters outlines each cluster's bounding box and draws an arrow for
// its stacking direction.
func (o *Overlay) DrawClusters(clusters []proximity.Cluster) {
	for i, cluster := range clusters {
		o.strokeRect(cluster.Bounds, o.opts.ClusterColor)

		center := cluster.Bounds.Center()
		if cluster.Direction == model.DirectionHorizontal {
			o.arrow(center.X-20, center.Y, center.X+20, center.Y, o.opts.ClusterColor)
		} else {
			o.arrow(center.X, center.Y-20, center.X, center.Y+20, o.opts.ClusterColor)
		}

		if o.opts.DrawLabels {
			label := fmt.Sprintf("c%d %.2f", i, cluster.Confidence)
			o.text(cluster.Bounds.Left()+2, cluster.Bounds.Top()-3, label, o.opts.ClusterColor)
		}
	}
}

// DrawRelationships draws each relationship in its family's color: anchor
// spokes, flow vectors, and alignment lines.
func (o *Overlay) DrawRelationships(found []relations.Relationship) {
	for _, rel := range found {
		switch r := rel.(type) {
		case relations.AnchorPattern:
			o.drawAnchor(r)
		case relations.FlowPattern:
			o.drawFlow(r)
		case relations.AlignmentGrid:
			o.drawAlignment(r)
		}
	}
}

func (o *Overlay) drawAnchor(p relations.AnchorPattern) {
	anchor := o.scene.ElementByID(p.AnchorID)
	if anchor == nil {
		return
	}

	o.strokeRect(anchor.Bounds, o.opts.AnchorColor)
	from := anchor.Bounds.Center()
	for _, a := range p.Anchored {
		el := o.scene.ElementByID(a.ElementID)
		if el == nil {
			continue
		}
		to := el.Bounds.Center()
		o.line(from.X, from.Y, to.X, to.Y, o.opts.AnchorColor)
	}

	if o.opts.DrawLabels {
		o.text(anchor.Bounds.Left()+2, anchor.Bounds.Top()-3,
			fmt.Sprintf("anchor %.2f", p.Score), o.opts.AnchorColor)
	}
}

func (o *Overlay) drawFlow(p relations.FlowPattern) {
	for _, v := range p.Vectors {
		from := o.scene.ElementByID(v.From)
		to := o.scene.ElementByID(v.To)
		if from == nil || to == nil {
			continue
		}
		a, b := from.Bounds.Center(), to.Bounds.Center()
		o.arrow(a.X, a.Y, b.X, b.Y, o.opts.FlowColor)
	}
}

func (o *Overlay) drawAlignment(g relations.AlignmentGrid) {
	for _, line := range g.Lines {
		// Line positions are normalized against the root.
		if g.GridType == model.DirectionHorizontal {
			y := o.scene.Root.Y + line.Position*o.scene.Root.Height
			o.line(o.scene.Root.Left(), y, o.scene.Root.Right(), y, o.opts.AlignmentColor)
		} else {
			x := o.scene.Root.X + line.Position*o.scene.Root.Width
			o.line(x, o.scene.Root.Top(), x, o.scene.Root.Bottom(), o.opts.AlignmentColor)
		}
	}
}

// Image returns the rendered canvas.
func (o *Overlay) Image() image.Image {
	return o.img
}

// WritePNG encodes the canvas as PNG.
func (o *Overlay) WritePNG(w io.Writer) error {
	if err := png.Encode(w, o.img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (o *Overlay) SavePNG(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	return o.WritePNG(f)
}

func (o *Overlay) set(x, y float64, c color.Color) {
	o.img.Set(int(math.Round(x)), int(math.Round(y)), c)
}

func (o *Overlay) strokeRect(b model.BBox, c color.Color) {
	o.line(b.Left(), b.Top(), b.Right(), b.Top(), c)
	o.line(b.Right(), b.Top(), b.Right(), b.Bottom(), c)
	o.line(b.Right(), b.Bottom(), b.Left(), b.Bottom(), c)
	o.line(b.Left(), b.Bottom(), b.Left(), b.Top(), c)
}

// line draws a straight segment by stepping one pixel at a time.
func (o *Overlay) line(x1, y1, x2, y2 float64, c color.Color) {
	dx, dy := x2-x1, y2-y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		o.set(x1, y1, c)
		return
	}
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		o.set(x1+dx*t, y1+dy*t, c)
	}
}

func (o *Overlay) arrow(x1, y1, x2, y2 float64, c color.Color) {
	o.line(x1, y1, x2, y2, c)

	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length < 1 {
		return
	}
	nx, ny := dx/length, dy/length

	const headLen, headWidth = 6.0, 3.0
	o.line(x2, y2, x2-nx*headLen+ny*headWidth, y2-ny*headLen-nx*headWidth, c)
	o.line(x2, y2, x2-nx*headLen-ny*headWidth, y2-ny*headLen+nx*headWidth, c)
}

func (o *Overlay) text(x, y float64, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  o.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.I(int(math.Round(x))),
			Y: fixed.I(int(math.Round(y))),
		},
	}
	d.DrawString(s)
}
