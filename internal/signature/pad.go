// Package signature produces the letter's signature image, either from
// freehand strokes on a fixed-size drawing surface or from an uploaded file,
// and manages the saved-signature collection.
package signature

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/fogleman/gg"
)

// Surface dimensions in pixels. Points outside this space are the caller's
// responsibility to clamp.
const (
	SurfaceWidth  = 300
	SurfaceHeight = 100
)

const penWidth = 2

// Point is a position on the drawing surface.
type Point struct {
	X float64
	Y float64
}

// Pad accumulates freehand strokes. Strokes persist on the surface until
// captured or cleared; nothing leaves the pad except through Capture.
type Pad struct {
	strokes [][]Point
	active  []Point
}

// NewPad returns an empty drawing surface.
func NewPad() *Pad {
	return &Pad{}
}

// BeginStroke starts a new stroke at p. An unfinished previous stroke is
// finalized first.
func (p *Pad) BeginStroke(pt Point) {
	p.EndStroke()
	p.active = []Point{pt}
}

// ExtendStroke appends a point to the stroke in progress. Without a
// BeginStroke it does nothing, mirroring mouse-move events outside a drag.
func (p *Pad) ExtendStroke(pt Point) {
	if p.active == nil {
		return
	}
	p.active = append(p.active, pt)
}

// EndStroke finalizes the stroke in progress.
func (p *Pad) EndStroke() {
	if p.active == nil {
		return
	}
	p.strokes = append(p.strokes, p.active)
	p.active = nil
}

// Empty reports whether nothing has been drawn since the last Clear.
func (p *Pad) Empty() bool {
	return len(p.strokes) == 0 && p.active == nil
}

// Clear erases all strokes.
func (p *Pad) Clear() {
	p.strokes = nil
	p.active = nil
}

// Capture renders the surface to a PNG data URI. A cleared surface yields an
// image of the empty surface, never a stale capture.
func (p *Pad) Capture() (string, error) {
	dc := gg.NewContext(SurfaceWidth, SurfaceHeight)
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(penWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	all := p.strokes
	if p.active != nil {
		all = append(append([][]Point{}, p.strokes...), p.active)
	}
	for _, stroke := range all {
		if len(stroke) == 1 {
			dc.DrawPoint(stroke[0].X, stroke[0].Y, penWidth/2)
			dc.Fill()
			continue
		}
		dc.MoveTo(stroke[0].X, stroke[0].Y)
		for _, pt := range stroke[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("failed to encode signature: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
