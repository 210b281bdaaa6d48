package gui

import (
	"image"

	"gioui.org/op"
	"gioui.org/unit"
)

// Flow lays out inline items left to right, wrapping to a new line when the
// next item would overflow the width constraint. It records every item's
// rectangle, so spans of items can report their per-line geometry to a
// TooltipArea after wrapping.
type Flow struct {
	HGap unit.Dp
	VGap unit.Dp

	rects []image.Rectangle
	rows  []int
}

func (f *Flow) Layout(gtx C, n int, el func(gtx C, i int) D) D {
	maxW := gtx.Constraints.Max.X
	hgap := gtx.Dp(f.HGap)
	vgap := gtx.Dp(f.VGap)
	f.rects = f.rects[:0]
	f.rows = f.rows[:0]

	childGtx := gtx
	childGtx.Constraints.Min = image.Point{}

	x, y, row := 0, 0, 0
	lineH, width := 0, 0
	for i := 0; i < n; i++ {
		macro := op.Record(gtx.Ops)
		dims := el(childGtx, i)
		call := macro.Stop()

		if x > 0 {
			if x+hgap+dims.Size.X > maxW {
				y += lineH + vgap
				x = 0
				lineH = 0
				row++
			} else {
				x += hgap
			}
		}

		off := op.Offset(image.Pt(x, y)).Push(gtx.Ops)
		call.Add(gtx.Ops)
		off.Pop()

		f.rects = append(f.rects, image.Rectangle{
			Min: image.Pt(x, y),
			Max: image.Pt(x+dims.Size.X, y+dims.Size.Y),
		})
		f.rows = append(f.rows, row)

		x += dims.Size.X
		if dims.Size.Y > lineH {
			lineH = dims.Size.Y
		}
		if x > width {
			width = x
		}
	}

	var total image.Point
	if n > 0 {
		total = image.Pt(width, y+lineH)
	}
	return D{Size: gtx.Constraints.Constrain(total)}
}

// ItemRect returns item i's rectangle from the latest Layout.
func (f *Flow) ItemRect(i int) image.Rectangle {
	if i < 0 || i >= len(f.rects) {
		return image.Rectangle{}
	}
	return f.rects[i]
}

// RangeRects returns the per-line union rectangles covered by items i..j
// inclusive, top to bottom: the client rectangles of a logical span that may
// have wrapped.
func (f *Flow) RangeRects(i, j int) []image.Rectangle {
	if len(f.rects) == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if j > len(f.rects)-1 {
		j = len(f.rects) - 1
	}
	if i > j {
		return nil
	}
	var out []image.Rectangle
	lastRow := -1
	for k := i; k <= j; k++ {
		if f.rows[k] == lastRow {
			out[len(out)-1] = out[len(out)-1].Union(f.rects[k])
			continue
		}
		out = append(out, f.rects[k])
		lastRow = f.rows[k]
	}
	return out
}

// BoundingRect returns the union box of items i..j.
func (f *Flow) BoundingRect(i, j int) image.Rectangle {
	var u image.Rectangle
	for _, r := range f.RangeRects(i, j) {
		u = u.Union(r)
	}
	return u
}

// Span exposes a contiguous item range of a Flow as a tooltip fragment
// source.
type Span struct {
	Flow *Flow
	I, J int
}

func (s Span) FragmentRects() []image.Rectangle { return s.Flow.RangeRects(s.I, s.J) }

func (s Span) BoundingRect() image.Rectangle { return s.Flow.BoundingRect(s.I, s.J) }

var _ FragmentSource = Span{}
