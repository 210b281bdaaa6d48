package gui

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// TooltipState is the tooltip controller: a visibility flag plus the anchor
// rectangle the tip attaches to. Show and hide requests are idempotent;
// observers hear actual transitions only.
type TooltipState struct {
	visible   bool
	bounds    image.Rectangle
	observers []func(bool)
}

func (s *TooltipState) Show() { s.setVisible(true) }

func (s *TooltipState) Hide() { s.setVisible(false) }

func (s *TooltipState) Visible() bool { return s.visible }

// SetBounds records the anchor rectangle, in the coordinate space the
// tooltip is drawn in.
func (s *TooltipState) SetBounds(r image.Rectangle) { s.bounds = r }

func (s *TooltipState) Bounds() image.Rectangle { return s.bounds }

// OnVisibility registers fn to run on every show/hide transition.
func (s *TooltipState) OnVisibility(fn func(bool)) {
	if fn != nil {
		s.observers = append(s.observers, fn)
	}
}

func (s *TooltipState) setVisible(v bool) {
	if s.visible == v {
		return
	}
	s.visible = v
	for _, fn := range s.observers {
		fn(v)
	}
}

const (
	DefaultTooltipMaxWidth = unit.Dp(320)
	DefaultTooltipGap      = unit.Dp(8)
	DefaultTooltipMargin   = unit.Dp(8)
)

// Tooltip draws a small label next to the controller's anchor rectangle, on
// top of everything else in the frame. Zero-value fields fall back to the
// package defaults.
type Tooltip struct {
	Text     string
	MaxWidth unit.Dp
	Gap      unit.Dp
	Margin   unit.Dp
}

func (t Tooltip) Layout(gtx C, th *material.Theme, state *TooltipState) D {
	if state == nil || !state.Visible() || t.Text == "" {
		return D{}
	}
	gap := gtx.Dp(dpOr(t.Gap, DefaultTooltipGap))
	margin := gtx.Dp(dpOr(t.Margin, DefaultTooltipMargin))
	maxW := gtx.Dp(dpOr(t.MaxWidth, DefaultTooltipMaxWidth))
	avail := gtx.Constraints.Max
	if maxW > avail.X-2*margin {
		maxW = avail.X - 2*margin
	}
	if maxW < 0 {
		maxW = 0
	}

	macro := op.Record(gtx.Ops)
	tipGtx := gtx
	tipGtx.Constraints = layout.Constraints{Max: image.Pt(maxW, avail.Y)}
	dims := t.drawTip(tipGtx, th)
	call := macro.Stop()

	pos := tooltipOffset(state.Bounds(), dims.Size, avail, gap, margin)

	overlay := op.Record(gtx.Ops)
	off := op.Offset(pos).Push(gtx.Ops)
	call.Add(gtx.Ops)
	off.Pop()
	op.Defer(gtx.Ops, overlay.Stop())
	return D{}
}

func (t Tooltip) drawTip(gtx C, th *material.Theme) D {
	macro := op.Record(gtx.Ops)
	lbl := material.Body2(th, t.Text)
	lbl.Color = colTipText
	dims := layout.Inset{Top: unit.Dp(5), Bottom: unit.Dp(5), Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, lbl.Layout)
	call := macro.Stop()

	bg := clip.UniformRRect(image.Rectangle{Max: dims.Size}, gtx.Dp(4))
	paint.FillShape(gtx.Ops, colTipBg, bg.Op(gtx.Ops))
	call.Add(gtx.Ops)
	return dims
}

// tooltipOffset places the tip below the anchor's left edge, clamping to the
// right margin when it would overflow and flipping above the anchor when the
// bottom edge would clip it. Neither axis goes past the margin.
func tooltipOffset(anchor image.Rectangle, tip, avail image.Point, gap, margin int) image.Point {
	x := anchor.Min.X
	if x+tip.X+margin > avail.X {
		x = avail.X - tip.X - margin
		if x < margin {
			x = margin
		}
	}
	y := anchor.Max.Y + gap
	if y+tip.Y+margin > avail.Y {
		y = anchor.Min.Y - tip.Y - gap
		if y < margin {
			y = margin
		}
	}
	return image.Pt(x, y)
}

func dpOr(v, def unit.Dp) unit.Dp {
	if v == 0 {
		return def
	}
	return v
}

// TooltipStyle carries the configurable tooltip geometry, applied uniformly
// to every area a view owns.
type TooltipStyle struct {
	Tolerance unit.Dp
	MaxWidth  unit.Dp
	Gap       unit.Dp
	Margin    unit.Dp
}

func (s TooltipStyle) apply(a *TooltipArea) {
	a.Tolerance = s.Tolerance
	a.Tip.MaxWidth = s.MaxWidth
	a.Tip.Gap = s.Gap
	a.Tip.Margin = s.Margin
}
