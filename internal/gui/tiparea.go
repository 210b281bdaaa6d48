package gui

import (
	"image"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// FragmentSource reports the on-screen geometry of a possibly line-wrapped
// hover target, in the coordinate space of the widget handed to
// TooltipArea.Layout. FragmentRects returns one rectangle per visual line in
// layout order; BoundingRect their union.
type FragmentSource interface {
	FragmentRects() []image.Rectangle
	BoundingRect() image.Rectangle
}

// entryRecord is the last pointer entry: which region it entered and where.
// Written by the enter handler, read by the bounds path, and deliberately
// never cleared on exit; the next entry supersedes it.
type entryRecord struct {
	target *HoverRegion
	pos    image.Point
}

// TooltipArea positions a tooltip for a hover target. On pointer entry it
// records the entry point and shows the controller; while visible it keeps
// the controller's anchor rectangle on the visual line the pointer entered,
// recomputing it whenever the target's geometry shifts.
type TooltipArea struct {
	// Tolerance is the anchor matching slack. The constructor sets
	// DefaultAnchorTolerance; an explicit zero afterwards means exact
	// point matching.
	Tolerance unit.Dp
	Tip       Tooltip
	// HoverCapable overrides the process-wide hover detection. Nil means
	// HoverSupported.
	HoverCapable func() bool

	state   *TooltipState
	region  *HoverRegion
	watcher BoundsWatcher
	entry   *entryRecord
}

// NewTooltipArea wires area state to region events. The region's existing
// OnEnter/OnLeave hooks keep firing after the area's own handling. A nil
// region leaves the area inert: Layout draws its child unmodified, since
// there is nothing to attach hit areas to. A nil state gets a fresh
// controller.
func NewTooltipArea(state *TooltipState, region *HoverRegion) *TooltipArea {
	if state == nil {
		state = new(TooltipState)
	}
	a := &TooltipArea{Tolerance: DefaultAnchorTolerance, state: state, region: region}
	a.watcher.OnChange = state.SetBounds
	if region != nil {
		childEnter := region.OnEnter
		region.OnEnter = func(e pointer.Event) {
			a.handleEnter(e)
			if childEnter != nil {
				childEnter(e)
			}
		}
		childLeave := region.OnLeave
		region.OnLeave = func(e pointer.Event) {
			a.handleLeave(e)
			if childLeave != nil {
				childLeave(e)
			}
		}
	}
	return a
}

// State exposes the controller, for callers that show or observe the tooltip
// out of band.
func (a *TooltipArea) State() *TooltipState { return a.state }

func (a *TooltipArea) handleEnter(e pointer.Event) {
	a.entry = &entryRecord{target: a.region, pos: e.Position.Round()}
	a.state.Show()
}

func (a *TooltipArea) handleLeave(pointer.Event) {
	a.state.Hide()
}

// Layout draws w and instruments it as the hover target. src supplies the
// target's line rectangles; a nil src treats the whole child box as a single
// line. Without hover capability, or without a region to instrument, w is
// laid out untouched: no hit areas, no watcher, no controller traffic.
func (a *TooltipArea) Layout(gtx C, th *material.Theme, src FragmentSource, w func(gtx C) D) D {
	if a.region == nil || !a.hoverCapable() {
		return w(gtx)
	}

	a.region.update(gtx)
	dims := w(gtx)

	rects, bounding := resolveFragments(src, dims)
	hit := rects
	if len(hit) == 0 {
		hit = []image.Rectangle{bounding}
	}
	for _, r := range hit {
		cl := clip.Rect(r).Push(gtx.Ops)
		event.Op(gtx.Ops, a.region)
		cl.Pop()
	}

	a.watcher.Enabled = a.state.Visible()
	if a.entry != nil {
		a.watcher.Update(AnchorRect(rects, a.entry.pos, gtx.Dp(a.Tolerance), bounding))
	}
	a.Tip.Layout(gtx, th, a.state)
	return dims
}

func (a *TooltipArea) hoverCapable() bool {
	if a.HoverCapable != nil {
		return a.HoverCapable()
	}
	return HoverSupported()
}

func resolveFragments(src FragmentSource, dims D) ([]image.Rectangle, image.Rectangle) {
	if src == nil {
		return nil, image.Rectangle{Max: dims.Size}
	}
	rects := src.FragmentRects()
	bounding := src.BoundingRect()
	if bounding.Empty() && len(rects) == 0 {
		bounding = image.Rectangle{Max: dims.Size}
	}
	return rects, bounding
}
