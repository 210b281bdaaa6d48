package gui

import (
	"image"

	"gioui.org/unit"
)

// DefaultAnchorTolerance is the slack, in dp, applied around the pointer's
// entry point when matching it against a target's line rectangles.
const DefaultAnchorTolerance = unit.Dp(5)

// AnchorRect picks the rectangle a tooltip anchors to. rects holds the
// target's line rectangles in layout order, top to bottom; entry is the
// recorded pointer entry point and tol the tolerance, both in pixels;
// fallback is the target's whole bounding box.
//
// The entry point expands to [x-tol, x+tol] x [y-tol, y+tol] and the first
// rectangle touching that region wins. The comparison is closed on all four
// edges, so shared edges count as touching. With no hit the fallback is
// returned, zero rects included.
func AnchorRect(rects []image.Rectangle, entry image.Point, tol int, fallback image.Rectangle) image.Rectangle {
	lo := entry.Sub(image.Pt(tol, tol))
	hi := entry.Add(image.Pt(tol, tol))
	for _, r := range rects {
		if r.Max.X >= lo.X && r.Min.X <= hi.X && r.Max.Y >= lo.Y && r.Min.Y <= hi.Y {
			return r
		}
	}
	return fallback
}
