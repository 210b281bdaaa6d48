package gui

import (
	"gioui.org/io/pointer"
	"gioui.org/layout"
)

// HoverRegion is an addressable hover target. Its pointer value is the event
// tag for every hit area registered on its behalf, so one region can cover
// several disjoint rectangles. OnEnter and OnLeave are optional.
type HoverRegion struct {
	OnEnter func(pointer.Event)
	OnLeave func(pointer.Event)

	hovering bool
}

// Hovering reports whether the pointer was inside the region after the last
// update.
func (r *HoverRegion) Hovering() bool { return r.hovering }

// update drains the region's pointer events for this frame.
func (r *HoverRegion) update(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: r,
			Kinds:  pointer.Enter | pointer.Leave | pointer.Cancel,
		})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok {
			r.dispatch(e)
		}
	}
}

func (r *HoverRegion) dispatch(e pointer.Event) {
	switch e.Kind {
	case pointer.Enter:
		r.hovering = true
		if r.OnEnter != nil {
			r.OnEnter(e)
		}
	case pointer.Leave, pointer.Cancel:
		r.hovering = false
		if r.OnLeave != nil {
			r.OnLeave(e)
		}
	}
}
