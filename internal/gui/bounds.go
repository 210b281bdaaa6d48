package gui

import "image"

// BoundsWatcher reports layout rectangle changes between frames. Update is
// fed the current rectangle once per frame; OnChange fires when it differs
// from the previous update, the first update after enabling included.
// Disabling forgets the last rectangle, so re-enabling reports afresh.
type BoundsWatcher struct {
	Enabled  bool
	OnChange func(image.Rectangle)

	last image.Rectangle
	seen bool
}

func (w *BoundsWatcher) Update(r image.Rectangle) {
	if !w.Enabled {
		w.seen = false
		return
	}
	if w.seen && r == w.last {
		return
	}
	w.last = r
	w.seen = true
	if w.OnChange != nil {
		w.OnChange(r)
	}
}
