package gui

import (
	"fmt"
	"image"
	"log/slog"
	"path"
	"strings"
	"sync"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/dustin/go-humanize"
)

type loadPhase int

const (
	loadIdle loadPhase = iota
	loadBusy
	loadReady
	loadFailed
)

const (
	docMinScale  = 0.5
	docMaxScale  = 3.0
	docScaleStep = 0.25
)

// DocView is the embedded document viewer. It fetches the document bytes
// once, on a background goroutine, and renders a page placeholder with zoom
// and keyboard controls. All callbacks fire on the frame goroutine;
// OnLoadComplete fires once per successful load.
type DocView struct {
	URL              string
	OnLoadComplete   func()
	OnScaleChanged   func(float32)
	OnToggleKeyboard func()
	// Invalidate wakes the window when the background load finishes.
	Invalidate func()

	loader BlobLoader

	mu        sync.Mutex
	phase     loadPhase
	data      []byte
	err       error
	announced bool

	scale    float32
	zoomIn   widget.Clickable
	zoomOut  widget.Clickable
	keyboard widget.Clickable
}

func NewDocView(url string, loader BlobLoader) *DocView {
	return &DocView{URL: url, loader: loader, scale: 1}
}

func (v *DocView) Scale() float32 { return v.scale }

func (v *DocView) Layout(gtx C, th *material.Theme) D {
	v.startLoad()
	v.processControls(gtx)

	v.mu.Lock()
	phase, err, size := v.phase, v.err, len(v.data)
	fire := phase == loadReady && !v.announced
	if fire {
		v.announced = true
	}
	v.mu.Unlock()
	if fire && v.OnLoadComplete != nil {
		v.OnLoadComplete()
	}

	switch phase {
	case loadReady:
		return v.layoutReady(gtx, th, size)
	case loadFailed:
		return v.layoutFailed(gtx, th, err)
	default:
		return v.layoutLoading(gtx, th)
	}
}

func (v *DocView) startLoad() {
	v.mu.Lock()
	if v.phase != loadIdle {
		v.mu.Unlock()
		return
	}
	v.phase = loadBusy
	v.mu.Unlock()
	go v.load()
}

func (v *DocView) load() {
	var (
		data []byte
		err  error
	)
	if v.loader == nil {
		err = fmt.Errorf("no loader for %q", v.URL)
	} else {
		data, err = v.loader(v.URL)
	}

	v.mu.Lock()
	if err != nil {
		v.phase = loadFailed
		v.err = err
	} else {
		v.phase = loadReady
		v.data = data
	}
	v.mu.Unlock()

	if err != nil {
		slog.Warn("document load failed", "url", v.URL, "err", err)
	}
	if v.Invalidate != nil {
		v.Invalidate()
	}
}

func (v *DocView) processControls(gtx C) {
	for v.zoomIn.Clicked(gtx) {
		v.setScale(v.scale + docScaleStep)
	}
	for v.zoomOut.Clicked(gtx) {
		v.setScale(v.scale - docScaleStep)
	}
	for v.keyboard.Clicked(gtx) {
		if v.OnToggleKeyboard != nil {
			v.OnToggleKeyboard()
		}
	}
}

func (v *DocView) setScale(s float32) {
	if s < docMinScale {
		s = docMinScale
	}
	if s > docMaxScale {
		s = docMaxScale
	}
	if s == v.scale {
		return
	}
	v.scale = s
	if v.OnScaleChanged != nil {
		v.OnScaleChanged(s)
	}
}

func (v *DocView) layoutReady(gtx C, th *material.Theme, size int) D {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D { return v.layoutControls(gtx, th) }),
		layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
		layout.Rigid(func(gtx C) D { return v.layoutPage(gtx, th, size) }),
	)
}

func (v *DocView) layoutControls(gtx C, th *material.Theme) D {
	control := func(btn *widget.Clickable, ic *widget.Icon) layout.FlexChild {
		return layout.Rigid(func(gtx C) D {
			return material.Clickable(gtx, btn, func(gtx C) D {
				return layoutIcon(gtx, ic, gtx.Dp(20), colMuted)
			})
		})
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		control(&v.zoomOut, iconZoomOut),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		control(&v.zoomIn, iconZoomIn),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		control(&v.keyboard, iconKeyboard),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx C) D {
			lbl := material.Body2(th, docName(v.URL))
			lbl.Color = colMuted
			return lbl.Layout(gtx)
		}),
	)
}

func (v *DocView) layoutPage(gtx C, th *material.Theme, size int) D {
	w := gtx.Dp(unit.Dp(220 * v.scale))
	h := gtx.Dp(unit.Dp(140 * v.scale))

	defer clip.UniformRRect(image.Rectangle{Max: image.Pt(w, h)}, gtx.Dp(4)).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, colPanel)

	inner := gtx
	inner.Constraints = layout.Exact(image.Pt(w, h))
	layout.Center.Layout(inner, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return layoutIcon(gtx, iconDocument, gtx.Dp(28), colMuted)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx C) D {
				lbl := material.Body2(th, humanize.Bytes(uint64(size)))
				lbl.Color = colMuted
				return lbl.Layout(gtx)
			}),
		)
	})
	return D{Size: image.Pt(w, h)}
}

func (v *DocView) layoutLoading(gtx C, th *material.Theme) D {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Pt(gtx.Dp(20), gtx.Dp(20))
			gtx.Constraints.Max = gtx.Constraints.Min
			return material.Loader(th).Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx C) D {
			lbl := material.Body2(th, "Loading "+docName(v.URL))
			lbl.Color = colMuted
			return lbl.Layout(gtx)
		}),
	)
}

func (v *DocView) layoutFailed(gtx C, th *material.Theme, err error) D {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layoutIcon(gtx, iconBroken, gtx.Dp(20), colDanger)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx C) D {
			lbl := material.Body2(th, fmt.Sprintf("Could not load %s: %v", docName(v.URL), err))
			lbl.Color = colDanger
			return lbl.Layout(gtx)
		}),
	)
}

func docName(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	if url == "" {
		return "document"
	}
	return path.Base(url)
}
