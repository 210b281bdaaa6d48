package testutil

import (
	"image"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// LayoutContext returns a headless context for exercising widget layout in
// tests: fresh ops, exact constraints, 1:1 dp/sp metrics and no event source,
// so event loops drain immediately.
func LayoutContext(width, height int) layout.Context {
	return layout.Context{
		Ops:         new(op.Ops),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(image.Pt(width, height)),
	}
}

// LooseContext is LayoutContext with a zero minimum, for widgets that size
// themselves.
func LooseContext(maxWidth, maxHeight int) layout.Context {
	gtx := LayoutContext(maxWidth, maxHeight)
	gtx.Constraints.Min = image.Point{}
	return gtx
}

// Theme returns a material theme shaped with the bundled Go fonts, so text
// lays out the same on headless test machines as anywhere else.
func Theme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))
	return th
}
