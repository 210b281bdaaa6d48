// Package gui holds natter's chat view widgets: the attachment presenter,
// the hover tooltip machinery and the inline flow layout that feeds it.
package gui

import (
	"image/color"

	"gioui.org/layout"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	colMuted   = color.NRGBA{R: 0x6a, G: 0x73, B: 0x7b, A: 0xff}
	colLink    = color.NRGBA{R: 0x0b, G: 0x57, B: 0xd0, A: 0xff}
	colTipBg   = color.NRGBA{R: 0x2b, G: 0x2f, B: 0x33, A: 0xf2}
	colTipText = color.NRGBA{R: 0xf1, G: 0xf3, B: 0xf4, A: 0xff}
	colPanel   = color.NRGBA{R: 0xf1, G: 0xf3, B: 0xf4, A: 0xff}
	colDanger  = color.NRGBA{R: 0xb3, G: 0x26, B: 0x1e, A: 0xff}
)
