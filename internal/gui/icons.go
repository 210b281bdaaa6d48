package gui

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/wrenware/natter/internal/attachment"
)

var (
	iconPaperclip = mustIcon(icons.EditorAttachFile)
	iconDownload  = mustIcon(icons.FileFileDownload)
	iconDocument  = mustIcon(icons.ActionDescription)
	iconBroken    = mustIcon(icons.AlertErrorOutline)
	iconZoomIn    = mustIcon(icons.ActionZoomIn)
	iconZoomOut   = mustIcon(icons.ActionZoomOut)
	iconKeyboard  = mustIcon(icons.HardwareKeyboard)
	iconContact   = mustIcon(icons.SocialPerson)
)

func mustIcon(data []byte) *widget.Icon {
	ic, err := widget.NewIcon(data)
	if err != nil {
		panic(err)
	}
	return ic
}

// layoutIcon draws ic inside a sizePx square.
func layoutIcon(gtx C, ic *widget.Icon, sizePx int, col color.NRGBA) D {
	gtx.Constraints.Min = image.Pt(sizePx, sizePx)
	gtx.Constraints.Max = image.Pt(sizePx, sizePx)
	return ic.Layout(gtx, col)
}

// ContactIcon renders the person glyph, for icon-kind attachments such as
// forwarded contact cards.
func ContactIcon(gtx layout.Context, sizePx int) layout.Dimensions {
	return layoutIcon(gtx, iconContact, sizePx, colMuted)
}

var _ attachment.IconRenderer = ContactIcon
