package gui

import (
	"reflect"
	"testing"
	"time"

	"github.com/wrenware/natter/internal/chat"
	"github.com/wrenware/natter/internal/testutil"
)

func TestSplitURL(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{
			in:   "https://en.example.org/wiki/Flag_of_Freedonia",
			want: []string{"https://en.example.org/", "wiki/", "Flag_of_Freedonia"},
		},
		{
			in:   "example.com/a/b",
			want: []string{"example.com/", "a/", "b"},
		},
		{in: "plain", want: []string{"plain"}},
		{in: "https://example.com/", want: []string{"https://example.com/"}},
	}
	for _, c := range cases {
		if got := splitURL(c.in); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("splitURL(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func linkedMessage() chat.Message {
	const wiki = "https://en.example.org/wiki/Flag_of_Freedonia"
	return chat.Message{
		ID:     "m1",
		Author: chat.Author{ID: "u1", Name: "Ana"},
		SentAt: time.Date(2025, 7, 14, 9, 30, 0, 0, time.UTC),
		Segments: []chat.Segment{
			{Text: "see"},
			{Text: wiki, LinkURL: wiki},
			{Text: "for details"},
		},
	}
}

func TestMessageViewFlattensSegments(t *testing.T) {
	m := NewMessageView(linkedMessage(), nil)

	if len(m.items) != 6 {
		t.Fatalf("expected 6 flow items, got %d", len(m.items))
	}
	if len(m.links) != 1 {
		t.Fatalf("expected one link range, got %d", len(m.links))
	}
	link := m.links[0]
	if link.i != 1 || link.j != 3 {
		t.Fatalf("expected link items 1..3, got %d..%d", link.i, link.j)
	}
	for i, it := range m.items {
		wantLink := i >= link.i && i <= link.j
		if it.link != wantLink {
			t.Fatalf("item %d %q: link=%v, expected %v", i, it.text, it.link, wantLink)
		}
	}
	if m.links[0].area.Tip.Text != "https://en.example.org/wiki/Flag_of_Freedonia" {
		t.Fatalf("expected the tip to carry the full URL, got %q", m.links[0].area.Tip.Text)
	}
}

func TestMessageViewLayoutRecordsLinkRects(t *testing.T) {
	m := NewMessageView(linkedMessage(), nil)
	th := testutil.Theme()

	dims := m.Layout(testutil.LooseContext(200, 400), th)
	if dims.Size.X <= 0 || dims.Size.Y <= 0 {
		t.Fatalf("expected nonzero dims, got %v", dims.Size)
	}

	link := m.links[0]
	rects := m.flow.RangeRects(link.i, link.j)
	if len(rects) == 0 {
		t.Fatal("expected the link to leave fragment rects behind")
	}
	bounding := m.flow.BoundingRect(link.i, link.j)
	for _, r := range rects {
		if !r.In(bounding) {
			t.Fatalf("fragment %v escapes bounding %v", r, bounding)
		}
	}
}

func TestApplyTooltipStyle(t *testing.T) {
	m := NewMessageView(linkedMessage(), nil)
	m.ApplyTooltipStyle(TooltipStyle{Tolerance: 9, MaxWidth: 200, Gap: 10, Margin: 12})

	area := m.links[0].area
	if area.Tolerance != 9 {
		t.Fatalf("expected tolerance 9, got %v", area.Tolerance)
	}
	if area.Tip.MaxWidth != 200 || area.Tip.Gap != 10 || area.Tip.Margin != 12 {
		t.Fatalf("tip geometry not applied: %+v", area.Tip)
	}
	if area.Tip.Text == "" {
		t.Fatal("expected the tip text preserved")
	}
}

func TestMessageViewLaysOutAttachments(t *testing.T) {
	th := testutil.Theme()
	bare := NewMessageView(linkedMessage(), nil)
	bareDims := bare.Layout(testutil.LooseContext(300, 600), th)

	av := NewAttachmentView(fileAttachment(), AttachmentOptions{ShowDownloadIcon: true})
	withAtt := NewMessageView(linkedMessage(), []*AttachmentView{av})
	attDims := withAtt.Layout(testutil.LooseContext(300, 600), th)

	if attDims.Size.Y <= bareDims.Size.Y {
		t.Fatalf("expected the attachment to add height: %d vs %d", attDims.Size.Y, bareDims.Size.Y)
	}
}
