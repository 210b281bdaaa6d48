package chat

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"time"

	"github.com/google/uuid"
	"github.com/wrenware/natter/internal/attachment"
)

const (
	samplePhotoURL   = "https://files.example.com/u/ana/photo.png"
	sampleReportURL  = "https://files.example.com/u/ben/report.pdf"
	sampleArchiveURL = "https://files.example.com/u/ben/archive.tar.gz"
	sampleWikiURL    = "https://wiki.example.com/projects/natter/release-checklist-and-rollout-notes"
)

// Sample is the built-in demo conversation. Blobs holds the bytes behind
// every loadable attachment URL, keyed by the raw (undecorated) URL.
type Sample struct {
	Messages []Message
	Blobs    map[string][]byte
}

// NewSample builds the demo transcript: one attachment per render branch,
// plus a link long enough to wrap across lines. contactIcon may be nil, in
// which case the icon attachment is omitted.
func NewSample(c *attachment.Classifier, contactIcon attachment.IconRenderer) Sample {
	photo := samplePNG()
	report := samplePDF()

	ana := Author{ID: uuid.NewString(), Name: "Ana"}
	ben := Author{ID: uuid.NewString(), Name: "Ben"}
	at := time.Date(2025, 7, 14, 9, 30, 0, 0, time.UTC)
	next := func() time.Time {
		at = at.Add(2 * time.Minute)
		return at
	}

	messages := []Message{
		{
			ID:     uuid.NewString(),
			Author: ana,
			SentAt: next(),
			Segments: []Segment{
				{Text: "Sketches from this morning, the second one is my favourite."},
			},
			Attachments: []attachment.Attachment{{
				ID:     uuid.NewString(),
				File:   attachment.File{Name: "photo.png", Size: int64(len(photo)), MediaType: "image/png"},
				Source: c.Source(samplePhotoURL, nil, attachment.File{Name: "photo.png"}),
			}},
		},
		{
			ID:     uuid.NewString(),
			Author: ben,
			SentAt: next(),
			Segments: []Segment{
				{Text: "Budget draft attached, numbers are still moving."},
			},
			Attachments: []attachment.Attachment{{
				ID:     uuid.NewString(),
				File:   attachment.File{Name: "report.pdf", Size: int64(len(report)), MediaType: "application/pdf"},
				Source: c.Source(sampleReportURL, nil, attachment.File{Name: "report.pdf"}),
			}},
		},
		{
			ID:     uuid.NewString(),
			Author: ana,
			SentAt: next(),
			Segments: []Segment{
				{Text: "The rollout notes live at "},
				{Text: sampleWikiURL, LinkURL: sampleWikiURL},
				{Text: " if you want the long version."},
			},
		},
		{
			ID:     uuid.NewString(),
			Author: ben,
			SentAt: next(),
			Segments: []Segment{
				{Text: "Full export, will take a moment to fetch."},
			},
			Attachments: []attachment.Attachment{{
				ID:     uuid.NewString(),
				File:   attachment.File{Name: "archive.tar.gz", Size: 48_517_212, MediaType: "application/gzip"},
				Source: c.Source(sampleArchiveURL, nil, attachment.File{Name: "archive.tar.gz"}),
			}},
		},
	}

	if contactIcon != nil {
		messages = append(messages, Message{
			ID:     uuid.NewString(),
			Author: ana,
			SentAt: next(),
			Segments: []Segment{
				{Text: "Forwarding Sam's card."},
			},
			Attachments: []attachment.Attachment{{
				ID:     uuid.NewString(),
				File:   attachment.File{Name: "sam.vcf", MediaType: "text/vcard"},
				Source: attachment.IconSource(contactIcon),
			}},
		})
	}

	return Sample{
		Messages: messages,
		Blobs: map[string][]byte{
			samplePhotoURL:  photo,
			sampleReportURL: report,
		},
	}
}

func samplePNG() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 320, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 320; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / 320), G: uint8(y * 255 / 200), B: 0x80, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func samplePDF() []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	buf.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	buf.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>\nendobj\n")
	buf.WriteString("trailer\n<< /Root 1 0 R >>\n%%EOF\n")
	return buf.Bytes()
}
