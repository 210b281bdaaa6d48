package chat

import (
	"time"

	"github.com/wrenware/natter/internal/attachment"
)

type Author struct {
	ID   string
	Name string
}

// Segment is one inline run of message text. A non-empty LinkURL marks the
// run as a link; links carry hover tooltips showing the destination.
type Segment struct {
	Text    string
	LinkURL string
}

type Message struct {
	ID          string
	Author      Author
	SentAt      time.Time
	Segments    []Segment
	Attachments []attachment.Attachment
}
