package entities

import "time"

// PhotoType categorizes a work-order photo.

type PhotoType string

const (
	PhotoTypeBefore        PhotoType = "before"
	PhotoTypeAfter         PhotoType = "after"
	PhotoTypeProgress      PhotoType = "progress"
	PhotoTypeDocumentation PhotoType = "documentation"
)

func (t PhotoType) Valid() bool {
	switch t {
	case PhotoTypeBefore, PhotoTypeAfter, PhotoTypeProgress, PhotoTypeDocumentation:
		return true
	}
	return false
}

// Photo is an append-only photo attachment. The file itself lives in the
// object store; the aggregate keeps only the URL.
type Photo struct {
	URL       string    `json:"url"`
	Type      PhotoType `json:"type"`
	Caption   string    `json:"caption,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Message is an append-only communication entry between the shop and the
// customer. Messages may arrive from an external store out of order, so the
// display contract is "sorted by timestamp ascending on every read", not
// insertion order.
type Message struct {
	ID         string    `json:"id"`
	SenderRole Role      `json:"sender_role"`
	SenderName string    `json:"sender_name"`
	Body       string    `json:"body"`
	Timestamp  time.Time `json:"timestamp"`
}
