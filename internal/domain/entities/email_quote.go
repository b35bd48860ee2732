package entities

import "time"

type EmailQuoteStatus string

const (
	EmailQuoteStatusPending   EmailQuoteStatus = "pending"
	EmailQuoteStatusProcessed EmailQuoteStatus = "processed"
	EmailQuoteStatusIgnored   EmailQuoteStatus = "ignored"
)

func (s EmailQuoteStatus) Valid() bool {
	switch s {
	case EmailQuoteStatusPending, EmailQuoteStatusProcessed, EmailQuoteStatusIgnored:
		return true
	}
	return false
}

// DetectedService is a service suggested by email parsing. Confidence is
// provenance only; no decision is based on it.
type DetectedService struct {
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	SuggestedPrice *float64 `json:"suggested_price,omitempty"`
	Quantity       *int     `json:"quantity,omitempty"`
	Date           string   `json:"date,omitempty"`
	Confidence     float64  `json:"confidence"`
}

// EmailQuote is a quote request received by email.
type EmailQuote struct {
	ID               string            `json:"id"`
	Subject          string            `json:"subject"`
	Sender           string            `json:"sender"`
	ReceivedAt       time.Time         `json:"received_at"`
	OriginalHTML     string            `json:"original_html"`
	DetectedServices []DetectedService `json:"detected_services"`
	Status           EmailQuoteStatus  `json:"status"`
}
