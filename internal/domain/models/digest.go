package models

import "time"

// OverdueStudent is one late member inside a collection digest, already
// paired with its ready-to-send billing link.
type OverdueStudent struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	DueDate    string `json:"due_date"`
	BillingURL string `json:"billing_url"`
}

// OverdueDigest is the payload assembled by the scheduler and optionally
// pushed to the operations webhook.
type OverdueDigest struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Students    []OverdueStudent `json:"students"`
}
