package entities

import "time"

// Disclosure is a reusable text template presented to clients during
// approval. Attaching one to a document copies title+content into a
// DisclosureSnapshot; the template itself is never referenced afterwards.
type Disclosure struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Active    bool      `json:"active"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot copies the template's current text for permanent attachment.
func (d Disclosure) Snapshot(at time.Time) DisclosureSnapshot {
	return DisclosureSnapshot{
		DisclosureID: d.ID,
		Title:        d.Title,
		Content:      d.Content,
		SortOrder:    d.SortOrder,
		AttachedAt:   at,
	}
}
