package models

import "time"

// Job is a single posting on the internal job board. Records are immutable
// once created; there is no update or delete path.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Department  string    `json:"department"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
