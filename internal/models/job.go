package models

import (
	"time"
)

// Content job types
const (
	JobTypeFeedForm = "tiktok_feed_form"
	JobTypeVideo    = "tiktok_video"
	JobTypeUpload   = "tiktok_upload"
)

// Content job statuses
const (
	JobStatusQueued    = "queued"
	JobStatusGenerated = "generated"
	JobStatusRendering = "rendering"
	JobStatusUploaded  = "uploaded"
)

// Job is a queued content-generation task. Jobs live in an injected
// repository (Redis or in-memory), never in package-level state.
type Job struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Status    string                 `json:"status"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
