package pages

import (
	"encoding/json"
	"time"
)

// PageContent holds the editable JSON document for a site page.
type PageContent struct {
	ID        int             `db:"id" json:"id"`
	Page      string          `db:"page" json:"page"`
	Content   json.RawMessage `db:"content" json:"content"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}

type SaveContentRequest struct {
	Content json.RawMessage `json:"content" binding:"required"`
}
