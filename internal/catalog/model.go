package catalog

import (
	"regexp"
	"strings"
	"time"
)

type Service struct {
	ID              int       `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Slug            string    `db:"slug" json:"slug"`
	Description     string    `db:"description" json:"description"`
	LongDescription *string   `db:"long_description" json:"longDescription"`
	Image           *string   `db:"image" json:"image"`
	Duration        int       `db:"duration" json:"duration"`
	Price           *float64  `db:"price" json:"price"`
	Category        string    `db:"category" json:"category"`
	Active          bool      `db:"active" json:"active"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

type CreateServiceRequest struct {
	Name            string   `json:"name" binding:"required,min=2"`
	Description     string   `json:"description" binding:"required"`
	LongDescription *string  `json:"longDescription"`
	Image           *string  `json:"image"`
	Duration        int      `json:"duration" binding:"required,min=1"`
	Price           *float64 `json:"price"`
	Category        string   `json:"category" binding:"required"`
	Active          bool     `json:"active"`
}

type UpdateServiceRequest = CreateServiceRequest

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a service name.
func Slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
