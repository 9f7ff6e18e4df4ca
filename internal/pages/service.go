package pages

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

var ErrUnknownPage = errors.New("unknown page")

// Default documents served until an admin saves their own version.
var defaultContent = map[string]json.RawMessage{
	"home": json.RawMessage(`{
		"hero": {
			"title": "Evidence-Based, Heart-Led",
			"subtitle": "Your Journey, Our Support. Reach New Heights",
			"description": "Comprehensive ABA programs designed to help children build skills, develop independence, and achieve their full potential.",
			"image": "/ABA therapy website image.jpg"
		},
		"stats": {
			"childrenHelped": "500+",
			"programs": "14",
			"successRate": "95%",
			"experience": "10+"
		},
		"testimonials": [
			{"text": "The 1:1 ABA therapy has been life-changing for our son. The therapists are incredibly patient and skilled.", "author": "Sarah M."},
			{"text": "The social skills groups helped our daughter make friends and gain confidence. Amazing program!", "author": "Michael R."},
			{"text": "Professional, caring, and effective. The parent coaching sessions were invaluable for our family.", "author": "Jennifer L."}
		]
	}`),
	"about": json.RawMessage(`{
		"mission": {
			"title": "Our Mission",
			"content": "At AscendCare & Early Intervention, we provide comprehensive, evidence-based ABA programs designed to help children build skills, develop independence, and achieve their full potential."
		},
		"values": [
			{"name": "Compassion", "description": "Every child deserves understanding, patience, and care"},
			{"name": "Excellence", "description": "We maintain the highest standards in all our programs"},
			{"name": "Collaboration", "description": "Working together with families for the best outcomes"},
			{"name": "Growth", "description": "Celebrating every milestone and achievement"}
		]
	}`),
	"services": json.RawMessage(`{
		"title": "Our Services",
		"description": "Comprehensive ABA programs for every stage of development",
		"featured": ["1:1 ABA Therapy", "Social Skills Groups", "ABA + Montessori Program", "Early Intervention Program"]
	}`),
}

type Service interface {
	Get(ctx context.Context, page string) (*PageContent, error)
	Save(ctx context.Context, page string, content json.RawMessage) (*PageContent, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Get returns the stored document for the page, falling back to the built-in
// template when nothing has been saved yet.
func (s *service) Get(ctx context.Context, page string) (*PageContent, error) {
	pc, err := s.repo.GetByPage(ctx, page)
	if err == nil {
		return pc, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	fallback, ok := defaultContent[page]
	if !ok {
		return nil, ErrUnknownPage
	}

	return &PageContent{Page: page, Content: fallback}, nil
}

func (s *service) Save(ctx context.Context, page string, content json.RawMessage) (*PageContent, error) {
	if _, ok := defaultContent[page]; !ok {
		return nil, ErrUnknownPage
	}
	if !json.Valid(content) {
		return nil, errors.New("content is not valid JSON")
	}

	return s.repo.Upsert(ctx, page, content)
}
