package domain

import "time"

// Project mirrors the upstream record for one portfolio project. The
// upstream owns the data; this service only caches page-sized reads.
type Project struct {
	ID           int       `json:"id"`
	ProjectTitle string    `json:"project_title"`
	Desc         string    `json:"desc"`
	Thumbnail    string    `json:"thumbnail"`
	TechUsed     []string  `json:"tech_used"`
	KeyFeatures  []string  `json:"key_features"`
	GitURL       string    `json:"git_url"`
	LiveURL      string    `json:"live_url"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
