package dto

import "crmapi/internal/model"

// Post is the transfer shape of a post.
type Post struct {
	PostID     int    `json:"post_id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Type       int    `json:"type"`
	Category   string `json:"category"`
	CustomerID int    `json:"customer_id"`

	// Customer is the owning customer, attached on single-post fetches.
	Customer *Customer `json:"customer,omitempty"`
}

// PostCreate carries the fields accepted when creating a post, singly or in
// batch.
type PostCreate struct {
	Title      string `json:"title" validate:"required,max=200"`
	Body       string `json:"body" validate:"max=500"`
	Type       int    `json:"type"`
	Category   string `json:"category" validate:"max=50"`
	CustomerID int    `json:"customer_id" validate:"required"`
}

// PostUpdate carries the fields accepted when updating a post.
type PostUpdate struct {
	Title    string `json:"title" validate:"required,max=200"`
	Body     string `json:"body" validate:"required,max=500"`
	Type     int    `json:"type" validate:"required,min=1,max=10"`
	Category string `json:"category" validate:"max=50"`
}

// PostFromModel maps a domain post to its transfer shape, including the
// owning customer when the repository attached it.
func PostFromModel(m *model.Post) Post {
	p := Post{
		PostID:     m.PostID,
		Title:      m.Title,
		Body:       m.Body,
		Type:       m.Type,
		Category:   m.Category,
		CustomerID: m.CustomerID,
	}
	if m.Customer != nil {
		c := CustomerFromModel(m.Customer)
		p.Customer = &c
	}
	return p
}

// PostsFromModel maps a slice of domain posts.
func PostsFromModel(ms []model.Post) []Post {
	out := make([]Post, 0, len(ms))
	for i := range ms {
		out = append(out, PostFromModel(&ms[i]))
	}
	return out
}

// ToModel maps the create input to a new domain post. The identity is left
// zero; the repository assigns it on insert.
func (d PostCreate) ToModel() model.Post {
	return model.Post{
		Title:      d.Title,
		Body:       d.Body,
		Type:       d.Type,
		Category:   d.Category,
		CustomerID: d.CustomerID,
	}
}

// MergeInto copies the updatable fields onto an existing domain post.
// Identity and owning customer are never touched.
func (d PostUpdate) MergeInto(m *model.Post) {
	m.Title = d.Title
	m.Body = d.Body
	m.Type = d.Type
	m.Category = d.Category
}
