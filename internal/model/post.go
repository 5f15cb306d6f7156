package model

// Post is a publication owned by a single customer.
type Post struct {
	PostID     int    `json:"post_id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Type       int    `json:"type"`
	Category   string `json:"category"`
	CustomerID int    `json:"customer_id"`

	// Customer that owns this post. Populated only by FindByID; nil otherwise.
	Customer *Customer `json:"customer,omitempty"`
}
