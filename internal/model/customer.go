package model

// Customer is a client that owns posts.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, repository) without coupling to persistence.
type Customer struct {
	CustomerID int    `json:"customer_id"`
	Name       string `json:"name"`

	// Posts owned by this customer. Populated only by FindByIDWithPosts;
	// nil otherwise.
	Posts []Post `json:"posts,omitempty"`
}
