package repository

import (
	"context"

	"crmapi/internal/model"
)

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	Repository[model.Customer]

	// FindByIDWithPosts returns the customer together with all posts it
	// owns, or sql.ErrNoRows when the customer does not exist.
	FindByIDWithPosts(ctx context.Context, id int) (*model.Customer, error)

	// FindByName returns the customer with the exact given name, or
	// sql.ErrNoRows when no customer carries it.
	FindByName(ctx context.Context, name string) (*model.Customer, error)

	// RemoveRange deletes the given posts in one statement. Used for the
	// cascading delete of a customer's posts before the customer itself.
	RemoveRange(ctx context.Context, posts []model.Post) error
}
