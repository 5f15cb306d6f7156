package repository

import (
	"context"

	"crmapi/internal/model"
)

// PostRepository defines data access for posts.
type PostRepository interface {
	Repository[model.Post]

	// AddRange inserts all posts in one transaction and returns the stored
	// records with their server-assigned identities. Either every post is
	// inserted or none is.
	AddRange(ctx context.Context, posts []model.Post) ([]model.Post, error)
}
