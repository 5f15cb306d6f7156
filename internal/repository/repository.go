package repository

// Package repository contains data access layer abstractions.
// Implementations can live in subpackages (e.g., postgres, mongo) inside this directory.

import "context"

// Repository is the generic contract shared by all entity repositories.
// No business logic here, strictly persistence operations.
//
// T is the domain entity type (e.g., model.Customer, model.Post).
type Repository[T any] interface {
	// List returns all entities.
	List(ctx context.Context) ([]T, error)

	// FindByID returns the entity with the given identity, or sql.ErrNoRows
	// when no row matches.
	FindByID(ctx context.Context, id int) (*T, error)

	// Create inserts a new entity and returns the stored record with its
	// server-assigned identity.
	Create(ctx context.Context, entity *T) (*T, error)

	// Update copies the current field values of edited onto original and
	// writes the result. The bool reports whether any field actually
	// differed; implementations skip the write when nothing changed.
	Update(ctx context.Context, edited, original *T) (*T, bool, error)

	// Remove deletes the entity.
	Remove(ctx context.Context, entity *T) error

	// Persist flushes buffered writes. SQL implementations execute
	// statements eagerly and return nil.
	Persist(ctx context.Context) error
}
