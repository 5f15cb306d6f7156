package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"crmapi/internal/model"
	"crmapi/internal/repository"
)

// PostPostgres is a PostgreSQL implementation of repository.PostRepository.
type PostPostgres struct {
	db *sql.DB
}

// NewPostPostgres creates a new PostPostgres repository.
func NewPostPostgres(db *sql.DB) *PostPostgres {
	return &PostPostgres{db: db}
}

var _ repository.PostRepository = (*PostPostgres)(nil)

// List returns all posts ordered by identity. The owning customer is not
// joined here; only the foreign key is exposed.
func (r *PostPostgres) List(ctx context.Context) ([]model.Post, error) {
	const q = `
		SELECT post_id, title, body, type, category, customer_id
		FROM posts
		ORDER BY post_id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Post, 0)
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.PostID, &p.Title, &p.Body, &p.Type, &p.Category, &p.CustomerID); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single post and attaches its owning customer with a
// second query.
func (r *PostPostgres) FindByID(ctx context.Context, id int) (*model.Post, error) {
	const q = `
		SELECT post_id, title, body, type, category, customer_id
		FROM posts
		WHERE post_id = $1
	`
	var p model.Post
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&p.PostID, &p.Title, &p.Body, &p.Type, &p.Category, &p.CustomerID); err != nil {
		return nil, err
	}

	const qc = `
		SELECT customer_id, name
		FROM customers
		WHERE customer_id = $1
	`
	var c model.Customer
	if err := r.db.QueryRowContext(ctx, qc, p.CustomerID).Scan(&c.CustomerID, &c.Name); err != nil {
		// A dangling foreign key leaves the customer unattached rather
		// than failing the post fetch.
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	} else {
		p.Customer = &c
	}

	return &p, nil
}

// Create inserts a new post row and returns the stored record.
func (r *PostPostgres) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	const q = `
		INSERT INTO posts (title, body, type, category, customer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING post_id, title, body, type, category, customer_id
	`
	var out model.Post
	err := r.db.QueryRowContext(ctx, q,
		p.Title,
		p.Body,
		p.Type,
		p.Category,
		p.CustomerID,
	).Scan(&out.PostID, &out.Title, &out.Body, &out.Type, &out.Category, &out.CustomerID)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AddRange inserts all posts inside one transaction. A failure on any row
// rolls back every insert.
func (r *PostPostgres) AddRange(ctx context.Context, posts []model.Post) ([]model.Post, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	const q = `
		INSERT INTO posts (title, body, type, category, customer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING post_id, title, body, type, category, customer_id
	`
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		var stored model.Post
		err := tx.QueryRowContext(ctx, q,
			p.Title,
			p.Body,
			p.Type,
			p.Category,
			p.CustomerID,
		).Scan(&stored.PostID, &stored.Title, &stored.Body, &stored.Type, &stored.Category, &stored.CustomerID)
		if err != nil {
			return nil, err
		}
		out = append(out, stored)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return out, nil
}

// Update copies the field values of edited onto original and writes the row.
// The write is skipped when no field differs.
func (r *PostPostgres) Update(ctx context.Context, edited, original *model.Post) (*model.Post, bool, error) {
	changed := original.Title != edited.Title ||
		original.Body != edited.Body ||
		original.Type != edited.Type ||
		original.Category != edited.Category ||
		original.CustomerID != edited.CustomerID

	original.Title = edited.Title
	original.Body = edited.Body
	original.Type = edited.Type
	original.Category = edited.Category
	original.CustomerID = edited.CustomerID

	if !changed {
		return original, false, nil
	}

	const q = `
		UPDATE posts
		SET title = $1, body = $2, type = $3, category = $4, customer_id = $5
		WHERE post_id = $6
	`
	_, err := r.db.ExecContext(ctx, q,
		original.Title,
		original.Body,
		original.Type,
		original.Category,
		original.CustomerID,
		original.PostID,
	)
	if err != nil {
		return nil, false, err
	}
	return original, true, nil
}

// Remove deletes the post row.
func (r *PostPostgres) Remove(ctx context.Context, p *model.Post) error {
	const q = `DELETE FROM posts WHERE post_id = $1`
	_, err := r.db.ExecContext(ctx, q, p.PostID)
	return err
}

// Persist is a no-op: statements above execute eagerly.
func (r *PostPostgres) Persist(ctx context.Context) error {
	return nil
}
