package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"crmapi/internal/model"
	"crmapi/internal/repository"
)

// CustomerPostgres is a PostgreSQL implementation of repository.CustomerRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type CustomerPostgres struct {
	db *sql.DB
}

// NewCustomerPostgres creates a new CustomerPostgres repository.
func NewCustomerPostgres(db *sql.DB) *CustomerPostgres {
	return &CustomerPostgres{db: db}
}

var _ repository.CustomerRepository = (*CustomerPostgres)(nil)

// List returns all customers ordered by identity.
func (r *CustomerPostgres) List(ctx context.Context) ([]model.Customer, error) {
	const q = `
		SELECT customer_id, name
		FROM customers
		ORDER BY customer_id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.CustomerID, &c.Name); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single customer by its identity.
func (r *CustomerPostgres) FindByID(ctx context.Context, id int) (*model.Customer, error) {
	const q = `
		SELECT customer_id, name
		FROM customers
		WHERE customer_id = $1
	`
	var c model.Customer
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.CustomerID, &c.Name); err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByIDWithPosts fetches a customer and attaches all posts it owns.
// Two queries, same as FindByID followed by a filtered post scan.
func (r *CustomerPostgres) FindByIDWithPosts(ctx context.Context, id int) (*model.Customer, error) {
	c, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	const q = `
		SELECT post_id, title, body, type, category, customer_id
		FROM posts
		WHERE customer_id = $1
		ORDER BY post_id
	`
	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.PostID, &p.Title, &p.Body, &p.Type, &p.Category, &p.CustomerID); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	c.Posts = posts
	return c, nil
}

// FindByName fetches a customer by its exact name.
func (r *CustomerPostgres) FindByName(ctx context.Context, name string) (*model.Customer, error) {
	const q = `
		SELECT customer_id, name
		FROM customers
		WHERE name = $1
	`
	var c model.Customer
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&c.CustomerID, &c.Name); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new customer row and returns the stored record.
func (r *CustomerPostgres) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	const q = `
		INSERT INTO customers (name)
		VALUES ($1)
		RETURNING customer_id, name
	`
	var out model.Customer
	if err := r.db.QueryRowContext(ctx, q, c.Name).Scan(&out.CustomerID, &out.Name); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update copies the field values of edited onto original and writes the row.
// The write is skipped when no field differs.
func (r *CustomerPostgres) Update(ctx context.Context, edited, original *model.Customer) (*model.Customer, bool, error) {
	changed := original.Name != edited.Name
	original.Name = edited.Name
	if !changed {
		return original, false, nil
	}

	const q = `
		UPDATE customers
		SET name = $1
		WHERE customer_id = $2
	`
	if _, err := r.db.ExecContext(ctx, q, original.Name, original.CustomerID); err != nil {
		return nil, false, err
	}
	return original, true, nil
}

// Remove deletes the customer row.
func (r *CustomerPostgres) Remove(ctx context.Context, c *model.Customer) error {
	const q = `DELETE FROM customers WHERE customer_id = $1`
	_, err := r.db.ExecContext(ctx, q, c.CustomerID)
	return err
}

// RemoveRange deletes the given posts in a single statement.
func (r *CustomerPostgres) RemoveRange(ctx context.Context, posts []model.Post) error {
	if len(posts) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(posts))
	args := make([]any, 0, len(posts))
	for i, p := range posts {
		placeholders = append(placeholders, "$"+strconv.Itoa(i+1))
		args = append(args, p.PostID)
	}

	q := `DELETE FROM posts WHERE post_id IN (` + strings.Join(placeholders, ", ") + `)`
	_, err := r.db.ExecContext(ctx, q, args...)
	return err
}

// Persist is a no-op: statements above execute eagerly.
func (r *CustomerPostgres) Persist(ctx context.Context) error {
	return nil
}
