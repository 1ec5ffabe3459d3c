package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/keyvanm/inventory-sales-api/internal/model"
)

// CategoryRepo provides access to the 'categories' reference table.
type CategoryRepo struct{ db *sql.DB }

func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{db: db} }

// Create inserts a category and returns it with the generated ID.
// Duplicate names map to ErrNameExists via the unique index.
func (r *CategoryRepo) Create(ctx context.Context, name string) (model.Category, error) {
	res, err := r.db.ExecContext(ctx, "INSERT INTO categories (name) VALUES (?)", name)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.Category{}, ErrNameExists
		}
		return model.Category{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Category{}, err
	}
	return model.Category{ID: uint64(id), Name: name}, nil
}

// List returns all categories ordered by id.
func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id,name FROM categories ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
