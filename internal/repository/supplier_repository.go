package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/keyvanm/inventory-sales-api/internal/model"
)

// SupplierRepo provides access to the 'suppliers' reference table.
type SupplierRepo struct{ db *sql.DB }

func NewSupplierRepo(db *sql.DB) *SupplierRepo { return &SupplierRepo{db: db} }

// Create inserts a supplier and returns it with the generated ID.
// Duplicate names map to ErrNameExists via the unique index.
func (r *SupplierRepo) Create(ctx context.Context, name, contactEmail string) (model.Supplier, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO suppliers (name, contact_email) VALUES (?,?)", name, contactEmail)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.Supplier{}, ErrNameExists
		}
		return model.Supplier{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Supplier{}, err
	}
	return model.Supplier{ID: uint64(id), Name: name, ContactEmail: contactEmail}, nil
}

// List returns all suppliers ordered by id.
func (r *SupplierRepo) List(ctx context.Context) ([]model.Supplier, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id,name,contact_email FROM suppliers ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Supplier, 0)
	for rows.Next() {
		var s model.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactEmail); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
