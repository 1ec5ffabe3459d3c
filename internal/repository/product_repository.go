package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/keyvanm/inventory-sales-api/internal/model"
)

// ProductRepo provides CRUD operations for products plus the conditional
// stock decrement used by sales. All stock mutations flow either through
// DecrementStock or a full Update; nothing else writes stock_quantity.
type ProductRepo struct{ db *sql.DB }

// NewProductRepo returns a ProductRepo bound to the given database.
func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = "id,name,description,price,stock_quantity,category_id,supplier_id"

// Create inserts a product and returns it with the generated ID.
func (r *ProductRepo) Create(ctx context.Context, p model.Product) (model.Product, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO products (name, description, price, stock_quantity, category_id, supplier_id) VALUES (?,?,?,?,?,?)",
		p.Name, p.Description, p.Price, p.StockQuantity, p.CategoryID, p.SupplierID)
	if err != nil {
		return model.Product{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Product{}, err
	}
	p.ID = uint64(id)
	return p, nil
}

// GetByID fetches a single product. ErrProductNotFound when no row exists.
func (r *ProductRepo) GetByID(ctx context.Context, id uint64) (model.Product, error) {
	var p model.Product
	err := r.db.QueryRowContext(ctx,
		"SELECT "+productCols+" FROM products WHERE id=? LIMIT 1",
		id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQuantity, &p.CategoryID, &p.SupplierID)
	if err == sql.ErrNoRows {
		return model.Product{}, ErrProductNotFound
	}
	return p, err
}

// List returns products with offset/limit paging and an optional name
// substring filter.
func (r *ProductRepo) List(ctx context.Context, skip, limit int, search string) ([]model.Product, error) {
	q := "SELECT " + productCols + " FROM products"
	args := []interface{}{}
	if s := strings.TrimSpace(search); s != "" {
		q += " WHERE name LIKE ?"
		args = append(args, "%"+s+"%")
	}
	q += " ORDER BY id LIMIT ? OFFSET ?"
	args = append(args, limit, skip)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQuantity, &p.CategoryID, &p.SupplierID); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// All returns every product ordered by id. Used by the inventory report.
func (r *ProductRepo) All(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+productCols+" FROM products ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQuantity, &p.CategoryID, &p.SupplierID); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update replaces all mutable columns of a product. ErrProductNotFound when
// the id does not exist.
func (r *ProductRepo) Update(ctx context.Context, id uint64, p model.Product) (model.Product, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE products SET name=?, description=?, price=?, stock_quantity=?, category_id=?, supplier_id=? WHERE id=?",
		p.Name, p.Description, p.Price, p.StockQuantity, p.CategoryID, p.SupplierID, id)
	if err != nil {
		return model.Product{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return model.Product{}, err
	} else if n == 0 {
		// RowsAffected is also 0 when the update was a no-op on an existing
		// row, so confirm existence before reporting not found.
		if _, err := r.GetByID(ctx, id); err != nil {
			return model.Product{}, err
		}
	}
	p.ID = id
	return p, nil
}

// Delete removes a product. ErrProductNotFound when the id does not exist.
func (r *ProductRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}

// DecrementStock atomically subtracts qty from a product's stock and
// returns the new quantity. The guard `stock_quantity >= ?` lives in the
// UPDATE itself, so the check and the write happen under one row lock and
// two concurrent sales can never jointly oversell. Zero rows affected means
// either the product is missing or the stock is short; a follow-up read in
// the same transaction distinguishes the two. The decrement is
// all-or-nothing: on ErrInsufficientStock the row is untouched.
func (r *ProductRepo) DecrementStock(ctx context.Context, id uint64, qty int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		"UPDATE products SET stock_quantity = stock_quantity - ? WHERE id=? AND stock_quantity >= ?",
		qty, id, qty)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		var cur int64
		err := tx.QueryRowContext(ctx, "SELECT stock_quantity FROM products WHERE id=?", id).Scan(&cur)
		if err == sql.ErrNoRows {
			return 0, ErrProductNotFound
		}
		if err != nil {
			return 0, err
		}
		return cur, ErrInsufficientStock
	}

	var newStock int64
	if err := tx.QueryRowContext(ctx, "SELECT stock_quantity FROM products WHERE id=?", id).Scan(&newStock); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return newStock, nil
}
