package model

// Product mirrors the `products` table.  Category and supplier are kept as
// id references resolved by explicit lookup at read time rather than
// embedded object graphs, so rows can be scanned and serialized without
// touching related tables.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – product name (indexed, searchable).
//  Description   – free-form description, may be empty.
//  Price         – unit price.
//  StockQuantity – on-hand stock; never negative.  Mutated only by the
//                  conditional decrement in ProductRepo or a full update.
//  CategoryID    – foreign key into categories.
//  SupplierID    – foreign key into suppliers.
type Product struct {
	ID            uint64  `json:"id"`             // products.id
	Name          string  `json:"name"`           // products.name
	Description   string  `json:"description"`    // products.description
	Price         float64 `json:"price"`          // products.price
	StockQuantity int64   `json:"stock_quantity"` // products.stock_quantity
	CategoryID    uint64  `json:"category_id"`    // products.category_id
	SupplierID    uint64  `json:"supplier_id"`    // products.supplier_id
}
