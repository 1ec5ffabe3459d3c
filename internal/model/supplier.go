package model

// Supplier is a row in the `suppliers` table.  Names are unique; the
// contact email is informational only.
type Supplier struct {
	ID           uint64 `json:"id"`            // suppliers.id
	Name         string `json:"name"`          // suppliers.name
	ContactEmail string `json:"contact_email"` // suppliers.contact_email
}
