package model

// Category is a row in the `categories` table.  Names are unique.
type Category struct {
	ID   uint64 `json:"id"`   // categories.id
	Name string `json:"name"` // categories.name
}
