package model

import "time"

// User represents an application user record as stored in the `users`
// table.  Each field corresponds to a column in the database.  The json
// tags are omitted because these structs are used internally by the
// repository layer; handlers define separate response types with the
// appropriate JSON tags.  There is no deregistration path, so rows are
// created once and never updated or deleted.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name; also the subject claim in tokens.
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
}
