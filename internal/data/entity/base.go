package entity

import (
	"time"
)

// Base carries the store-managed columns. Version is the optimistic
// concurrency token, bumped on every successful update.
type Base struct {
	ID        int64     `db:"id"`
	Version   int32     `db:"version"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
