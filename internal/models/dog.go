package models

import "time"

// Dog is a record owned by a single user. The auth layer only cares about the
// UserID foreign key; the rest of the shape is opaque to it.
type Dog struct {
	ID        string    `json:"id"`
	Roast     string    `json:"roast"`
	Dog       string    `json:"dog"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
