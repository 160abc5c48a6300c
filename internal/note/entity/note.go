package entity

import "time"

// Note is a private text entry owned by a single user.
type Note struct {
	ID        int64
	UserID    int64
	Content   string
	CreatedAt time.Time
}
