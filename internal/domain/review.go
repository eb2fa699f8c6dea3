package domain

import "time"

// Review is a rating+comment left by a user for a room, at most one per
// (user, room) pair. AuthorName is filled by read queries that join users;
// write paths ignore it.
type Review struct {
	ID         int64
	UserID     int64
	RoomID     int64
	Rating     int
	Comment    string
	CreatedAt  time.Time
	AuthorName *string
}
