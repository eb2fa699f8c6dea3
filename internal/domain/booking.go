package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking reserves a room for a date range. Check-in/out are date-only
// values stored at UTC midnight. RoomType and HotelName are display fields
// filled by read queries that join rooms and hotels.
type Booking struct {
	ID         int64
	UserID     int64
	RoomID     int64
	CheckIn    time.Time
	CheckOut   time.Time
	TotalPrice float64
	Status     BookingStatus
	Adults     int
	Children   int
	Infants    int
	CreatedAt  time.Time
	UpdatedAt  time.Time

	RoomType  *string
	HotelName *string
}

// BookingEvent is published on lifecycle transitions. Type is one of
// "booking.created", "booking.confirmed", "booking.cancelled".
type BookingEvent struct {
	Type       string        `json:"type"`
	BookingID  int64         `json:"booking_id"`
	UserID     int64         `json:"user_id"`
	RoomID     int64         `json:"room_id"`
	Status     BookingStatus `json:"status"`
	OccurredAt time.Time     `json:"occurred_at"`
}
