package domain

import "time"

type Hotel struct {
	ID            int64
	OwnerID       int64
	Name          string
	Address       *string
	City          *string
	Country       *string
	Description   *string
	PricePerNight float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type HotelImage struct {
	ID      int64
	HotelID int64
	URL     string
	IsMain  bool
}

type Room struct {
	ID       int64
	HotelID  int64
	RoomType string
	Price    float64
	Capacity int
}

// HotelSummary is the list-page projection: one row per hotel with its
// main image pre-joined.
type HotelSummary struct {
	ID            int64
	Name          string
	City          *string
	Country       *string
	PricePerNight float64
	MainImage     *string
}

// HotelDetail carries the hotel plus its images and rooms, assembled by
// the repository with query-time joins.
type HotelDetail struct {
	Hotel  Hotel
	Images []HotelImage
	Rooms  []Room
}

type HotelsQuery struct {
	City  *string
	Limit int
}
