package app

import (
	"time"

	"staybook/internal/domain"
)

// Response-shaped views. Mapping is a flatten-and-pick pass with no logic
// beyond nil checks; dates serialize as 2006-01-02.

const dateLayout = "2006-01-02"

type UserView struct {
	ID          int64   `json:"id"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Enabled     bool    `json:"enabled"`
}

type AuthView struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserView  `json:"user"`
}

type BookingView struct {
	ID         int64   `json:"id"`
	RoomID     int64   `json:"room_id"`
	RoomType   *string `json:"room_type,omitempty"`
	HotelName  *string `json:"hotel_name,omitempty"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
	Adults     int     `json:"adults_count"`
	Children   int     `json:"children_count"`
	Infants    int     `json:"infants_count"`
	CreatedAt  string  `json:"created_at"`
}

type ReviewView struct {
	ID         int64   `json:"id"`
	RoomID     int64   `json:"room_id"`
	Rating     int     `json:"rating"`
	Comment    string  `json:"comment"`
	AuthorName *string `json:"author_name,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type HotelSummaryView struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	City          *string `json:"city,omitempty"`
	Country       *string `json:"country,omitempty"`
	PricePerNight float64 `json:"price_per_night"`
	MainImage     *string `json:"main_image,omitempty"`
}

type HotelImageView struct {
	ID     int64  `json:"id"`
	URL    string `json:"url"`
	IsMain bool   `json:"is_main"`
}

type RoomView struct {
	ID       int64   `json:"id"`
	RoomType string  `json:"room_type"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
}

type HotelDetailView struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Address       *string          `json:"address,omitempty"`
	City          *string          `json:"city,omitempty"`
	Country       *string          `json:"country,omitempty"`
	Description   *string          `json:"description,omitempty"`
	PricePerNight float64          `json:"price_per_night"`
	Images        []HotelImageView `json:"images"`
	Rooms         []RoomView       `json:"rooms"`
}

func toUserView(u domain.User) UserView {
	v := UserView{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Gender:      u.Gender,
		Enabled:     u.Enabled,
	}
	if u.DateOfBirth != nil {
		d := u.DateOfBirth.Format(dateLayout)
		v.DateOfBirth = &d
	}
	return v
}

func toBookingView(b domain.Booking) BookingView {
	return BookingView{
		ID:         b.ID,
		RoomID:     b.RoomID,
		RoomType:   b.RoomType,
		HotelName:  b.HotelName,
		CheckIn:    b.CheckIn.Format(dateLayout),
		CheckOut:   b.CheckOut.Format(dateLayout),
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		Adults:     b.Adults,
		Children:   b.Children,
		Infants:    b.Infants,
		CreatedAt:  b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toBookingViews(bs []domain.Booking) []BookingView {
	out := make([]BookingView, 0, len(bs))
	for _, b := range bs {
		out = append(out, toBookingView(b))
	}
	return out
}

func toReviewView(r domain.Review) ReviewView {
	return ReviewView{
		ID:         r.ID,
		RoomID:     r.RoomID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		AuthorName: r.AuthorName,
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toReviewViews(rs []domain.Review) []ReviewView {
	out := make([]ReviewView, 0, len(rs))
	for _, r := range rs {
		out = append(out, toReviewView(r))
	}
	return out
}

func toHotelSummaryView(h domain.HotelSummary) HotelSummaryView {
	return HotelSummaryView{
		ID:            h.ID,
		Name:          h.Name,
		City:          h.City,
		Country:       h.Country,
		PricePerNight: h.PricePerNight,
		MainImage:     h.MainImage,
	}
}

func toHotelDetailView(d domain.HotelDetail) HotelDetailView {
	v := HotelDetailView{
		ID:            d.Hotel.ID,
		Name:          d.Hotel.Name,
		Address:       d.Hotel.Address,
		City:          d.Hotel.City,
		Country:       d.Hotel.Country,
		Description:   d.Hotel.Description,
		PricePerNight: d.Hotel.PricePerNight,
		Images:        make([]HotelImageView, 0, len(d.Images)),
		Rooms:         make([]RoomView, 0, len(d.Rooms)),
	}
	for _, img := range d.Images {
		v.Images = append(v.Images, HotelImageView{ID: img.ID, URL: img.URL, IsMain: img.IsMain})
	}
	for _, r := range d.Rooms {
		v.Rooms = append(v.Rooms, RoomView{ID: r.ID, RoomType: r.RoomType, Price: r.Price, Capacity: r.Capacity})
	}
	return v
}
