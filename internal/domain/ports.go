package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	CreateUser(ctx context.Context, u *User) error
	UserByID(ctx context.Context, id int64) (User, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByPhone(ctx context.Context, phone string) (User, error)
	EnableUser(ctx context.Context, id int64) error
	SetPasswordHash(ctx context.Context, id int64, hash string) error
}

type OtpRepository interface {
	// ReplaceOtp removes any previous code for the user and stores the new one.
	ReplaceOtp(ctx context.Context, o *Otp) error
	OtpByUserID(ctx context.Context, userID int64) (Otp, error)
	DeleteOtp(ctx context.Context, userID int64) error
}

type HotelRepository interface {
	ListHotels(ctx context.Context, q HotelsQuery) ([]HotelSummary, error)
	HotelByID(ctx context.Context, id int64) (HotelDetail, error)
	RoomByID(ctx context.Context, id int64) (Room, error)
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, b *Booking) error
	BookingByID(ctx context.Context, id int64) (Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status BookingStatus) error
	BookingsByUser(ctx context.Context, userID int64) ([]Booking, error)
	// UpcomingBookings returns the user's bookings whose check-out is after cutoff.
	UpcomingBookings(ctx context.Context, userID int64, cutoff time.Time) ([]Booking, error)
	// ConfirmedBookings returns all CONFIRMED bookings regardless of date.
	ConfirmedBookings(ctx context.Context, userID int64) ([]Booking, error)
}

type ReviewRepository interface {
	// CreateReview persists the review; a duplicate (user, room) pair is
	// reported as ErrDuplicateReview via the unique index.
	CreateReview(ctx context.Context, r *Review) error
	ReviewByID(ctx context.Context, id int64) (Review, error)
	UpdateReview(ctx context.Context, id int64, rating int, comment string) error
	ReviewsByRoom(ctx context.Context, roomID int64) ([]Review, error)
	ReviewsByUser(ctx context.Context, userID int64) ([]Review, error)
	HasUserReviewedRoom(ctx context.Context, userID, roomID int64) (bool, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

type SMSSender interface {
	SendSMS(ctx context.Context, phone, message string) error
}

type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, e BookingEvent) error
}
