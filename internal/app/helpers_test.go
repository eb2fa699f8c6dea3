package app_test

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"staybook/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

// ---- fakes ----

type fakeHotelRepo struct {
	rooms  map[int64]domain.Room
	hotels map[int64]domain.HotelDetail
}

func (f *fakeHotelRepo) ListHotels(ctx context.Context, q domain.HotelsQuery) ([]domain.HotelSummary, error) {
	var out []domain.HotelSummary
	for _, d := range f.hotels {
		out = append(out, domain.HotelSummary{ID: d.Hotel.ID, Name: d.Hotel.Name, City: d.Hotel.City, PricePerNight: d.Hotel.PricePerNight})
	}
	return out, nil
}

func (f *fakeHotelRepo) HotelByID(ctx context.Context, id int64) (domain.HotelDetail, error) {
	d, ok := f.hotels[id]
	if !ok {
		return domain.HotelDetail{}, domain.ErrNotFound
	}
	return d, nil
}

func (f *fakeHotelRepo) RoomByID(ctx context.Context, id int64) (domain.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return domain.Room{}, domain.ErrNotFound
	}
	return r, nil
}

type fakeBookingRepo struct {
	nextID   int64
	bookings map[int64]domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[int64]domain.Booking{}}
}

func (f *fakeBookingRepo) CreateBooking(ctx context.Context, b *domain.Booking) error {
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookingRepo) BookingByID(ctx context.Context, id int64) (domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Status = status
	f.bookings[id] = b
	return nil
}

func (f *fakeBookingRepo) BookingsByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return f.filter(func(b domain.Booking) bool { return b.UserID == userID }), nil
}

func (f *fakeBookingRepo) UpcomingBookings(ctx context.Context, userID int64, cutoff time.Time) ([]domain.Booking, error) {
	return f.filter(func(b domain.Booking) bool { return b.UserID == userID && b.CheckOut.After(cutoff) }), nil
}

func (f *fakeBookingRepo) ConfirmedBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return f.filter(func(b domain.Booking) bool {
		return b.UserID == userID && b.Status == domain.BookingConfirmed
	}), nil
}

func (f *fakeBookingRepo) filter(keep func(domain.Booking) bool) []domain.Booking {
	var out []domain.Booking
	for id := int64(1); id <= f.nextID; id++ {
		if b, ok := f.bookings[id]; ok && keep(b) {
			out = append(out, b)
		}
	}
	return out
}

type fakeReviewRepo struct {
	nextID  int64
	reviews map[int64]domain.Review
}

func newFakeReviewRepo() *fakeReviewRepo { return &fakeReviewRepo{reviews: map[int64]domain.Review{}} }

func (f *fakeReviewRepo) CreateReview(ctx context.Context, r *domain.Review) error {
	for _, ex := range f.reviews {
		if ex.UserID == r.UserID && ex.RoomID == r.RoomID {
			return domain.ErrDuplicateReview
		}
	}
	f.nextID++
	r.ID = f.nextID
	r.CreatedAt = time.Now().UTC().Add(time.Duration(f.nextID) * time.Second)
	f.reviews[r.ID] = *r
	return nil
}

func (f *fakeReviewRepo) ReviewByID(ctx context.Context, id int64) (domain.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return domain.Review{}, domain.ErrNotFound
	}
	return r, nil
}

func (f *fakeReviewRepo) UpdateReview(ctx context.Context, id int64, rating int, comment string) error {
	r, ok := f.reviews[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.Rating = rating
	r.Comment = comment
	f.reviews[id] = r
	return nil
}

func (f *fakeReviewRepo) ReviewsByRoom(ctx context.Context, roomID int64) ([]domain.Review, error) {
	// newest first, matching the SQL ordering
	var out []domain.Review
	for id := f.nextID; id >= 1; id-- {
		if r, ok := f.reviews[id]; ok && r.RoomID == roomID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) ReviewsByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	var out []domain.Review
	for id := int64(1); id <= f.nextID; id++ {
		if r, ok := f.reviews[id]; ok && r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) HasUserReviewedRoom(ctx context.Context, userID, roomID int64) (bool, error) {
	for _, r := range f.reviews {
		if r.UserID == userID && r.RoomID == roomID {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct {
	nextID int64
	users  map[int64]domain.User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{users: map[int64]domain.User{}} }

func (f *fakeUserRepo) CreateUser(ctx context.Context, u *domain.User) error {
	f.nextID++
	u.ID = f.nextID
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) UserByID(ctx context.Context, id int64) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (f *fakeUserRepo) UserByPhone(ctx context.Context, phone string) (domain.User, error) {
	for _, u := range f.users {
		if u.PhoneNumber == phone {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (f *fakeUserRepo) EnableUser(ctx context.Context, id int64) error {
	u, ok := f.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Enabled = true
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) SetPasswordHash(ctx context.Context, id int64, hash string) error {
	u, ok := f.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = hash
	f.users[id] = u
	return nil
}

type fakeOtpRepo struct {
	byUser map[int64]domain.Otp
}

func newFakeOtpRepo() *fakeOtpRepo { return &fakeOtpRepo{byUser: map[int64]domain.Otp{}} }

func (f *fakeOtpRepo) ReplaceOtp(ctx context.Context, o *domain.Otp) error {
	o.ID = o.UserID
	f.byUser[o.UserID] = *o
	return nil
}

func (f *fakeOtpRepo) OtpByUserID(ctx context.Context, userID int64) (domain.Otp, error) {
	o, ok := f.byUser[userID]
	if !ok {
		return domain.Otp{}, domain.ErrNotFound
	}
	return o, nil
}

func (f *fakeOtpRepo) DeleteOtp(ctx context.Context, userID int64) error {
	delete(f.byUser, userID)
	return nil
}

type fakeCache struct {
	store map[string][]byte
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

type fakeSMS struct {
	sent []string // "phone|message"
	err  error
}

func (s *fakeSMS) SendSMS(ctx context.Context, phone, message string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, fmt.Sprintf("%s|%s", phone, message))
	return nil
}

type fakePublisher struct {
	events []domain.BookingEvent
	err    error
}

func (p *fakePublisher) PublishBookingEvent(ctx context.Context, e domain.BookingEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}
