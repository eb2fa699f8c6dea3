package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"staybook/internal/domain"
)

// BookingService owns the booking lifecycle: price calculation on create,
// owner-checked status transitions, and the user-facing list queries.
type BookingService struct {
	bookings domain.BookingRepository
	hotels   domain.HotelRepository
	events   domain.EventPublisher // optional
	now      func() time.Time
}

func NewBookingService(b domain.BookingRepository, h domain.HotelRepository, ev domain.EventPublisher) *BookingService {
	return &BookingService{bookings: b, hotels: h, events: ev, now: time.Now}
}

type CreateBookingInput struct {
	RoomID   int64
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
	Infants  int
}

func (s *BookingService) CreateBooking(ctx context.Context, userID int64, in CreateBookingInput) (BookingView, error) {
	room, err := s.hotels.RoomByID(ctx, in.RoomID)
	if err != nil {
		return BookingView{}, err
	}

	nights := int(in.CheckOut.Sub(in.CheckIn) / (24 * time.Hour))
	if nights <= 0 {
		return BookingView{}, domain.ErrInvalidDateRange
	}
	if in.Adults < 0 || in.Children < 0 || in.Infants < 0 || in.Adults+in.Children <= 0 {
		return BookingView{}, domain.ErrInvalidGuests
	}

	// infants stay free
	total := room.Price * float64(in.Adults+in.Children) * float64(nights)

	b := domain.Booking{
		UserID:     userID,
		RoomID:     room.ID,
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		TotalPrice: total,
		Status:     domain.BookingPending,
		Adults:     in.Adults,
		Children:   in.Children,
		Infants:    in.Infants,
	}
	if err := s.bookings.CreateBooking(ctx, &b); err != nil {
		return BookingView{}, err
	}
	s.publish(ctx, "booking.created", b)
	return toBookingView(b), nil
}

func (s *BookingService) CancelBooking(ctx context.Context, callerID, bookingID int64) (BookingView, error) {
	return s.transition(ctx, callerID, bookingID, domain.BookingCancelled)
}

func (s *BookingService) ConfirmBooking(ctx context.Context, callerID, bookingID int64) (BookingView, error) {
	return s.transition(ctx, callerID, bookingID, domain.BookingConfirmed)
}

// transition enforces ownership plus the state machine: CONFIRM only from
// PENDING, CANCEL from PENDING or CONFIRMED, CANCELLED is terminal.
func (s *BookingService) transition(ctx context.Context, callerID, bookingID int64, to domain.BookingStatus) (BookingView, error) {
	b, err := s.bookings.BookingByID(ctx, bookingID)
	if err != nil {
		return BookingView{}, err
	}
	if b.UserID != callerID {
		return BookingView{}, domain.ErrForbidden
	}
	switch {
	case b.Status == domain.BookingCancelled:
		return BookingView{}, domain.ErrAlreadyCancelled
	case to == domain.BookingConfirmed && b.Status == domain.BookingConfirmed:
		return BookingView{}, domain.ErrAlreadyConfirmed
	}
	if err := s.bookings.UpdateBookingStatus(ctx, b.ID, to); err != nil {
		return BookingView{}, err
	}
	b.Status = to
	if to == domain.BookingConfirmed {
		s.publish(ctx, "booking.confirmed", b)
	} else {
		s.publish(ctx, "booking.cancelled", b)
	}
	return toBookingView(b), nil
}

func (s *BookingService) BookingByID(ctx context.Context, id int64) (BookingView, error) {
	b, err := s.bookings.BookingByID(ctx, id)
	if err != nil {
		return BookingView{}, err
	}
	return toBookingView(b), nil
}

func (s *BookingService) UserBookings(ctx context.Context, userID int64) ([]BookingView, error) {
	bs, err := s.bookings.BookingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toBookingViews(bs), nil
}

func (s *BookingService) UpcomingBookings(ctx context.Context, userID int64) ([]BookingView, error) {
	bs, err := s.bookings.UpcomingBookings(ctx, userID, s.now().UTC().Truncate(24*time.Hour))
	if err != nil {
		return nil, err
	}
	return toBookingViews(bs), nil
}

// PastBookings returns every CONFIRMED booking regardless of date. The name
// is kept from the public API; the date-blind behavior is deliberate.
func (s *BookingService) PastBookings(ctx context.Context, userID int64) ([]BookingView, error) {
	bs, err := s.bookings.ConfirmedBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toBookingViews(bs), nil
}

// publish is best-effort; a broker outage never fails the request.
func (s *BookingService) publish(ctx context.Context, typ string, b domain.Booking) {
	if s.events == nil {
		return
	}
	e := domain.BookingEvent{
		Type:       typ,
		BookingID:  b.ID,
		UserID:     b.UserID,
		RoomID:     b.RoomID,
		Status:     b.Status,
		OccurredAt: s.now().UTC(),
	}
	if err := s.events.PublishBookingEvent(ctx, e); err != nil {
		log.Warn().Err(err).Str("type", typ).Int64("booking_id", b.ID).Msg("publish booking event failed")
	}
}
