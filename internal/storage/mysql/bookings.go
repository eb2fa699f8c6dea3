package mysql

import (
	"context"
	"database/sql"
	"time"

	"staybook/internal/domain"
)

func (r *Repo) CreateBooking(ctx context.Context, b *domain.Booking) error {
	res, err := r.db.ExecContext(ctx, insertBookingSQL,
		b.UserID, b.RoomID, b.CheckIn, b.CheckOut, b.TotalPrice,
		string(b.Status), b.Adults, b.Children, b.Infants,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = id
	// read back defaults (created_at, updated_at) and joined display fields
	stored, err := r.BookingByID(ctx, id)
	if err != nil {
		return err
	}
	*b = stored
	return nil
}

func (r *Repo) BookingByID(ctx context.Context, id int64) (domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRowContext(ctx, bookingByIDSQL, id))
	if err == sql.ErrNoRows {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, err
}

func (r *Repo) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	res, err := r.db.ExecContext(ctx, updateBookingStatusSQL, string(status), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) BookingsByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return r.queryBookings(ctx, bookingsByUserSQL, userID)
}

func (r *Repo) UpcomingBookings(ctx context.Context, userID int64, cutoff time.Time) ([]domain.Booking, error) {
	return r.queryBookings(ctx, upcomingBookingsSQL, userID, cutoff)
}

func (r *Repo) ConfirmedBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return r.queryBookings(ctx, confirmedBookingsSQL, userID)
}

func (r *Repo) queryBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

type rowScanner interface{ Scan(dst ...any) error }

func scanBooking(row rowScanner) (domain.Booking, error) {
	var b domain.Booking
	var status string
	var roomType, hotelName sql.NullString
	err := row.Scan(
		&b.ID, &b.UserID, &b.RoomID, &b.CheckIn, &b.CheckOut, &b.TotalPrice,
		&status, &b.Adults, &b.Children, &b.Infants,
		&b.CreatedAt, &b.UpdatedAt, &roomType, &hotelName,
	)
	if err != nil {
		return domain.Booking{}, err
	}
	b.Status = domain.BookingStatus(status)
	b.RoomType = nullStr(roomType)
	b.HotelName = nullStr(hotelName)
	return b, nil
}
