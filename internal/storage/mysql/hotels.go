package mysql

import (
	"context"
	"database/sql"

	"staybook/internal/domain"
)

func (r *Repo) ListHotels(ctx context.Context, q domain.HotelsQuery) ([]domain.HotelSummary, error) {
	city := ""
	if q.City != nil {
		city = *q.City
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, listHotelsSQL, city, city, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HotelSummary
	for rows.Next() {
		var h domain.HotelSummary
		var hcity, country, img sql.NullString
		if err := rows.Scan(&h.ID, &h.Name, &hcity, &country, &h.PricePerNight, &img); err != nil {
			return nil, err
		}
		h.City = nullStr(hcity)
		h.Country = nullStr(country)
		h.MainImage = nullStr(img)
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) HotelByID(ctx context.Context, id int64) (domain.HotelDetail, error) {
	var h domain.Hotel
	var addr, city, country, desc sql.NullString
	err := r.db.QueryRowContext(ctx, hotelByIDSQL, id).Scan(
		&h.ID, &h.OwnerID, &h.Name, &addr, &city, &country, &desc,
		&h.PricePerNight, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.HotelDetail{}, domain.ErrNotFound
		}
		return domain.HotelDetail{}, err
	}
	h.Address = nullStr(addr)
	h.City = nullStr(city)
	h.Country = nullStr(country)
	h.Description = nullStr(desc)

	d := domain.HotelDetail{Hotel: h}

	imgRows, err := r.db.QueryContext(ctx, imagesByHotelSQL, id)
	if err != nil {
		return domain.HotelDetail{}, err
	}
	defer imgRows.Close()
	for imgRows.Next() {
		var img domain.HotelImage
		if err := imgRows.Scan(&img.ID, &img.HotelID, &img.URL, &img.IsMain); err != nil {
			return domain.HotelDetail{}, err
		}
		d.Images = append(d.Images, img)
	}
	if err := imgRows.Err(); err != nil {
		return domain.HotelDetail{}, err
	}

	roomRows, err := r.db.QueryContext(ctx, roomsByHotelSQL, id)
	if err != nil {
		return domain.HotelDetail{}, err
	}
	defer roomRows.Close()
	for roomRows.Next() {
		var rm domain.Room
		if err := roomRows.Scan(&rm.ID, &rm.HotelID, &rm.RoomType, &rm.Price, &rm.Capacity); err != nil {
			return domain.HotelDetail{}, err
		}
		d.Rooms = append(d.Rooms, rm)
	}
	return d, roomRows.Err()
}

func (r *Repo) RoomByID(ctx context.Context, id int64) (domain.Room, error) {
	var rm domain.Room
	err := r.db.QueryRowContext(ctx, roomByIDSQL, id).Scan(&rm.ID, &rm.HotelID, &rm.RoomType, &rm.Price, &rm.Capacity)
	if err == sql.ErrNoRows {
		return domain.Room{}, domain.ErrNotFound
	}
	return rm, err
}

// ---- seed-only writes ----

func (r *Repo) CreateHotel(ctx context.Context, h *domain.Hotel) error {
	res, err := r.db.ExecContext(ctx, insertHotelSQL,
		h.OwnerID, h.Name, valStr(h.Address), valStr(h.City), valStr(h.Country),
		valStr(h.Description), h.PricePerNight,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = id
	return nil
}

func (r *Repo) CreateHotelImage(ctx context.Context, img *domain.HotelImage) error {
	res, err := r.db.ExecContext(ctx, insertHotelImageSQL, img.HotelID, img.URL, img.IsMain)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	img.ID = id
	return nil
}

func (r *Repo) CreateRoom(ctx context.Context, rm *domain.Room) error {
	res, err := r.db.ExecContext(ctx, insertRoomSQL, rm.HotelID, rm.RoomType, rm.Price, rm.Capacity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rm.ID = id
	return nil
}
