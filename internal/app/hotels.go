package app

import (
	"context"
	"fmt"
	"time"

	"staybook/internal/domain"
)

// HotelQueryService serves the read-only catalog surface through the cache.
type HotelQueryService struct {
	hotels   domain.HotelRepository
	cache    domain.Cache // optional
	cacheTTL time.Duration
}

func NewHotelQueryService(h domain.HotelRepository, c domain.Cache, ttl time.Duration) *HotelQueryService {
	return &HotelQueryService{hotels: h, cache: c, cacheTTL: ttl}
}

func (s *HotelQueryService) HotelByID(ctx context.Context, id int64) (HotelDetailView, error) {
	key := fmt.Sprintf("hotel:%d", id)
	if s.cache != nil {
		var cached HotelDetailView
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}
	d, err := s.hotels.HotelByID(ctx, id)
	if err != nil {
		return HotelDetailView{}, err
	}
	out := toHotelDetailView(d)
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func (s *HotelQueryService) Hotels(ctx context.Context, q domain.HotelsQuery) ([]HotelSummaryView, error) {
	city := ""
	if q.City != nil {
		city = *q.City
	}
	key := fmt.Sprintf("hotels:%s:%d", city, q.Limit)
	if s.cache != nil {
		var cached []HotelSummaryView
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}
	hs, err := s.hotels.ListHotels(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]HotelSummaryView, 0, len(hs))
	for _, h := range hs {
		out = append(out, toHotelSummaryView(h))
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func (s *HotelQueryService) RoomByID(ctx context.Context, id int64) (RoomView, error) {
	r, err := s.hotels.RoomByID(ctx, id)
	if err != nil {
		return RoomView{}, err
	}
	return RoomView{ID: r.ID, RoomType: r.RoomType, Price: r.Price, Capacity: r.Capacity}, nil
}
