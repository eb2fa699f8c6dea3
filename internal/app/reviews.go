package app

import (
	"context"
	"fmt"
	"time"

	"staybook/internal/domain"
)

// ReviewService owns the review lifecycle. Room review lists are served
// through the cache; create/update invalidate the room's cache key. The
// one-review-per-(user,room) rule is enforced twice: a pre-check here for a
// fast failure, and the unique index in MySQL which closes the race between
// two concurrent creates.
type ReviewService struct {
	reviews  domain.ReviewRepository
	hotels   domain.HotelRepository
	cache    domain.Cache // optional
	cacheTTL time.Duration
}

func NewReviewService(r domain.ReviewRepository, h domain.HotelRepository, c domain.Cache, ttl time.Duration) *ReviewService {
	return &ReviewService{reviews: r, hotels: h, cache: c, cacheTTL: ttl}
}

func roomReviewsKey(roomID int64) string { return fmt.Sprintf("reviews:room:%d", roomID) }

func (s *ReviewService) CreateReview(ctx context.Context, userID, roomID int64, rating int, comment string) (ReviewView, error) {
	room, err := s.hotels.RoomByID(ctx, roomID)
	if err != nil {
		return ReviewView{}, err
	}
	exists, err := s.reviews.HasUserReviewedRoom(ctx, userID, room.ID)
	if err != nil {
		return ReviewView{}, err
	}
	if exists {
		return ReviewView{}, domain.ErrDuplicateReview
	}

	r := domain.Review{UserID: userID, RoomID: room.ID, Rating: rating, Comment: comment}
	if err := s.reviews.CreateReview(ctx, &r); err != nil {
		return ReviewView{}, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, roomReviewsKey(room.ID))
	}
	return toReviewView(r), nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, callerID, reviewID int64, rating int, comment string) (ReviewView, error) {
	r, err := s.reviews.ReviewByID(ctx, reviewID)
	if err != nil {
		return ReviewView{}, err
	}
	if r.UserID != callerID {
		return ReviewView{}, domain.ErrForbidden
	}
	if err := s.reviews.UpdateReview(ctx, r.ID, rating, comment); err != nil {
		return ReviewView{}, err
	}
	r.Rating = rating
	r.Comment = comment
	if s.cache != nil {
		_ = s.cache.Del(ctx, roomReviewsKey(r.RoomID))
	}
	return toReviewView(r), nil
}

func (s *ReviewService) ReviewByID(ctx context.Context, id int64) (ReviewView, error) {
	r, err := s.reviews.ReviewByID(ctx, id)
	if err != nil {
		return ReviewView{}, err
	}
	return toReviewView(r), nil
}

// ReviewsByRoom returns a room's reviews newest first.
func (s *ReviewService) ReviewsByRoom(ctx context.Context, roomID int64) ([]ReviewView, error) {
	key := roomReviewsKey(roomID)
	if s.cache != nil {
		var cached []ReviewView
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}
	rs, err := s.reviews.ReviewsByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	out := toReviewViews(rs)
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func (s *ReviewService) ReviewsByUser(ctx context.Context, userID int64) ([]ReviewView, error) {
	rs, err := s.reviews.ReviewsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toReviewViews(rs), nil
}
