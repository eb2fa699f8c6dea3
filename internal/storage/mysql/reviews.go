package mysql

import (
	"context"
	"database/sql"

	"staybook/internal/domain"
)

func (r *Repo) CreateReview(ctx context.Context, rv *domain.Review) error {
	res, err := r.db.ExecContext(ctx, insertReviewSQL, rv.UserID, rv.RoomID, rv.Rating, rv.Comment)
	if err != nil {
		// unique index on (user_id, room_id) closes the concurrent-create race
		if isDupKey(err) {
			return domain.ErrDuplicateReview
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rv.ID = id
	stored, err := r.ReviewByID(ctx, id)
	if err != nil {
		return err
	}
	*rv = stored
	return nil
}

func (r *Repo) ReviewByID(ctx context.Context, id int64) (domain.Review, error) {
	rv, err := scanReview(r.db.QueryRowContext(ctx, reviewByIDSQL, id))
	if err == sql.ErrNoRows {
		return domain.Review{}, domain.ErrNotFound
	}
	return rv, err
}

func (r *Repo) UpdateReview(ctx context.Context, id int64, rating int, comment string) error {
	res, err := r.db.ExecContext(ctx, updateReviewSQL, rating, comment, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// zero rows also happens when values are unchanged; treat as success
		// only if the row exists
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM reviews WHERE review_id = ?)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *Repo) ReviewsByRoom(ctx context.Context, roomID int64) ([]domain.Review, error) {
	return r.queryReviews(ctx, reviewsByRoomSQL, roomID)
}

func (r *Repo) ReviewsByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	return r.queryReviews(ctx, reviewsByUserSQL, userID)
}

func (r *Repo) HasUserReviewedRoom(ctx context.Context, userID, roomID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, reviewExistsSQL, userID, roomID).Scan(&exists)
	return exists, err
}

func (r *Repo) queryReviews(ctx context.Context, query string, args ...any) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func scanReview(row rowScanner) (domain.Review, error) {
	var rv domain.Review
	var author sql.NullString
	err := row.Scan(&rv.ID, &rv.UserID, &rv.RoomID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &author)
	if err != nil {
		return domain.Review{}, err
	}
	rv.AuthorName = nullStr(author)
	return rv, nil
}
