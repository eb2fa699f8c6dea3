package mysql

import (
	"context"
	"database/sql"

	"staybook/internal/domain"
)

func (r *Repo) CreateUser(ctx context.Context, u *domain.User) error {
	res, err := r.db.ExecContext(ctx, insertUserSQL,
		u.FullName, u.Email, u.PhoneNumber, u.PasswordHash,
		valTime(u.DateOfBirth), valStr(u.Gender), u.Enabled,
	)
	if err != nil {
		if isDupKey(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

func (r *Repo) UserByID(ctx context.Context, id int64) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, userByIDSQL, id))
}

func (r *Repo) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, userByEmailSQL, email))
}

func (r *Repo) UserByPhone(ctx context.Context, phone string) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, userByPhoneSQL, phone))
}

func (r *Repo) EnableUser(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, enableUserSQL, id)
	return err
}

func (r *Repo) SetPasswordHash(ctx context.Context, id int64, hash string) error {
	_, err := r.db.ExecContext(ctx, setPasswordSQL, hash, id)
	return err
}

func (r *Repo) scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	var pwd sql.NullString
	var dob sql.NullTime
	var gender sql.NullString
	if err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PhoneNumber, &pwd, &dob, &gender, &u.Enabled); err != nil {
		if err == sql.ErrNoRows {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	if pwd.Valid {
		u.PasswordHash = pwd.String
	}
	u.DateOfBirth = nullTime(dob)
	u.Gender = nullStr(gender)
	return u, nil
}

// ---- otps ----

func (r *Repo) ReplaceOtp(ctx context.Context, o *domain.Otp) error {
	_, err := r.db.ExecContext(ctx, replaceOtpSQL, o.UserID, o.Code, o.ExpiresAt)
	return err
}

func (r *Repo) OtpByUserID(ctx context.Context, userID int64) (domain.Otp, error) {
	var o domain.Otp
	err := r.db.QueryRowContext(ctx, otpByUserSQL, userID).Scan(&o.ID, &o.UserID, &o.Code, &o.ExpiresAt)
	if err == sql.ErrNoRows {
		return domain.Otp{}, domain.ErrNotFound
	}
	return o, err
}

func (r *Repo) DeleteOtp(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, deleteOtpSQL, userID)
	return err
}
