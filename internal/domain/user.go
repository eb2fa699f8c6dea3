package domain

import "time"

type User struct {
	ID           int64
	FullName     string
	Email        string
	PhoneNumber  string
	PasswordHash string
	DateOfBirth  *time.Time
	Gender       *string
	Enabled      bool
}

// Otp is a one-time verification code. At most one row exists per user;
// resending replaces the previous code.
type Otp struct {
	ID        int64
	UserID    int64
	Code      string
	ExpiresAt time.Time
}

func (o Otp) Expired(now time.Time) bool { return now.After(o.ExpiresAt) }
