package domain

import "errors"

// Sentinel errors shared across services and repositories. Handlers map
// every one of these to the uniform 400 envelope; anything else is a 500.
var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrInvalidGuests    = errors.New("at least one adult or child is required")
	ErrDuplicateReview  = errors.New("room already reviewed by this user")
	ErrEmailTaken       = errors.New("email already registered")
	ErrBadCredentials   = errors.New("invalid email or password")
	ErrUserDisabled     = errors.New("account not verified")
	ErrOtpMismatch      = errors.New("otp code does not match")
	ErrOtpExpired       = errors.New("otp code expired")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	ErrAlreadyConfirmed = errors.New("booking already confirmed")
)

// IsDomainError reports whether err is one of the sentinel values above,
// i.e. a failure the client caused rather than an infrastructure fault.
func IsDomainError(err error) bool {
	for _, e := range []error{
		ErrNotFound, ErrForbidden, ErrInvalidDateRange, ErrInvalidGuests,
		ErrDuplicateReview, ErrEmailTaken, ErrBadCredentials, ErrUserDisabled,
		ErrOtpMismatch, ErrOtpExpired, ErrAlreadyCancelled, ErrAlreadyConfirmed,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
