package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"staybook/internal/domain"
)

// UserService covers registration with OTP verification, password setup and
// login. Caller identity is always an explicit argument; services never
// reach into ambient session state.
type UserService struct {
	users      domain.UserRepository
	otps       domain.OtpRepository
	sms        domain.SMSSender // optional
	tokens     TokenIssuer
	bcryptCost int
	otpTTL     time.Duration
	now        func() time.Time
}

func NewUserService(u domain.UserRepository, o domain.OtpRepository, sms domain.SMSSender, t TokenIssuer, bcryptCost int, otpTTL time.Duration) *UserService {
	return &UserService{users: u, otps: o, sms: sms, tokens: t, bcryptCost: bcryptCost, otpTTL: otpTTL, now: time.Now}
}

func (s *UserService) Register(ctx context.Context, fullName, email, phone string) (UserView, error) {
	if _, err := s.users.UserByEmail(ctx, email); err == nil {
		return UserView{}, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return UserView{}, err
	}

	u := domain.User{FullName: fullName, Email: email, PhoneNumber: phone, Enabled: false}
	if err := s.users.CreateUser(ctx, &u); err != nil {
		return UserView{}, err
	}
	if err := s.issueOtp(ctx, u); err != nil {
		return UserView{}, err
	}
	return toUserView(u), nil
}

func (s *UserService) VerifyOtp(ctx context.Context, phone, code string) error {
	u, err := s.users.UserByPhone(ctx, phone)
	if err != nil {
		return err
	}
	o, err := s.otps.OtpByUserID(ctx, u.ID)
	if err != nil {
		return err
	}
	if o.Code != code {
		return domain.ErrOtpMismatch
	}
	if o.Expired(s.now().UTC()) {
		return domain.ErrOtpExpired
	}
	if err := s.users.EnableUser(ctx, u.ID); err != nil {
		return err
	}
	return s.otps.DeleteOtp(ctx, u.ID)
}

func (s *UserService) ResendOtp(ctx context.Context, phone string) error {
	u, err := s.users.UserByPhone(ctx, phone)
	if err != nil {
		return err
	}
	return s.issueOtp(ctx, u)
}

func (s *UserService) SetPassword(ctx context.Context, phone, password string) error {
	u, err := s.users.UserByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if !u.Enabled {
		return domain.ErrUserDisabled
	}
	hash, err := hashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	return s.users.SetPasswordHash(ctx, u.ID, hash)
}

func (s *UserService) Login(ctx context.Context, email, password string) (AuthView, error) {
	u, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return AuthView{}, domain.ErrBadCredentials
		}
		return AuthView{}, err
	}
	if !u.Enabled {
		return AuthView{}, domain.ErrUserDisabled
	}
	if !verifyPassword(u.PasswordHash, password) {
		return AuthView{}, domain.ErrBadCredentials
	}
	token, exp, err := s.tokens.Issue(u.ID, s.now())
	if err != nil {
		return AuthView{}, err
	}
	return AuthView{Token: token, ExpiresAt: exp, User: toUserView(u)}, nil
}

func (s *UserService) Profile(ctx context.Context, userID int64) (UserView, error) {
	u, err := s.users.UserByID(ctx, userID)
	if err != nil {
		return UserView{}, err
	}
	return toUserView(u), nil
}

// issueOtp replaces the user's code and sends it. SMS delivery is
// best-effort: the code is already persisted, so a gateway outage only
// costs the user a resend.
func (s *UserService) issueOtp(ctx context.Context, u domain.User) error {
	code, err := generateOtpCode()
	if err != nil {
		return err
	}
	o := domain.Otp{UserID: u.ID, Code: code, ExpiresAt: s.now().UTC().Add(s.otpTTL)}
	if err := s.otps.ReplaceOtp(ctx, &o); err != nil {
		return err
	}
	if s.sms != nil {
		msg := fmt.Sprintf("Your verification code is %s", code)
		if err := s.sms.SendSMS(ctx, u.PhoneNumber, msg); err != nil {
			log.Warn().Err(err).Int64("user_id", u.ID).Msg("otp sms delivery failed")
		}
	}
	return nil
}
