package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gonotes/internal/pkg/goerror"
)

type VerifyOTPInput struct {
	Email string `validate:"required,email"`
	OTP   string `validate:"required,len=6,numeric"`
}

type VerifyOTPOutput struct {
	Token string
	ID    int64
	Name  string
	Email string
}

// errInvalidOTP is the single client-facing rejection for a wrong code, an
// expired code, or no pending code. The real reason is only logged.
func errInvalidOTP() error {
	return goerror.NewBusiness("Invalid or expired OTP", goerror.CodeInvalidInput)
}

// VerifyOTP validates a submitted code and mints a session token.
//
// On success the pending code is cleared in one conditional update, so a
// code verifies at most once even when two requests race with it.
func (s *Usecase) VerifyOTP(ctx context.Context, in VerifyOTPInput) (*VerifyOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyOTP")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	maxAttempts := s.cfg.GetInt64("modules.identity.otp_max_attempts")
	exceeded, err := s.attempts.Exceeded(ctx, s.attemptKey(in.Email), maxAttempts)
	if err != nil {
		slog.WarnContext(ctx, "failed to check otp attempt counter", "error", err)
	}
	if exceeded {
		slog.WarnContext(ctx, "otp verification attempt limit reached", "email", in.Email)
		return nil, goerror.NewBusiness("Too many attempts, request a new code", goerror.CodeTooManyRequest)
	}

	identity, err := s.repoDB.GetIdentityByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "otp verification for unknown identity", "email", in.Email)
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get identity by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if identity.OTPHash == "" || identity.OTPExpiresAt == nil {
		slog.WarnContext(ctx, "otp verification without pending code", "identity_id", identity.ID)
		s.recordFailedAttempt(ctx, in.Email)
		return nil, errInvalidOTP()
	}

	now := s.clock.Now()
	if !s.hmac.Verify(identity.OTPHash, in.OTP) {
		slog.WarnContext(ctx, "otp code mismatch", "identity_id", identity.ID)
		s.recordFailedAttempt(ctx, in.Email)
		return nil, errInvalidOTP()
	}
	if now.After(*identity.OTPExpiresAt) {
		slog.WarnContext(ctx, "otp code expired", "identity_id", identity.ID)
		s.recordFailedAttempt(ctx, in.Email)
		return nil, errInvalidOTP()
	}

	claimed, err := s.repoDB.ClaimIdentityOTP(ctx, identity.ID, identity.OTPHash, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo claim identity otp", "identity_id", identity.ID, "error", err)
		return nil, goerror.NewServer(err)
	}
	if !claimed {
		// Someone else verified with this code first.
		slog.WarnContext(ctx, "otp already claimed", "identity_id", identity.ID)
		s.recordFailedAttempt(ctx, in.Email)
		return nil, errInvalidOTP()
	}

	if err := s.attempts.Reset(ctx, s.attemptKey(in.Email)); err != nil {
		slog.WarnContext(ctx, "failed to reset otp attempt counter", "identity_id", identity.ID, "error", err)
	}

	token, err := s.jwt.Generate(identity.ID, identity.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate session token", "identity_id", identity.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	slog.InfoContext(ctx, "otp verified", "identity_id", identity.ID)

	return &VerifyOTPOutput{
		Token: token,
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
	}, nil
}

func (s *Usecase) recordFailedAttempt(ctx context.Context, email string) {
	window := s.cfg.GetMinute("modules.identity.otp_ttl_minutes")
	if _, err := s.attempts.Hit(ctx, s.attemptKey(email), window); err != nil {
		slog.WarnContext(ctx, "failed to record otp attempt", "error", err)
	}
}
