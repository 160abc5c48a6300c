package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/gonotes/internal/identity/entity"
	"github.com/shandysiswandi/gonotes/internal/pkg/goerror"
)

type SendOTPInput struct {
	Name  string `validate:"required,min=2,max=100,alphaspace"`
	DOB   string `validate:"required,datetime=2006-01-02"`
	Email string `validate:"required,email,max=254"`
}

// SendOTP issues a fresh one-time code for the email and dispatches it.
//
// The identity is created on the first request for an email. Issuing again
// overwrites the previous pending code; it never changes the stored name or
// date of birth of an existing identity.
func (s *Usecase) SendOTP(ctx context.Context, in SendOTPInput) error {
	ctx, span := s.startSpan(ctx, "SendOTP")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Name = strings.TrimSpace(in.Name)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	dob, err := time.Parse("2006-01-02", in.DOB)
	if err != nil {
		return goerror.NewInvalidInput(nil, "dob", "dob must be a valid date in YYYY-MM-DD format")
	}

	code, err := s.codes.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "error", err)
		return goerror.NewServer(err)
	}

	codeHash, err := s.hmac.Hash(code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash otp code", "error", err)
		return goerror.NewServer(err)
	}

	ttl := s.cfg.GetMinute("modules.identity.otp_ttl_minutes")
	id, err := s.repoDB.UpsertIdentityOTP(ctx, entity.IssueOTP{
		ID:           s.uid.Generate(),
		Name:         in.Name,
		DateOfBirth:  dob,
		Email:        in.Email,
		OTPHash:      string(codeHash),
		OTPExpiresAt: s.clock.Now().Add(ttl),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert identity otp", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.attempts.Reset(ctx, s.attemptKey(in.Email)); err != nil {
		slog.WarnContext(ctx, "failed to reset otp attempt counter", "identity_id", id, "error", err)
	}

	// The code is already persisted at this point. A dispatch failure is
	// surfaced to the caller, but the stored code stays valid for its window.
	if err := s.repoMail.SendOTP(ctx, in.Email, in.Name, code, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to send otp email", "identity_id", id, "error", err)
		return goerror.NewServer(err)
	}

	slog.InfoContext(ctx, "otp issued", "identity_id", id)

	return nil
}
