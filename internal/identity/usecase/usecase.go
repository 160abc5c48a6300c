package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/gonotes/internal/identity/entity"
	"github.com/shandysiswandi/gonotes/internal/pkg/clock"
	"github.com/shandysiswandi/gonotes/internal/pkg/config"
	"github.com/shandysiswandi/gonotes/internal/pkg/hash"
	"github.com/shandysiswandi/gonotes/internal/pkg/instrument"
	"github.com/shandysiswandi/gonotes/internal/pkg/jwt"
	"github.com/shandysiswandi/gonotes/internal/pkg/limiter"
	"github.com/shandysiswandi/gonotes/internal/pkg/otp"
	"github.com/shandysiswandi/gonotes/internal/pkg/uid"
	"github.com/shandysiswandi/gonotes/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetIdentityByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// UpsertIdentityOTP creates the identity on first issuance or replaces
	// the pending OTP fields of an existing one. It returns the identity id.
	UpsertIdentityOTP(ctx context.Context, in entity.IssueOTP) (int64, error)

	// ClaimIdentityOTP clears the pending OTP in a single conditional update
	// keyed by identity id, stored hash, and expiry. It reports whether this
	// caller won the claim, which makes a code single-use even under
	// concurrent verification.
	ClaimIdentityOTP(ctx context.Context, id int64, otpHash string, now time.Time) (bool, error)
}

type repoMail interface {
	SendOTP(ctx context.Context, to, name, code string, ttl time.Duration) error
}

type Usecase struct {
	repoDB    repoDB
	repoMail  repoMail
	attempts  limiter.AttemptLimiter
	validator validator.Validator
	cfg       config.Config
	hmac      hash.Hash
	codes     otp.Generator
	uid       uid.NumberID
	clock     clock.Clocker
	jwt       jwt.JWT
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	RepoMail   repoMail
	Attempts   limiter.AttemptLimiter
	Validator  validator.Validator
	Config     config.Config
	HMAC       hash.Hash
	Codes      otp.Generator
	UID        uid.NumberID
	Clock      clock.Clocker
	JWT        jwt.JWT
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		repoMail:  dep.RepoMail,
		attempts:  dep.Attempts,
		validator: dep.Validator,
		cfg:       dep.Config,
		hmac:      dep.HMAC,
		codes:     dep.Codes,
		uid:       dep.UID,
		clock:     dep.Clock,
		jwt:       dep.JWT,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) attemptKey(email string) string {
	return "otp:verify:" + email
}
