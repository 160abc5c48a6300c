package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shandysiswandi/gonotes/internal/identity/entity"
	"github.com/shandysiswandi/gonotes/internal/pkg/config"
	"github.com/shandysiswandi/gonotes/internal/pkg/goerror"
	"github.com/shandysiswandi/gonotes/internal/pkg/hash"
	"github.com/shandysiswandi/gonotes/internal/pkg/instrument"
	"github.com/shandysiswandi/gonotes/internal/pkg/jwt"
	"github.com/shandysiswandi/gonotes/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
modules:
  identity:
    otp_ttl_minutes: 5
    otp_max_attempts: 5
`

// fakeRepoDB is an in-memory stand-in for the identity table keyed by email.
type fakeRepoDB struct {
	identities map[string]*entity.Identity

	// getStale, when set, is returned by GetIdentityByEmail instead of the
	// live record. It models a snapshot read racing with another writer.
	getStale *entity.Identity

	getErr    error
	upsertErr error
	claimErr  error
}

func newFakeRepoDB() *fakeRepoDB {
	return &fakeRepoDB{identities: make(map[string]*entity.Identity)}
}

func (f *fakeRepoDB) GetIdentityByEmail(_ context.Context, email string) (*entity.Identity, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	if f.getStale != nil {
		cp := *f.getStale
		return &cp, nil
	}

	identity, ok := f.identities[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	cp := *identity
	return &cp, nil
}

func (f *fakeRepoDB) UpsertIdentityOTP(_ context.Context, in entity.IssueOTP) (int64, error) {
	if f.upsertErr != nil {
		return 0, f.upsertErr
	}

	expiry := in.OTPExpiresAt
	if existing, ok := f.identities[in.Email]; ok {
		existing.OTPHash = in.OTPHash
		existing.OTPExpiresAt = &expiry
		return existing.ID, nil
	}

	f.identities[in.Email] = &entity.Identity{
		ID:           in.ID,
		Name:         in.Name,
		DateOfBirth:  in.DateOfBirth,
		Email:        in.Email,
		OTPHash:      in.OTPHash,
		OTPExpiresAt: &expiry,
	}
	return in.ID, nil
}

func (f *fakeRepoDB) ClaimIdentityOTP(_ context.Context, id int64, otpHash string, now time.Time) (bool, error) {
	if f.claimErr != nil {
		return false, f.claimErr
	}

	for _, identity := range f.identities {
		if identity.ID != id {
			continue
		}
		if identity.OTPHash != otpHash || identity.OTPExpiresAt == nil || !identity.OTPExpiresAt.After(now) {
			return false, nil
		}
		identity.OTPHash = ""
		identity.OTPExpiresAt = nil
		return true, nil
	}

	return false, nil
}

type sentMail struct {
	to   string
	name string
	code string
	ttl  time.Duration
}

type fakeRepoMail struct {
	sent []sentMail
	err  error
}

func (f *fakeRepoMail) SendOTP(_ context.Context, to, name, code string, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, name: name, code: code, ttl: ttl})
	return nil
}

// fakeLimiter counts attempts in memory, ignoring windows.
type fakeLimiter struct {
	counts map[string]int64
}

func newFakeLimiter() *fakeLimiter {
	return &fakeLimiter{counts: make(map[string]int64)}
}

func (f *fakeLimiter) Hit(_ context.Context, key string, _ time.Duration) (int64, error) {
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeLimiter) Exceeded(_ context.Context, key string, limit int64) (bool, error) {
	return f.counts[key] >= limit, nil
}

func (f *fakeLimiter) Reset(_ context.Context, key string) error {
	delete(f.counts, key)
	return nil
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fakeNumberID struct {
	next int64
}

func (f *fakeNumberID) Generate() int64 {
	f.next++
	return f.next
}

type fixedCode struct {
	code string
	err  error
}

func (f fixedCode) Generate() (string, error) { return f.code, f.err }

type fakeJWT struct {
	token string
	err   error
}

func (f fakeJWT) Generate(int64, string) (string, error) { return f.token, f.err }

func (f fakeJWT) Verify(string) (jwt.Claims, error) { return jwt.Claims{}, nil }

type fixture struct {
	uc       *Usecase
	repoDB   *fakeRepoDB
	repoMail *fakeRepoMail
	attempts *fakeLimiter
	clock    *fakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	require.NoError(t, err)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	f := &fixture{
		repoDB:   newFakeRepoDB(),
		repoMail: &fakeRepoMail{},
		attempts: newFakeLimiter(),
		clock:    &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}

	f.uc = New(Dependency{
		RepoDB:     f.repoDB,
		RepoMail:   f.repoMail,
		Attempts:   f.attempts,
		Validator:  v,
		Config:     cfg,
		HMAC:       hash.NewHMACSHA256("test-secret"),
		Codes:      fixedCode{code: "483920"},
		UID:        &fakeNumberID{},
		Clock:      f.clock,
		JWT:        fakeJWT{token: "session-token"},
		Instrument: instrument.NewNoop(),
	})

	return f
}
