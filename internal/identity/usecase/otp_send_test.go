package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/gonotes/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendOTP_CreatesIdentityAndSendsCode(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	err := f.uc.SendOTP(t.Context(), SendOTPInput{
		Name:  "Jane Doe",
		DOB:   "1990-04-15",
		Email: "Jane@Example.com",
	})
	require.NoError(t, err)

	identity, ok := f.repoDB.identities["jane@example.com"]
	require.True(t, ok, "email should be normalized to lowercase")
	assert.Equal(t, "Jane Doe", identity.Name)
	assert.NotEmpty(t, identity.OTPHash)
	require.NotNil(t, identity.OTPExpiresAt)
	assert.Equal(t, f.clock.now.Add(5*time.Minute), *identity.OTPExpiresAt)

	require.Len(t, f.repoMail.sent, 1)
	assert.Equal(t, "jane@example.com", f.repoMail.sent[0].to)
	assert.Equal(t, "483920", f.repoMail.sent[0].code)
	assert.NotEqual(t, identity.OTPHash, f.repoMail.sent[0].code, "stored value must be a hash, not the code")
}

func TestSendOTP_RepeatReplacesCodeButKeepsProfile(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	require.NoError(t, f.uc.SendOTP(t.Context(), SendOTPInput{
		Name:  "Jane Doe",
		DOB:   "1990-04-15",
		Email: "jane@example.com",
	}))

	firstHash := f.repoDB.identities["jane@example.com"].OTPHash
	firstID := f.repoDB.identities["jane@example.com"].ID

	f.uc.codes = fixedCode{code: "112233"}
	require.NoError(t, f.uc.SendOTP(t.Context(), SendOTPInput{
		Name:  "Someone Else",
		DOB:   "2000-01-01",
		Email: "jane@example.com",
	}))

	identity := f.repoDB.identities["jane@example.com"]
	assert.Equal(t, firstID, identity.ID)
	assert.NotEqual(t, firstHash, identity.OTPHash, "new request must replace the pending code")
	assert.Equal(t, "Jane Doe", identity.Name, "repeat request must not change the stored name")
	assert.Equal(t, 1990, identity.DateOfBirth.Year())
}

func TestSendOTP_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input SendOTPInput
	}{
		{"EmptyName", SendOTPInput{Name: "", DOB: "1990-04-15", Email: "a@b.com"}},
		{"NameWithDigits", SendOTPInput{Name: "Jane 2", DOB: "1990-04-15", Email: "a@b.com"}},
		{"BadDOB", SendOTPInput{Name: "Jane Doe", DOB: "15-04-1990", Email: "a@b.com"}},
		{"BadEmail", SendOTPInput{Name: "Jane Doe", DOB: "1990-04-15", Email: "not-an-email"}},
		{"EmptyEmail", SendOTPInput{Name: "Jane Doe", DOB: "1990-04-15", Email: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)

			err := f.uc.SendOTP(t.Context(), tt.input)
			require.Error(t, err)

			var gerr *goerror.Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, goerror.TypeValidation, gerr.Type())

			assert.Empty(t, f.repoMail.sent, "no mail on validation failure")
			assert.Empty(t, f.repoDB.identities, "no identity on validation failure")
		})
	}
}

func TestSendOTP_MailFailureKeepsStoredCode(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.repoMail.err = errors.New("smtp: connection refused")

	err := f.uc.SendOTP(t.Context(), SendOTPInput{
		Name:  "Jane Doe",
		DOB:   "1990-04-15",
		Email: "jane@example.com",
	})
	require.Error(t, err)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.TypeServer, gerr.Type())
	assert.NotContains(t, gerr.Msg(), "smtp")

	identity, ok := f.repoDB.identities["jane@example.com"]
	require.True(t, ok)
	assert.NotEmpty(t, identity.OTPHash, "stored code stays valid after dispatch failure")
}

func TestSendOTP_UpsertFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.repoDB.upsertErr = errors.New("db down")

	err := f.uc.SendOTP(t.Context(), SendOTPInput{
		Name:  "Jane Doe",
		DOB:   "1990-04-15",
		Email: "jane@example.com",
	})
	require.Error(t, err)
	assert.Empty(t, f.repoMail.sent)
}
