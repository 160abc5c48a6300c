package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shandysiswandi/gonotes/internal/identity/entity"
)

const getIdentityByEmail = `
SELECT id, name, date_of_birth, email, otp_hash, otp_expires_at
FROM identities
WHERE email = $1
`

func (s *DB) GetIdentityByEmail(ctx context.Context, email string) (_ *entity.Identity, err error) {
	ctx, span := s.startSpan(ctx, "GetIdentityByEmail")
	defer func() { s.endSpan(span, err) }()

	var (
		result    entity.Identity
		dob       pgtype.Date
		otpHash   pgtype.Text
		otpExpiry pgtype.Timestamptz
	)
	err = s.conn.QueryRow(ctx, getIdentityByEmail, email).
		Scan(&result.ID, &result.Name, &dob, &result.Email, &otpHash, &otpExpiry)
	if err != nil {
		return nil, s.mapError(err)
	}

	result.DateOfBirth = dob.Time
	if otpHash.Valid {
		result.OTPHash = otpHash.String
	}
	if otpExpiry.Valid {
		t := otpExpiry.Time
		result.OTPExpiresAt = &t
	}

	return &result, nil
}

const upsertIdentityOTP = `
INSERT INTO identities (id, name, date_of_birth, email, otp_hash, otp_expires_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (email) DO UPDATE
SET otp_hash = EXCLUDED.otp_hash, otp_expires_at = EXCLUDED.otp_expires_at
RETURNING id
`

func (s *DB) UpsertIdentityOTP(ctx context.Context, in entity.IssueOTP) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "UpsertIdentityOTP")
	defer func() { s.endSpan(span, err) }()

	var id int64
	err = s.conn.QueryRow(ctx, upsertIdentityOTP,
		in.ID, in.Name, in.DateOfBirth, in.Email, in.OTPHash, in.OTPExpiresAt,
	).Scan(&id)
	if err != nil {
		return 0, s.mapError(err)
	}

	return id, nil
}

const claimIdentityOTP = `
UPDATE identities
SET otp_hash = NULL, otp_expires_at = NULL
WHERE id = $1 AND otp_hash = $2 AND otp_expires_at > $3
`

// ClaimIdentityOTP is the single conditional update that makes a code
// single-use: only one caller can match the stored hash before it is cleared.
func (s *DB) ClaimIdentityOTP(ctx context.Context, id int64, otpHash string, now time.Time) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "ClaimIdentityOTP")
	defer func() { s.endSpan(span, err) }()

	ct, err := s.conn.Exec(ctx, claimIdentityOTP, id, otpHash, now)
	if err != nil {
		return false, s.mapError(err)
	}

	return ct.RowsAffected() == 1, nil
}
