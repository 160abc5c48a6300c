package entity

import "time"

// Identity is a registered email-addressable user record.
//
// OTPHash and OTPExpiresAt describe the pending one-time code, if any. At
// most one code is pending per identity; issuing a new code overwrites the
// previous one.
type Identity struct {
	ID           int64
	Name         string
	DateOfBirth  time.Time
	Email        string
	OTPHash      string
	OTPExpiresAt *time.Time
}

// IssueOTP is the write model for code issuance. The identity is created on
// first issue; on conflict by email only the OTP fields are replaced, the
// stored name and date of birth are kept.
type IssueOTP struct {
	ID           int64
	Name         string
	DateOfBirth  time.Time
	Email        string
	OTPHash      string
	OTPExpiresAt time.Time
}
