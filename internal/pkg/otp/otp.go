package otp

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	codeMin = 100000
	codeMax = 999999
)

// Generator produces one-time login codes.
type Generator interface {
	// Generate returns a new code or an error if the random source fails.
	Generate() (string, error)
}

// NumericCode generates 6-digit one-time codes using crypto/rand.
//
// Codes are drawn uniformly from [100000, 999999], so every code has
// exactly six digits with no leading zero.
type NumericCode struct{}

// NewNumericCode returns a NumericCode generator.
func NewNumericCode() *NumericCode {
	return &NumericCode{}
}

// Generate returns a new 6-digit code.
func (*NumericCode) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(codeMin+n.Int64(), 10), nil
}
