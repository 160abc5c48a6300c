// Package otp generates the short numeric codes used for passwordless login.
//
// Only the generation lives here; hashing, storage and expiry of codes are
// handled by the identity module.
package otp
