// Package hash provides helpers for hashing and verifying secrets.
//
// The service stores only hashes of one-time codes: the plaintext code is
// dispatched to the user, the keyed hash is persisted, and later input is
// verified by recomputing the hash and comparing in constant time.
package hash
