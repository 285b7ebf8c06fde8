// Package validate holds the credential shape rules applied during signup
// and login. Every function is pure: deterministic, no I/O, no storage.
package validate

import "github.com/yolp/account-service/internal/core/domain"

const (
	// MinUsernameLen is the minimum accepted username length.
	MinUsernameLen = 10
	// MinPasswordLen is the minimum accepted password length.
	MinPasswordLen = 8
)

// Username returns domain.ErrBadUsername unless s is at least
// MinUsernameLen characters long.
func Username(s string) error {
	if len(s) < MinUsernameLen {
		return domain.ErrBadUsername
	}
	return nil
}

// Password returns domain.ErrBadPassword unless s is at least
// MinPasswordLen characters long.
func Password(s string) error {
	if len(s) < MinPasswordLen {
		return domain.ErrBadPassword
	}
	return nil
}

// SamePassword reports whether the password and its confirmation match
// exactly. No normalisation is applied.
func SamePassword(a, b string) bool {
	return a == b
}
