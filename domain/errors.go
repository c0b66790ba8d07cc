package domain

import "errors"

// ErrUserNotFound distinguishes a missing account from a storage failure.
// Callers translate it to 404 (or invalid-credentials for login); any other
// repository error is a server fault and surfaces as 500.
var ErrUserNotFound = errors.New("user not found")
