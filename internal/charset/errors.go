package charset

import "errors"

// ErrInvalidLength is returned if a password length is less than 1.
// pwgen and strength return this same value.
var ErrInvalidLength = errors.New("the length must be at least 1")
