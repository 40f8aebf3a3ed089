package strength

import (
	"errors"

	"github.com/passgen/passgen/internal/charset"
)

var (
	// ErrInvalidLength is returned if the password length is less than 1.
	ErrInvalidLength = charset.ErrInvalidLength

	// ErrNoPossibleChars is returned if no character class contributes characters.
	ErrNoPossibleChars = errors.New("at least one possible character is required")
)
