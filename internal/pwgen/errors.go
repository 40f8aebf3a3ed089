package pwgen

import (
	"errors"

	"github.com/passgen/passgen/internal/charset"
)

var (
	// ErrInvalidLength is returned if the requested password length is less than 1.
	ErrInvalidLength = charset.ErrInvalidLength

	// ErrEmptyCharset is returned if there is no character to choose from.
	ErrEmptyCharset = errors.New("character set is empty")

	// ErrCharsetTooLarge is returned if the character set has more than 256 characters.
	ErrCharsetTooLarge = errors.New("character set can not exceed 256 characters")
)
