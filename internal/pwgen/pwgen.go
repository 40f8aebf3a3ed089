package pwgen

import (
	"crypto/rand"
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/passgen/passgen/internal/charset"
)

const (
	// maxBufLen is the maximum length of a temporary buffer for random bytes.
	maxBufLen = 2048

	// minRegenBufLen is the minimum length of temporary buffer for random bytes
	// to fill after the first read didn't produce the full result.
	// If the initial buffer is smaller, this value is ignored.
	minRegenBufLen = 16

	// maxByteValue is the maximum value of a byte (2^8 - 1).
	maxByteValue = 255

	// byteRange is the total number of possible byte values (2^8).
	byteRange = 256
)

// Generator draws passwords from an entropy source.
type Generator struct {
	source io.Reader
}

// New returns a Generator reading from crypto/rand.
func New() *Generator {
	return &Generator{source: rand.Reader}
}

// NewWithSource returns a Generator reading from the given source.
// Only tests should use anything but crypto/rand.
func NewWithSource(source io.Reader) *Generator {
	return &Generator{source: source}
}

// estimatedBufLen returns the estimated number of random bytes to request
// given that byte values greater than maxByte will be rejected.
func estimatedBufLen(need, maxByte int) int {
	return int(math.Ceil(float64(need) * (maxByteValue / float64(maxByte))))
}

// Generate returns a password of exactly length characters, each one chosen
// uniformly from chars.
func (g *Generator) Generate(length int, chars []byte) (string, error) {
	out, err := g.generateBytes(length, chars)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// GenerateFor assembles the character set for sel and generates a password from it.
func (g *Generator) GenerateFor(length int, sel charset.Selection) (string, error) {
	return g.Generate(length, charset.Assemble(sel))
}

func (g *Generator) generateBytes(length int, chars []byte) ([]byte, error) {
	if length < 1 {
		return nil, ErrInvalidLength
	}

	clen := len(chars)

	switch {
	case clen == 0:
		return nil, ErrEmptyCharset
	case clen > byteRange:
		return nil, ErrCharsetTooLarge
	}

	// bytes above maxRb would favour the first characters of chars
	maxRb := maxByteValue - (byteRange % clen)

	bufLen := max(estimatedBufLen(length, maxRb), length)
	bufLen = min(bufLen, maxBufLen)

	buf := make([]byte, bufLen) // storage for random bytes
	out := make([]byte, length) // storage for result

	log.Debug().Int("length", length).Int("charset", clen).Msg("generating password")

	var i int // index in out

	for {
		if _, err := io.ReadFull(g.source, buf[:bufLen]); err != nil {
			return nil, errors.Wrap(err, "error reading random bytes")
		}

		for _, rb := range buf[:bufLen] {
			c := int(rb)
			if c > maxRb {
				continue
			}

			out[i] = chars[c%clen]
			i++

			if i == length {
				return out, nil
			}
		}

		bufLen = estimatedBufLen(length-i, maxRb)
		if bufLen < minRegenBufLen && minRegenBufLen < cap(buf) {
			bufLen = minRegenBufLen
		}

		bufLen = min(bufLen, maxBufLen)
	}
}
