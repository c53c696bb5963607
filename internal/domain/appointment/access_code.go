package appointment

import (
	"crypto/rand"
	"errors"
	"strings"
)

const (
	AccessCodeLength = 6

	// MaxAccessCodeAttempts bounds the per-owner uniqueness retry loop.
	MaxAccessCodeAttempts = 5
)

// Lookalike characters (0/O, 1/I/L) are excluded: codes are read aloud.
const accessCodeCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

var ErrInvalidAccessCode = errors.New("invalid access code")

// AccessCode is the short owner-scoped identifier shown to end users.
type AccessCode string

func (a AccessCode) String() string {
	return string(a)
}

// GenerateAccessCode draws a fresh random code. Uniqueness within an owner is
// the caller's responsibility; generation itself has no side effects.
func GenerateAccessCode() (AccessCode, error) {
	buf := make([]byte, 0, AccessCodeLength)
	for len(buf) < AccessCodeLength {
		var b [1]byte
		if _, err := rand.Read(b[:]); err != nil {
			return "", err
		}
		// Rejection sampling keeps the draw uniform over the charset.
		if int(b[0]) >= rejectionBound {
			continue
		}
		buf = append(buf, accessCodeCharset[int(b[0])%len(accessCodeCharset)])
	}
	return AccessCode(buf), nil
}

// Largest multiple of the charset size that fits in a byte.
const rejectionBound = 256 - 256%len(accessCodeCharset)

func ParseAccessCode(s string) (AccessCode, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if len(code) != AccessCodeLength {
		return "", ErrInvalidAccessCode
	}
	for _, r := range code {
		if !strings.ContainsRune(accessCodeCharset, r) {
			return "", ErrInvalidAccessCode
		}
	}
	return AccessCode(code), nil
}
