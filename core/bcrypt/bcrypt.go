// Package bcrypt implements the classic bcrypt password hash: the
// Eksblowfish expensive key schedule followed by 64 encryption passes over
// the fixed 24-byte state "OrpheanBeholderScryDoubt".
//
// Key returns the raw 24 bytes. The textual $2a$ form (NUL-terminated
// passphrase, truncated radix-64) is a caller convention layered on top
// and stays outside this package.
package bcrypt

import (
	"errors"

	"golang.org/x/crypto/blowfish"
)

const (
	// MinRounds and MaxRounds bound the expensive schedule's iteration
	// count, which must be a power of two.
	MinRounds = 1 << 4
	MaxRounds = 1 << 31

	// SaltLength is the required salt size in bytes.
	SaltLength = 16

	// MaxPassphraseLength is the longest passphrase the schedule can
	// absorb; Blowfish ignores key bytes past 72.
	MaxPassphraseLength = 72

	// KeyLength is the only supported output size.
	KeyLength = 24
)

var magic = []byte("OrpheanBeholderScryDoubt")

var (
	ErrPassphraseTooLong = errors.New("bcrypt: passphrase longer than 72 bytes")
	ErrSaltLength        = errors.New("bcrypt: salt must be exactly 16 bytes")
	ErrRounds            = errors.New("bcrypt: rounds must be a power of two in [2^4, 2^31]")
	ErrKeyLength         = errors.New("bcrypt: key length must be 24")
)

// Key derives the 24-byte bcrypt digest of passphrase under salt. rounds
// is the expensive schedule's iteration count (the caller's 2^cost).
func Key(passphrase, salt []byte, rounds uint64, keyLen int) ([]byte, error) {
	if len(passphrase) > MaxPassphraseLength {
		return nil, ErrPassphraseTooLong
	}
	if len(salt) != SaltLength {
		return nil, ErrSaltLength
	}
	if rounds < MinRounds || rounds > MaxRounds || rounds&(rounds-1) != 0 {
		return nil, ErrRounds
	}
	if keyLen != KeyLength {
		return nil, ErrKeyLength
	}

	c, err := expensiveSchedule(passphrase, salt, rounds)
	if err != nil {
		return nil, err
	}

	out := make([]byte, KeyLength)
	copy(out, magic)
	for i := 0; i < 64; i++ {
		for j := 0; j < KeyLength; j += blowfish.BlockSize {
			c.Encrypt(out[j:j+blowfish.BlockSize], out[j:j+blowfish.BlockSize])
		}
	}
	return out, nil
}

// expensiveSchedule builds the Eksblowfish state for one derivation: a
// salted expansion of the passphrase over the fresh Blowfish constants,
// then rounds iterations of cheap mixing keyed by the passphrase and the
// salt in turn. The schedule lives only for the enclosing call.
func expensiveSchedule(passphrase, salt []byte, rounds uint64) (*blowfish.Cipher, error) {
	c, err := blowfish.NewSaltedCipher(passphrase, salt)
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < rounds; i++ {
		blowfish.ExpandKey(passphrase, c)
		blowfish.ExpandKey(salt, c)
	}
	return c, nil
}
