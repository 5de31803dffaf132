// Package bcryptpbkdf derives keys of arbitrary length from a passphrase
// using the OpenBSD bcrypt_pbkdf construction: SHA-512 prehashing, a
// 64-round Eksblowfish bcrypt-hash core, XOR accumulation across rounds
// and stride-scattered output assembly.
package bcryptpbkdf

import (
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/crypto/blowfish"
)

// MaxKeyLength is the largest derivable key.
const MaxKeyLength = 1024

const (
	hashSize   = 32
	hashRounds = 64
)

var magic = []byte("OxychromaticBlowfishSwatDynamite")

var (
	ErrRounds    = errors.New("bcryptpbkdf: rounds must be at least 1")
	ErrKeyLength = errors.New("bcryptpbkdf: key length must be in [1, 1024]")
)

// Key stretches passphrase and salt into keyLen derived bytes. passphrase
// and salt may be any length; both are reduced through SHA-512 before they
// reach the Blowfish schedule.
func Key(passphrase, salt []byte, rounds, keyLen int) ([]byte, error) {
	if rounds < 1 {
		return nil, ErrRounds
	}
	if keyLen < 1 || keyLen > MaxKeyLength {
		return nil, ErrKeyLength
	}

	sha2pass := sha512.Sum512(passphrase)

	// Each count block yields up to amt output bytes, interleaved into
	// the key at stride intervals. The scatter is part of the format:
	// data[i] lands at key[i*stride + count - 1].
	stride := (keyLen + hashSize - 1) / hashSize
	amt := (keyLen + stride - 1) / stride

	key := make([]byte, keyLen)
	tmp := make([]byte, hashSize)
	data := make([]byte, hashSize)
	countBytes := make([]byte, 4)
	h := sha512.New()

	remaining := keyLen
	for count := uint32(1); remaining > 0; count++ {
		binary.BigEndian.PutUint32(countBytes, count)
		h.Reset()
		h.Write(salt)
		h.Write(countBytes)
		sha2salt := h.Sum(nil)

		bcryptHash(tmp, sha2pass[:], sha2salt)
		copy(data, tmp)
		for i := 1; i < rounds; i++ {
			// chain: each round's salt is the digest of the
			// previous round's raw hash output
			h.Reset()
			h.Write(tmp)
			sha2salt = h.Sum(sha2salt[:0])
			bcryptHash(tmp, sha2pass[:], sha2salt)
			for j := range data {
				data[j] ^= tmp[j]
			}
		}

		n := amt
		if n > remaining {
			n = remaining
		}
		wrote := 0
		for i := 0; i < n; i++ {
			dest := i*stride + int(count) - 1
			if dest >= keyLen {
				break
			}
			key[dest] = data[i]
			wrote++
		}
		remaining -= wrote
	}

	for i := range tmp {
		tmp[i] = 0
		data[i] = 0
	}
	return key, nil
}

// bcryptHash fills out (32 bytes) with the bcrypt hash of a 64-byte
// prehashed passphrase under a 64-byte prehashed salt. The expensive
// schedule runs a fixed 64 rounds with the cheap mixing keyed salt first,
// then passphrase — the reverse of classic bcrypt, kept for compatibility.
// The output words are stored little-endian, another quirk of the
// reference algorithm.
func bcryptHash(out, sha2pass, sha2salt []byte) {
	c, err := blowfish.NewSaltedCipher(sha2pass, sha2salt)
	if err != nil {
		panic(fmt.Sprintf("bcryptpbkdf: internal schedule failure: %v", err))
	}
	for i := 0; i < hashRounds; i++ {
		blowfish.ExpandKey(sha2salt, c)
		blowfish.ExpandKey(sha2pass, c)
	}

	copy(out, magic)
	for i := 0; i < hashRounds; i++ {
		for j := 0; j < hashSize; j += blowfish.BlockSize {
			c.Encrypt(out[j:j+blowfish.BlockSize], out[j:j+blowfish.BlockSize])
		}
	}

	for i := 0; i < hashSize; i += 4 {
		out[i], out[i+1], out[i+2], out[i+3] = out[i+3], out[i+2], out[i+1], out[i]
	}
}
