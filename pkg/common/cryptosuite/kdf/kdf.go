package kdf

import "github.com/mr-shifu/pkc-lib/pkg/common/keyopts"

// DerivedKey is passphrase-derived key material held by the keystore.
type DerivedKey interface {
	// Bytes returns the raw derived material.
	Bytes() ([]byte, error)

	// SKI returns the fingerprint of the derived material.
	SKI() []byte

	// Len returns the material length in bytes.
	Len() int
}

// KDFManager derives keys from passphrases and stores them for later
// retrieval by caller key ID.
type KDFManager interface {
	// DeriveBcrypt runs the classic bcrypt hash (24-byte output) over
	// passphrase and a 16-byte salt. rounds must be a power of two in
	// [2^4, 2^31].
	DeriveBcrypt(passphrase, salt []byte, rounds uint64, opts keyopts.Options) (DerivedKey, error)

	// DerivePBKDF runs bcrypt_pbkdf to produce keyLen bytes.
	DerivePBKDF(passphrase, salt []byte, rounds, keyLen int, opts keyopts.Options) (DerivedKey, error)

	// GetKey retrieves previously derived material.
	GetKey(opts keyopts.Options) (DerivedKey, error)
}
