package elgamal

import (
	core "github.com/mr-shifu/pkc-lib/core/elgamal"
	"github.com/mr-shifu/pkc-lib/pkg/common/keyopts"
)

type ElgamalKey interface {
	// Bytes returns the serialized form of the key.
	Bytes() ([]byte, error)

	// SKI returns the subject key identifier, a digest of the public
	// parameters.
	SKI() []byte

	// Private reports whether the key carries the secret exponent.
	Private() bool

	// PublicKey returns the public half of the key.
	PublicKey() ElgamalKey

	// PublicKeyRaw exposes the underlying core public key.
	PublicKeyRaw() *core.PublicKey

	// Encrypt encrypts message under the public key.
	Encrypt(message []byte) ([]byte, error)

	// Decrypt recovers the message from ciphertext. Requires a private key.
	Decrypt(ciphertext []byte) ([]byte, error)

	// Sign signs message. Requires a private key.
	Sign(message []byte) ([]byte, error)

	// Verify checks signature over message under the public key.
	Verify(message, signature []byte) (bool, error)

	// SharedSecret runs Diffie-Hellman against the peer's public key.
	// Requires a private key; both keys must share one group.
	SharedSecret(peer ElgamalKey) ([]byte, error)
}

type ElgamalKeyManager interface {
	// GenerateKey generates a new ElGamal key pair and stores it.
	GenerateKey(opts keyopts.Options) (ElgamalKey, error)

	// ImportKey imports a serialized or constructed key and stores it.
	ImportKey(data interface{}, opts keyopts.Options) (ElgamalKey, error)

	// GetKey retrieves a previously stored key.
	GetKey(opts keyopts.Options) (ElgamalKey, error)

	// Encrypt encrypts with the stored key identified by opts.
	Encrypt(message []byte, opts keyopts.Options) ([]byte, error)

	// Decrypt decrypts with the stored key identified by opts.
	Decrypt(ciphertext []byte, opts keyopts.Options) ([]byte, error)

	// Sign signs with the stored key identified by opts.
	Sign(message []byte, opts keyopts.Options) ([]byte, error)

	// Verify verifies with the stored key identified by opts.
	Verify(message, signature []byte, opts keyopts.Options) (bool, error)
}
