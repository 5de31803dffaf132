// Package elgamal implements the ElGamal cryptosystem over a
// discrete-logarithm group: encryption, decryption, signing, verification
// and Diffie-Hellman key agreement.
//
// Ciphertexts and signatures are serialized as two big-endian fields, each
// zero-padded to the group's element width, so groups should use a prime
// whose bit length is a multiple of 8.
package elgamal

import (
	"errors"
	"io"
	"math/big"

	"github.com/mr-shifu/pkc-lib/core/math/arith"
	"github.com/mr-shifu/pkc-lib/core/math/dlgroup"
	"github.com/mr-shifu/pkc-lib/core/math/sample"
)

var (
	ErrMissingParameter = errors.New("elgamal: missing key parameter")
	ErrMessageTooLarge  = errors.New("elgamal: message too large for group")
	ErrGroupMismatch    = errors.New("elgamal: keys belong to different groups")
	ErrCiphertextLength = errors.New("elgamal: invalid ciphertext length")
	ErrSignatureLength  = errors.New("elgamal: invalid signature length")
)

var one = big.NewInt(1)

// PublicKey is (group, y) with y = gˣ mod p for the matching secret x.
type PublicKey struct {
	group *dlgroup.Group
	y     *big.Int
}

// PrivateKey is (group, x, y). It shares its group with the public key
// derived from it.
type PrivateKey struct {
	group *dlgroup.Group
	x     *big.Int
	y     *big.Int
}

// NewPublicKey builds a public key from (group, y). All parameters are
// required.
func NewPublicKey(group *dlgroup.Group, y *big.Int) (*PublicKey, error) {
	if group == nil || y == nil {
		return nil, ErrMissingParameter
	}
	return &PublicKey{group: group, y: y}, nil
}

// NewPrivateKey builds a private key from (group, x, y). y may be nil, in
// which case it is derived as gˣ mod p.
func NewPrivateKey(group *dlgroup.Group, x, y *big.Int) (*PrivateKey, error) {
	if group == nil || x == nil {
		return nil, ErrMissingParameter
	}
	if y == nil {
		y = arith.Exp(group.G(), x, group.P())
	}
	return &PrivateKey{group: group, x: x, y: y}, nil
}

// GenerateKey discovers a fresh safe-prime group of the given bit size and
// draws a secret exponent x uniformly from [2, p-2].
func GenerateKey(random io.Reader, bits int) (*PrivateKey, error) {
	group, err := dlgroup.New(random, bits)
	if err != nil {
		return nil, err
	}
	return GenerateKeyInGroup(random, group)
}

// GenerateKeyInGroup draws a key pair on an existing group.
func GenerateKeyInGroup(random io.Reader, group *dlgroup.Group) (*PrivateKey, error) {
	if group == nil {
		return nil, ErrMissingParameter
	}
	x, err := sample.Exponent(random, group.P())
	if err != nil {
		return nil, err
	}
	y := arith.Exp(group.G(), x, group.P())
	return &PrivateKey{group: group, x: x, y: y}, nil
}

func (pub *PublicKey) Group() *dlgroup.Group { return pub.group }
func (pub *PublicKey) Y() *big.Int           { return pub.y }

func (priv *PrivateKey) Group() *dlgroup.Group { return priv.group }
func (priv *PrivateKey) X() *big.Int           { return priv.x }
func (priv *PrivateKey) Y() *big.Int           { return priv.y }

// Public returns the public half, sharing the group by reference.
func (priv *PrivateKey) Public() *PublicKey {
	return &PublicKey{group: priv.group, y: priv.y}
}

// Encrypt interprets message as a big-endian integer m < p and returns
// c1‖c2 with c1 = gᵏ and c2 = m·yᵏ (mod p), each field ByteLen bytes wide.
// The ephemeral k is drawn by sample.Unit over p-1.
func Encrypt(random io.Reader, pub *PublicKey, message []byte) ([]byte, error) {
	p := pub.group.P()
	m := new(big.Int).SetBytes(message)
	if m.Cmp(p) >= 0 {
		return nil, ErrMessageTooLarge
	}
	pMinus1 := new(big.Int).Sub(p, one)
	k, err := sample.Unit(random, pMinus1)
	if err != nil {
		return nil, err
	}
	c1, c2 := encrypt(pub, m, k)
	n := pub.group.ByteLen()
	out := make([]byte, 2*n)
	c1.FillBytes(out[:n])
	c2.FillBytes(out[n:])
	return out, nil
}

func encrypt(pub *PublicKey, m, k *big.Int) (c1, c2 *big.Int) {
	p := pub.group.P()
	c1 = arith.Exp(pub.group.G(), k, p)
	c2 = new(big.Int).Mul(m, arith.Exp(pub.y, k, p))
	c2.Mod(c2, p)
	return c1, c2
}

// Decrypt splits ciphertext into (c1, c2) and returns the minimal
// big-endian encoding of m = c2·(c1ˣ)⁻¹ mod p. The expected field width
// comes from the key's group.
func Decrypt(priv *PrivateKey, ciphertext []byte) ([]byte, error) {
	n := priv.group.ByteLen()
	if len(ciphertext) != 2*n {
		return nil, ErrCiphertextLength
	}
	p := priv.group.P()
	c1 := new(big.Int).SetBytes(ciphertext[:n])
	c2 := new(big.Int).SetBytes(ciphertext[n:])
	shared := arith.Exp(c1, priv.x, p)
	m := new(big.Int).Mul(c2, arith.Inv(shared, p))
	m.Mod(m, p)
	return m.Bytes(), nil
}

// Sign produces r‖s with r = gᵏ mod p and s = (m - r·x)·k⁻¹ mod (p-1).
// A draw of k that yields s = 0 leaks the private key if published, so the
// whole signature is retried with a fresh k until s is nonzero.
func Sign(random io.Reader, priv *PrivateKey, message []byte) ([]byte, error) {
	p := priv.group.P()
	pMinus1 := new(big.Int).Sub(p, one)
	m := new(big.Int).SetBytes(message)
	if m.Cmp(pMinus1) >= 0 {
		return nil, ErrMessageTooLarge
	}
	var r, s *big.Int
	for {
		k, err := sample.Unit(random, pMinus1)
		if err != nil {
			return nil, err
		}
		r, s = sign(priv, m, k)
		if s.Sign() != 0 {
			break
		}
	}
	n := priv.group.ByteLen()
	out := make([]byte, 2*n)
	r.FillBytes(out[:n])
	s.FillBytes(out[n:])
	return out, nil
}

func sign(priv *PrivateKey, m, k *big.Int) (r, s *big.Int) {
	p := priv.group.P()
	pMinus1 := new(big.Int).Sub(p, one)
	r = arith.Exp(priv.group.G(), k, p)
	kInv := new(big.Int).ModInverse(k, pMinus1)
	s = new(big.Int).Mul(r, priv.x)
	s.Sub(m, s)
	s.Mul(s, kInv)
	s.Mod(s, pMinus1)
	return r, s
}

// Verify checks signature against message. Malformed input (wrong length,
// oversized message) is an error; a well-formed signature that fails the
// range checks or the verification equation returns (false, nil).
func Verify(pub *PublicKey, message, signature []byte) (bool, error) {
	n := pub.group.ByteLen()
	if len(signature) != 2*n {
		return false, ErrSignatureLength
	}
	p := pub.group.P()
	pMinus1 := new(big.Int).Sub(p, one)
	m := new(big.Int).SetBytes(message)
	if m.Cmp(pMinus1) >= 0 {
		return false, ErrMessageTooLarge
	}
	r := new(big.Int).SetBytes(signature[:n])
	s := new(big.Int).SetBytes(signature[n:])
	if r.Sign() <= 0 || r.Cmp(p) >= 0 {
		return false, nil
	}
	if s.Sign() <= 0 || s.Cmp(pMinus1) >= 0 {
		return false, nil
	}
	lhs := arith.Exp(pub.group.G(), m, p)
	rhs := new(big.Int).Mul(arith.Exp(pub.y, r, p), arith.Exp(r, s, p))
	rhs.Mod(rhs, p)
	return lhs.Cmp(rhs) == 0, nil
}

// SharedSecret computes the Diffie-Hellman secret y_peerˣ mod p, encoded
// to the group's fixed element width. Both keys must use the same group.
func SharedSecret(priv *PrivateKey, peer *PublicKey) ([]byte, error) {
	if !priv.group.Equal(peer.group) {
		return nil, ErrGroupMismatch
	}
	p := priv.group.P()
	secret := arith.Exp(peer.y, priv.x, p)
	out := make([]byte, priv.group.ByteLen())
	secret.FillBytes(out)
	return out, nil
}
