package elgamal

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	core "github.com/mr-shifu/pkc-lib/core/elgamal"
	"github.com/mr-shifu/pkc-lib/core/math/dlgroup"
	cs_elgamal "github.com/mr-shifu/pkc-lib/pkg/common/cryptosuite/elgamal"
)

var ErrPrivateKeyRequired = errors.New("elgamal: operation requires a private key")

// ElgamalKey wraps a core key pair; priv is nil for a public-only key.
type ElgamalKey struct {
	priv *core.PrivateKey
	pub  *core.PublicKey
}

// rawElgamalKey is the cbor wire form. P and G are required; Y may be
// omitted when X is present (it is re-derived on import).
type rawElgamalKey struct {
	P []byte
	G []byte
	X []byte
	Y []byte
}

func (key ElgamalKey) Bytes() ([]byte, error) {
	group := key.pub.Group()
	raw := &rawElgamalKey{
		P: group.P().Bytes(),
		G: group.G().Bytes(),
		Y: key.pub.Y().Bytes(),
	}
	if key.Private() {
		raw.X = key.priv.X().Bytes()
	}
	return cbor.Marshal(raw)
}

// SKI fingerprints the public parameters (p, g, y).
func (key ElgamalKey) SKI() []byte {
	group := key.pub.Group()
	h := sha256.New()
	h.Write(group.P().Bytes())
	h.Write(group.G().Bytes())
	h.Write(key.pub.Y().Bytes())
	return h.Sum(nil)
}

func (key ElgamalKey) Private() bool {
	return key.priv != nil
}

func (key ElgamalKey) PublicKey() cs_elgamal.ElgamalKey {
	return ElgamalKey{pub: key.pub}
}

func (key ElgamalKey) PublicKeyRaw() *core.PublicKey {
	return key.pub
}

func (key ElgamalKey) Encrypt(message []byte) ([]byte, error) {
	return core.Encrypt(rand.Reader, key.pub, message)
}

func (key ElgamalKey) Decrypt(ciphertext []byte) ([]byte, error) {
	if !key.Private() {
		return nil, ErrPrivateKeyRequired
	}
	return core.Decrypt(key.priv, ciphertext)
}

func (key ElgamalKey) Sign(message []byte) ([]byte, error) {
	if !key.Private() {
		return nil, ErrPrivateKeyRequired
	}
	return core.Sign(rand.Reader, key.priv, message)
}

func (key ElgamalKey) Verify(message, signature []byte) (bool, error) {
	return core.Verify(key.pub, message, signature)
}

func (key ElgamalKey) SharedSecret(peer cs_elgamal.ElgamalKey) ([]byte, error) {
	if !key.Private() {
		return nil, ErrPrivateKeyRequired
	}
	return core.SharedSecret(key.priv, peer.PublicKeyRaw())
}

func fromCore(priv *core.PrivateKey) ElgamalKey {
	return ElgamalKey{priv: priv, pub: priv.Public()}
}

func fromBytes(data []byte) (ElgamalKey, error) {
	raw := &rawElgamalKey{}
	if err := cbor.Unmarshal(data, raw); err != nil {
		return ElgamalKey{}, err
	}

	if len(raw.P) == 0 || len(raw.G) == 0 {
		return ElgamalKey{}, core.ErrMissingParameter
	}
	group, err := dlgroup.NewGroup(
		new(big.Int).SetBytes(raw.P),
		new(big.Int).SetBytes(raw.G),
	)
	if err != nil {
		return ElgamalKey{}, err
	}

	var y *big.Int
	if len(raw.Y) > 0 {
		y = new(big.Int).SetBytes(raw.Y)
	}

	if len(raw.X) > 0 {
		priv, err := core.NewPrivateKey(group, new(big.Int).SetBytes(raw.X), y)
		if err != nil {
			return ElgamalKey{}, err
		}
		return fromCore(priv), nil
	}

	pub, err := core.NewPublicKey(group, y)
	if err != nil {
		return ElgamalKey{}, err
	}
	return ElgamalKey{pub: pub}, nil
}
