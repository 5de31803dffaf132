package kdf

import (
	"github.com/zeebo/blake3"

	cs_kdf "github.com/mr-shifu/pkc-lib/pkg/common/cryptosuite/kdf"
)

// DerivedKey holds raw derived material. Its SKI is a blake3 fingerprint
// of the material itself, so identical derivations share an identity.
type DerivedKey struct {
	material []byte
}

func newDerivedKey(material []byte) DerivedKey {
	return DerivedKey{material: material}
}

func (key DerivedKey) Bytes() ([]byte, error) {
	out := make([]byte, len(key.material))
	copy(out, key.material)
	return out, nil
}

func (key DerivedKey) SKI() []byte {
	sum := blake3.Sum256(key.material)
	return sum[:]
}

func (key DerivedKey) Len() int {
	return len(key.material)
}

var _ cs_kdf.DerivedKey = DerivedKey{}
