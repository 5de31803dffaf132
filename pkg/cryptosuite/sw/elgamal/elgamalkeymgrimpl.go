package elgamal

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	core "github.com/mr-shifu/pkc-lib/core/elgamal"
	"github.com/mr-shifu/pkc-lib/core/math/dlgroup"
	cs_elgamal "github.com/mr-shifu/pkc-lib/pkg/common/cryptosuite/elgamal"
	"github.com/mr-shifu/pkc-lib/pkg/common/keyopts"
	"github.com/mr-shifu/pkc-lib/pkg/common/keystore"
)

var ErrInvalidImport = errors.New("elgamal: unsupported import data")

// Config selects the group new keys are generated on. When Group is set it
// is used directly; otherwise a fresh safe-prime group of Bits bits is
// discovered per key.
type Config struct {
	Bits  int
	Group *dlgroup.Group
}

type ElgamalKeyManager struct {
	keystore keystore.Keystore
	cfg      *Config
}

func NewElgamalKeyManager(store keystore.Keystore, cfg *Config) *ElgamalKeyManager {
	return &ElgamalKeyManager{
		keystore: store,
		cfg:      cfg,
	}
}

func (mgr *ElgamalKeyManager) GenerateKey(opts keyopts.Options) (cs_elgamal.ElgamalKey, error) {
	var priv *core.PrivateKey
	var err error
	if mgr.cfg.Group != nil {
		priv, err = core.GenerateKeyInGroup(rand.Reader, mgr.cfg.Group)
	} else {
		priv, err = core.GenerateKey(rand.Reader, mgr.cfg.Bits)
	}
	if err != nil {
		return nil, err
	}

	key := fromCore(priv)
	if err := mgr.store(key, opts); err != nil {
		return nil, err
	}
	return key, nil
}

func (mgr *ElgamalKeyManager) ImportKey(data interface{}, opts keyopts.Options) (cs_elgamal.ElgamalKey, error) {
	var key ElgamalKey
	var err error
	switch d := data.(type) {
	case []byte:
		key, err = fromBytes(d)
	case ElgamalKey:
		key = d
	default:
		return nil, ErrInvalidImport
	}
	if err != nil {
		return nil, err
	}

	if err := mgr.store(key, opts); err != nil {
		return nil, err
	}
	return key, nil
}

func (mgr *ElgamalKeyManager) GetKey(opts keyopts.Options) (cs_elgamal.ElgamalKey, error) {
	decoded, err := mgr.keystore.Get(opts)
	if err != nil {
		return nil, err
	}
	return fromBytes(decoded)
}

func (mgr *ElgamalKeyManager) Encrypt(message []byte, opts keyopts.Options) ([]byte, error) {
	key, err := mgr.GetKey(opts)
	if err != nil {
		return nil, err
	}
	return key.Encrypt(message)
}

func (mgr *ElgamalKeyManager) Decrypt(ciphertext []byte, opts keyopts.Options) ([]byte, error) {
	key, err := mgr.GetKey(opts)
	if err != nil {
		return nil, err
	}
	return key.Decrypt(ciphertext)
}

func (mgr *ElgamalKeyManager) Sign(message []byte, opts keyopts.Options) ([]byte, error) {
	key, err := mgr.GetKey(opts)
	if err != nil {
		return nil, err
	}
	return key.Sign(message)
}

func (mgr *ElgamalKeyManager) Verify(message, signature []byte, opts keyopts.Options) (bool, error) {
	key, err := mgr.GetKey(opts)
	if err != nil {
		return false, err
	}
	return key.Verify(message, signature)
}

func (mgr *ElgamalKeyManager) store(key ElgamalKey, opts keyopts.Options) error {
	decoded, err := key.Bytes()
	if err != nil {
		return err
	}
	ski := hex.EncodeToString(key.SKI())
	return mgr.keystore.Import(ski, decoded, opts)
}
