package kdf

import (
	"encoding/hex"

	"github.com/mr-shifu/pkc-lib/core/bcrypt"
	"github.com/mr-shifu/pkc-lib/core/bcryptpbkdf"
	cs_kdf "github.com/mr-shifu/pkc-lib/pkg/common/cryptosuite/kdf"
	"github.com/mr-shifu/pkc-lib/pkg/common/keyopts"
	"github.com/mr-shifu/pkc-lib/pkg/common/keystore"
)

// KDFManager derives keys with the bcrypt family and stores the material
// in a keystore under its blake3 fingerprint.
type KDFManager struct {
	keystore keystore.Keystore
}

func NewKDFManager(store keystore.Keystore) *KDFManager {
	return &KDFManager{keystore: store}
}

func (mgr *KDFManager) DeriveBcrypt(passphrase, salt []byte, rounds uint64, opts keyopts.Options) (cs_kdf.DerivedKey, error) {
	material, err := bcrypt.Key(passphrase, salt, rounds, bcrypt.KeyLength)
	if err != nil {
		return nil, err
	}
	return mgr.store(material, opts)
}

func (mgr *KDFManager) DerivePBKDF(passphrase, salt []byte, rounds, keyLen int, opts keyopts.Options) (cs_kdf.DerivedKey, error) {
	material, err := bcryptpbkdf.Key(passphrase, salt, rounds, keyLen)
	if err != nil {
		return nil, err
	}
	return mgr.store(material, opts)
}

func (mgr *KDFManager) GetKey(opts keyopts.Options) (cs_kdf.DerivedKey, error) {
	material, err := mgr.keystore.Get(opts)
	if err != nil {
		return nil, err
	}
	return newDerivedKey(material), nil
}

func (mgr *KDFManager) store(material []byte, opts keyopts.Options) (cs_kdf.DerivedKey, error) {
	key := newDerivedKey(material)
	ski := hex.EncodeToString(key.SKI())
	if err := mgr.keystore.Import(ski, material, opts); err != nil {
		return nil, err
	}
	return key, nil
}
