package keystore

import "github.com/mr-shifu/pkc-lib/pkg/common/keyopts"

// Keystore combines a vault for serialized key material with a metadata
// repository mapping caller key IDs to SKIs.
type Keystore interface {
	Import(ski string, key []byte, opts keyopts.Options) error
	Get(opts keyopts.Options) ([]byte, error)
	Delete(opts keyopts.Options) error
}
