package keyopts

import (
	"errors"
	"sync"

	"github.com/mr-shifu/pkc-lib/pkg/common/keyopts"
)

var (
	ErrInvalidKeyID = errors.New("keyopts: missing or invalid key ID")
	ErrKeyNotFound  = errors.New("keyopts: key not found")
)

// Options is the map-backed keyopts.Options implementation.
type Options map[string]string

func NewOptions() Options {
	return make(Options)
}

func (o Options) Set(key, value string) {
	o[key] = value
}

func (o Options) Get(key string) (string, bool) {
	v, ok := o[key]
	return v, ok
}

// KeyOpts maps caller key IDs (the "id" option) to key metadata.
type KeyOpts struct {
	lock sync.RWMutex
	keys map[string]*keyopts.KeyData
}

func NewInMemoryKeyOpts() *KeyOpts {
	return &KeyOpts{
		keys: make(map[string]*keyopts.KeyData),
	}
}

func keyID(opts keyopts.Options) (string, error) {
	id, ok := opts.Get("id")
	if !ok || id == "" {
		return "", ErrInvalidKeyID
	}
	return id, nil
}

func (kr *KeyOpts) Import(ski string, opts keyopts.Options) error {
	kid, err := keyID(opts)
	if err != nil {
		return err
	}

	kr.lock.Lock()
	defer kr.lock.Unlock()

	kr.keys[kid] = &keyopts.KeyData{SKI: ski}
	return nil
}

func (kr *KeyOpts) Get(opts keyopts.Options) (*keyopts.KeyData, error) {
	kid, err := keyID(opts)
	if err != nil {
		return nil, err
	}

	kr.lock.RLock()
	defer kr.lock.RUnlock()

	kd, ok := kr.keys[kid]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return kd, nil
}

func (kr *KeyOpts) Delete(opts keyopts.Options) error {
	kid, err := keyID(opts)
	if err != nil {
		return err
	}

	kr.lock.Lock()
	defer kr.lock.Unlock()

	delete(kr.keys, kid)
	return nil
}
