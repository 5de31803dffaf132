package vault

import (
	"errors"
	"sync"
)

var ErrKeyNotFound = errors.New("vault: key not found")

// InMemoryVault keeps serialized key material in a mutex-guarded map.
type InMemoryVault struct {
	lock sync.RWMutex
	keys map[string][]byte
}

func NewInMemoryVault() *InMemoryVault {
	return &InMemoryVault{
		keys: make(map[string][]byte),
	}
}

func (store *InMemoryVault) Import(ski string, data []byte) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	store.keys[ski] = data
	return nil
}

func (store *InMemoryVault) Get(ski string) ([]byte, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()

	data, ok := store.keys[ski]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return data, nil
}

func (store *InMemoryVault) Delete(ski string) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	delete(store.keys, ski)
	return nil
}
