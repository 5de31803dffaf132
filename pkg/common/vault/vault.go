package vault

// Vault is the backing store for serialized key material, addressed by the
// key's SKI (hex-encoded fingerprint).
type Vault interface {
	Import(ski string, data []byte) error
	Get(ski string) ([]byte, error)
	Delete(ski string) error
}
