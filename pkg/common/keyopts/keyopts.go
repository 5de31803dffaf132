package keyopts

// KeyData is the metadata stored per caller-visible key ID.
type KeyData struct {
	SKI string
}

// Options carries the caller's lookup metadata for a key, at minimum the
// "id" entry.
type Options interface {
	Set(key, value string)
	Get(key string) (string, bool)
}

// KeyOpts resolves caller key IDs to the SKI under which the material is
// vaulted.
type KeyOpts interface {
	// Import records that the key identified by opts lives under ski.
	Import(ski string, opts Options) error

	// Get returns the metadata recorded for the key identified by opts.
	Get(opts Options) (*KeyData, error)

	// Delete removes the metadata for the key identified by opts.
	Delete(opts Options) error
}
