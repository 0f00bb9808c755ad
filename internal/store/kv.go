package store

// KV is the persistence port: a flat key-value blob store. Every persisted
// piece of state is one JSON-encoded value under a fixed key, so storage
// can be swapped or mocked without touching business logic.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}
