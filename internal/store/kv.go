// internal/store/kv.go
package store

// KV is the persistence capability behind the collection store. Values
// are opaque byte slices; a missing key is reported via the bool, not an
// error. SetMulti must apply all entries atomically so that a crash can
// never surface a partial batch.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	SetMulti(entries map[string][]byte) error
	Delete(key string) error
	Close() error
}
