// internal/store/file.go
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileKV persists all keys in a single JSON document. Every mutation
// rewrites the whole document through a temp file and rename, so a batch
// of keys always lands together.
type FileKV struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

func NewFileKV(path string) (*FileKV, error) {
	kv := &FileKV{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return kv, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &kv.data); err != nil {
			return nil, fmt.Errorf("store: parse %s: %w", path, err)
		}
	}
	return kv, nil
}

func (f *FileKV) Get(key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	value, ok := f.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (f *FileKV) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.data[key] = append(json.RawMessage(nil), value...)
	return f.flush()
}

func (f *FileKV) SetMulti(entries map[string][]byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for key, value := range entries {
		f.data[key] = append(json.RawMessage(nil), value...)
	}
	return f.flush()
}

func (f *FileKV) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.data, key)
	return f.flush()
}

func (f *FileKV) Close() error {
	return nil
}

// flush serializes the full document. Callers must hold the mutex.
func (f *FileKV) flush() error {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal document: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: create %s: %w", dir, err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("store: rename %s: %w", tmp, err)
	}
	return nil
}
