package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tidwall/jsonc"
)

// ErrNotExist is returned when the backing file is missing.
var ErrNotExist = fs.ErrNotExist

var (
	locksMu sync.Mutex
	locks   = make(map[string]*sync.Mutex)
)

// fileLock returns the process-wide mutex for a path, so two JSONFile values
// pointing at the same file serialize their writes.
func fileLock(path string) *sync.Mutex {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	locksMu.Lock()
	defer locksMu.Unlock()
	mu, ok := locks[abs]
	if !ok {
		mu = &sync.Mutex{}
		locks[abs] = mu
	}
	return mu
}

// JSONFile is a whole-file JSON document on disk. Every save rewrites the
// file; there is no partial update.
type JSONFile struct {
	path string
	mu   *sync.Mutex
}

// NewJSONFile returns a handle for path. The file is not touched.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path, mu: fileLock(path)}
}

// Path returns the file location.
func (f *JSONFile) Path() string { return f.path }

// Exists reports whether the file is present.
func (f *JSONFile) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}

// ReadRaw returns the file bytes as stored.
func (f *JSONFile) ReadRaw() ([]byte, error) {
	return os.ReadFile(f.path)
}

// Decode reads the file into v. Comments and trailing commas left by hand
// edits are stripped first.
func (f *JSONFile) Decode(v interface{}) error {
	raw, err := f.ReadRaw()
	if err != nil {
		return err
	}
	return Unmarshal(raw, v)
}

// SaveLocked overwrites the file with v. Callers must hold Lock.
func (f *JSONFile) SaveLocked(v interface{}) error {
	return f.save(v)
}

// SaveRawLocked overwrites the file with already-encoded bytes. Callers
// must hold Lock.
func (f *JSONFile) SaveRawLocked(data []byte) error {
	return writeAtomic(f.path, data)
}

func (f *JSONFile) save(v interface{}) error {
	data, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(f.path), err)
	}
	return writeAtomic(f.path, data)
}

// EnsureList creates the file holding an empty array when it is missing.
// It reports whether the file was created.
func (f *JSONFile) EnsureList() (bool, error) {
	return f.EnsureDefault([]interface{}{})
}

// EnsureDefault creates the file holding v when it is missing.
func (f *JSONFile) EnsureDefault(v interface{}) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := os.Stat(f.path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err := f.save(v); err != nil {
		return false, err
	}
	return true, nil
}

// Backup copies the current file next to itself as <name>.<tag>-<unix>.
func (f *JSONFile) Backup(tag string) (string, error) {
	raw, err := f.ReadRaw()
	if err != nil {
		return "", err
	}
	dst := fmt.Sprintf("%s.%s-%d", f.path, tag, time.Now().Unix())
	if err := os.WriteFile(dst, raw, 0644); err != nil {
		return "", err
	}
	return dst, nil
}

// Lock serializes a read-modify-write cycle on the file. Callers must Unlock.
func (f *JSONFile) Lock()   { f.mu.Lock() }
func (f *JSONFile) Unlock() { f.mu.Unlock() }

// LoadList decodes a top-level JSON array. A missing file yields ErrNotExist.
func LoadList[T any](f *JSONFile) ([]T, error) {
	var items []T
	if err := f.Decode(&items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// UpdateList loads the array, hands it to fn and saves the result, all under
// the file lock. A missing file starts as an empty list.
func UpdateList[T any](f *JSONFile, fn func([]T) ([]T, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := LoadList[T](f)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		items = []T{}
	}

	updated, err := fn(items)
	if err != nil {
		return err
	}
	if updated == nil {
		updated = []T{}
	}
	return f.save(updated)
}

// Marshal encodes v as two-space indented JSON with non-ASCII text kept
// literal and no trailing newline.
func Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Unmarshal decodes JSON, tolerating comments and trailing commas.
func Unmarshal(raw []byte, v interface{}) error {
	return json.Unmarshal(jsonc.ToJSON(raw), v)
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
