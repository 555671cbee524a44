package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
	N    int    `json:"n"`
}

func TestMarshalKeepsNonASCIIAndIndents(t *testing.T) {
	data, err := Marshal([]map[string]string{{"es": "¿Dónde está la salida? <aquí>"}})
	require.NoError(t, err)

	assert.Equal(t, "[\n  {\n    \"es\": \"¿Dónde está la salida? <aquí>\"\n  }\n]", string(data))
}

func TestMarshalEmptyList(t *testing.T) {
	data, err := Marshal([]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestUnmarshalToleratesCommentsAndTrailingCommas(t *testing.T) {
	raw := []byte(`[
  // added by hand
  {"name": "a", "n": 1,},
]`)
	var items []item
	require.NoError(t, Unmarshal(raw, &items))
	assert.Equal(t, []item{{Name: "a", N: 1}}, items)
}

func TestLoadListMissingFile(t *testing.T) {
	f := NewJSONFile(filepath.Join(t.TempDir(), "missing.json"))

	_, err := LoadList[item](f)
	assert.True(t, errors.Is(err, ErrNotExist))
	assert.False(t, f.Exists())
}

func TestLoadListRejectsNonArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obj.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"x"}`), 0644))

	_, err := LoadList[item](NewJSONFile(path))
	assert.Error(t, err)
}

func replaceAll(t *testing.T, f *JSONFile, items []item) {
	t.Helper()
	f.Lock()
	defer f.Unlock()
	require.NoError(t, f.SaveLocked(items))
}

func TestSaveLockedOverwritesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	f := NewJSONFile(path)

	replaceAll(t, f, []item{{"a", 1}, {"b", 2}})
	replaceAll(t, f, []item{{"c", 3}})

	items, err := LoadList[item](f)
	require.NoError(t, err)
	assert.Equal(t, []item{{"c", 3}}, items)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestEnsureListCreatesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "logs.json")
	f := NewJSONFile(path)

	created, err := f.EnsureList()
	require.NoError(t, err)
	assert.True(t, created)

	raw, err := f.ReadRaw()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	replaceAll(t, f, []item{{"kept", 1}})
	created, err = f.EnsureList()
	require.NoError(t, err)
	assert.False(t, created)

	items, err := LoadList[item](f)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUpdateListConcurrentWritersDoNotLoseUpdates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.json")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// separate handles share the same lock
			f := NewJSONFile(path)
			err := UpdateList(f, func(items []item) ([]item, error) {
				return append(items, item{Name: "w", N: i}), nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	items, err := LoadList[item](NewJSONFile(path))
	require.NoError(t, err)
	assert.Len(t, items, 20)
}

func TestUpdateListAbortsOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	f := NewJSONFile(path)
	replaceAll(t, f, []item{{"a", 1}})

	boom := errors.New("boom")
	err := UpdateList(f, func(items []item) ([]item, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	items, err := LoadList[item](f)
	require.NoError(t, err)
	assert.Equal(t, []item{{"a", 1}}, items)
}

func TestBackupCopiesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site_registry.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	dst, err := NewJSONFile(path).Backup("corrupt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(dst), "site_registry.json.corrupt-"))

	raw, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "{broken", string(raw))
}

func TestWatcherDebouncesAndFilters(t *testing.T) {
	w, err := NewWatcher(t.TempDir(), nil)
	require.NoError(t, err)
	defer w.watcher.Close()

	var got []string
	w.OnChange(func(name string) { got = append(got, name) })

	dir := w.dir
	w.handleEvent(fsnotify.Event{Name: filepath.Join(dir, "security_officers.json"), Op: fsnotify.Write})
	w.handleEvent(fsnotify.Event{Name: filepath.Join(dir, "security_officers.json"), Op: fsnotify.Write})
	w.handleEvent(fsnotify.Event{Name: filepath.Join(dir, ".security_officers.json.tmp-1"), Op: fsnotify.Create})
	w.handleEvent(fsnotify.Event{Name: filepath.Join(dir, "notes.txt"), Op: fsnotify.Write})
	w.handleEvent(fsnotify.Event{Name: filepath.Join(dir, "time_logs.json"), Op: fsnotify.Chmod})

	w.flush(time.Now())
	assert.Empty(t, got, "events inside the debounce window are held")

	w.flush(time.Now().Add(time.Second))
	assert.Equal(t, []string{"security_officers.json"}, got)
}
