package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"amdaops-http-service/internal/infrastructure/config"
)

// testConfig points every data file at a fresh temp directory.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		DataDir:       dir,
		PhotosDir:     filepath.Join(dir, "officers_photos"),
		PhrasesFile:   "phrases.json",
		RegistryFile:  "site_registry.json",
		OfficersFile:  "security_officers.json",
		SchedulesFile: "work_schedules.json",
		TimeLogsFile:  "time_logs.json",
		MaxPhotoBytes: 5 << 20,
		FacetCacheTTL: time.Minute,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(raw)
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
}
