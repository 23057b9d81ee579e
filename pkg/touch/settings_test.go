package touch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "touch.yaml")
	assert.NilError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestReadSettings_Defaults(t *testing.T) {
	t.Setenv(SettingsEnvVar, "")

	settings, err := ReadSettings("")
	assert.NilError(t, err)
	assert.Equal(t, settings.Jobs, 1)
	assert.Assert(t, settings.DateLayouts == nil)
}

func TestReadSettings_File(t *testing.T) {
	path := writeSettings(t, `
jobs: 8
dateLayouts:
  - "02.01.2006 15:04"
`)

	settings, err := ReadSettings(path)
	assert.NilError(t, err)
	assert.Equal(t, settings.Path, path)
	assert.Equal(t, settings.Jobs, 8)
	assert.DeepEqual(t, settings.DateLayouts, []string{"02.01.2006 15:04"})

	r := settings.Resolver()
	r.Now = func() time.Time { return fixedNow }

	times, err := r.Resolve(mustConfig(t, Options{Date: ptr("03.01.2009 03:13")}))
	assert.NilError(t, err)
	assert.Assert(t, times.Modification.Equal(time.Date(2009, 1, 3, 3, 13, 0, 0, time.UTC)))
}

func TestReadSettings_FromEnv(t *testing.T) {
	t.Setenv(SettingsEnvVar, writeSettings(t, "jobs: 3\n"))

	settings, err := ReadSettings("")
	assert.NilError(t, err)
	assert.Equal(t, settings.Jobs, 3)
}

func TestReadSettings_EnvPointsAtMissingFile(t *testing.T) {
	t.Setenv(SettingsEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	settings, err := ReadSettings("")
	assert.NilError(t, err)
	assert.Equal(t, settings.Jobs, 1)
}

func TestReadSettings_MissingExplicitFile(t *testing.T) {
	_, err := ReadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Assert(t, os.IsNotExist(err))
}

func TestReadSettings_Invalid(t *testing.T) {
	_, err := ReadSettings(writeSettings(t, "jobs: [1"))
	assert.ErrorContains(t, err, "touch.yaml")

	_, err = ReadSettings(writeSettings(t, "jobs: 0\n"))
	assert.ErrorContains(t, err, "jobs must be at least 1")
}
