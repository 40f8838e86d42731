package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/sweeper/pkg/cli/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweeper.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfigFile(t, `
[target]
name = "Toki Pona Anki Deck 2025.05.29-05.13.41"
tag = "v2025.05.29-05.13.41"
match = "any"

[policy]
allow_missing_target = true
`)

	f, err := config.LoadFile(path)
	gt.NoError(t, err)
	gt.Value(t, f.Target.Name).Equal("Toki Pona Anki Deck 2025.05.29-05.13.41")
	gt.Value(t, f.Target.Tag).Equal("v2025.05.29-05.13.41")
	gt.Value(t, f.Target.Match).Equal("any")
	gt.Value(t, f.Policy.AllowMissingTarget).Equal(true)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to read config file")
}

func TestLoadFile_Invalid(t *testing.T) {
	path := writeConfigFile(t, "not [valid toml")
	_, err := config.LoadFile(path)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to parse config file")
}

func TestFile_ApplyTo_FlagsWin(t *testing.T) {
	path := writeConfigFile(t, `
[target]
name = "from file"
tag = "v-file"
match = "all"
`)

	f, err := config.LoadFile(path)
	gt.NoError(t, err)

	// Flag-set fields are kept, empty ones filled from the file
	target := config.Target{Name: "from flag"}
	f.ApplyTo(&target)

	gt.Value(t, target.Name).Equal("from flag")
	gt.Value(t, target.Tag).Equal("v-file")
	gt.Value(t, target.Match).Equal("all")
}
