package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sweeper/pkg/domain/types"
	"github.com/pelletier/go-toml/v2"
)

// File is the optional TOML configuration file. Values from the file fill
// in fields that were not set by flags or environment variables; flags
// always win.
//
//	[target]
//	name = "Toki Pona Anki Deck 2025.05.29-05.13.41"
//	tag = "v2025.05.29-05.13.41"
//	match = "any"
//
//	[policy]
//	allow_missing_target = false
type File struct {
	Target struct {
		Name  string `toml:"name"`
		Tag   string `toml:"tag"`
		Match string `toml:"match"`
	} `toml:"target"`
	Policy struct {
		AllowMissingTarget bool `toml:"allow_missing_target"`
	} `toml:"policy"`
}

// LoadFile reads and parses a TOML configuration file
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file",
			goerr.T(types.ErrTagConfig),
			goerr.V("path", path),
		)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file",
			goerr.T(types.ErrTagConfig),
			goerr.V("path", path),
		)
	}

	return &f, nil
}

// ApplyTo fills empty target fields from the file
func (f *File) ApplyTo(target *Target) {
	if target.Name == "" {
		target.Name = f.Target.Name
	}
	if target.Tag == "" {
		target.Tag = f.Target.Tag
	}
	if target.Match == "" {
		target.Match = f.Target.Match
	}
}
