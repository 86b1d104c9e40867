package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is looked up in the working directory when --config is not
// given.
const DefaultFileName = ".cifmt.toml"

// File holds defaults loaded from a TOML config file. Flags set on the
// command line win over file values; the CLI applies the precedence.
type File struct {
	Platform string   `toml:"platform"`
	Color    string   `toml:"color"`
	Out      string   `toml:"out"`
	Emit     []string `toml:"emit"`
}

// LoadFile reads a TOML config file. A missing file is only an error when
// the path was explicitly requested.
func LoadFile(path string, explicit bool) (*File, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return &f, nil
}
