package config

import (
	"os"
	"os/user"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/sid3xyz/slirc/irc/protocol"
)

// The name of the environment variable which specifies the location of the
// config directory.
const ConfigEnvVar = "SLIRCPATH"

// Config holds the tool configuration saved in the config file in TOML
// format.
type Config struct {
	// MaxLineLen is the line length budget in bytes, CRLF included.
	MaxLineLen int `toml:"max_line_len"`

	// MaxTagsLen grants the tags section its own budget when above zero,
	// the way the message-tags capability does.
	MaxTagsLen int `toml:"max_tags_len"`

	// Pretty enables indented interchange output.
	Pretty bool `toml:"pretty"`
}

// Limits converts the configured budgets to the form the engine takes.
func (conf *Config) Limits() protocol.Limits {
	return protocol.Limits{
		MaxLineLen: conf.MaxLineLen,
		MaxTagsLen: conf.MaxTagsLen,
	}
}

// Save writes the config to a file.
func (conf *Config) Save(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.Wrap(err, "could not create the config file")
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(conf); err != nil {
		return errors.Wrap(err, "could not encode the config")
	}
	return nil
}

// Get returns a ready-to-use config loaded from the given path. A missing
// file yields the defaults.
func Get(path string) (*Config, error) {
	conf := Default()
	_, err := toml.DecodeFile(path, conf)
	if os.IsNotExist(err) {
		return conf, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not load the config")
	}
	return conf, nil
}

// GetDirPath returns the directory in which config and data are saved.
func GetDirPath() string {
	// Overriden by env variable.
	if envDir := os.Getenv(ConfigEnvVar); envDir != "" {
		return envDir
	}

	// Default directory in $HOME.
	user, _ := user.Current()
	return path.Join(user.HomeDir, ".slirc")
}

// GetConfigPath returns the location of the config file.
func GetConfigPath() string {
	return path.Join(GetDirPath(), "config.toml")
}

// Default returns a config filled with default values.
func Default() *Config {
	return &Config{
		MaxLineLen: protocol.MaxLineLen,
	}
}
