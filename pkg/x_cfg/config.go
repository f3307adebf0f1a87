package x_cfg

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/rskv-p/rtree/pkg/x_log"
)

const (
	EnvConfigPath     = "RTREE_CONFIG"
	defaultConfigPath = "./rtree.json"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// TreeConfig sizes a tree built by the driver.
type TreeConfig struct {
	AlphabetSize int `json:"alphabet_size" mapstructure:"alphabet_size"`
	MaxKeyLen    int `json:"max_key_len" mapstructure:"max_key_len"`
	MemoryLimit  int `json:"memory_limit" mapstructure:"memory_limit"` // bytes, 0 is unbounded
}

// Config is the driver configuration file.
type Config struct {
	Tree TreeConfig   `json:"tree" mapstructure:"tree"`
	Log  x_log.Config `json:"log" mapstructure:"log"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Tree: TreeConfig{AlphabetSize: 128, MaxKeyLen: 128},
		Log:  x_log.DefaultConfig(),
	}
}

// Load reads the config from path, $RTREE_CONFIG or ./rtree.json, in that
// order. A missing file yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	cfg := Default()
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := decode(raw, cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}

	x_log.ApplyDefaults(&cfg.Log)
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate rejects sizes the tree cannot be built with.
func (c *Config) Validate() error {
	switch {
	case c.Tree.AlphabetSize < 1:
		return errors.Wrapf(ErrInvalid, "alphabet_size %d < 1", c.Tree.AlphabetSize)
	case c.Tree.MaxKeyLen < 1:
		return errors.Wrapf(ErrInvalid, "max_key_len %d < 1", c.Tree.MaxKeyLen)
	case c.Tree.MemoryLimit < 0:
		return errors.Wrapf(ErrInvalid, "memory_limit %d < 0", c.Tree.MemoryLimit)
	}
	return nil
}
