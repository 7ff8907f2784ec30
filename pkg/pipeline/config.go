package pipeline

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/kintree/pkg/cache"
	"github.com/matzehuels/kintree/pkg/errors"
)

// Config is the on-disk configuration file (config.toml).
//
//	engine = "basic"
//	align  = true
//
//	[cache]
//	backend    = "redis"
//	redis_addr = "localhost:6379"
type Config struct {
	Engine string       `toml:"engine"`
	Align  bool         `toml:"align"`
	Loose  bool         `toml:"loose"`
	Cache  cache.Config `toml:"cache"`
}

// LoadConfig reads path. A missing file yields the defaults; unknown keys
// are rejected so typos surface instead of being ignored.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
		default:
			md, err := toml.Decode(string(data), &cfg)
			if err != nil {
				return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
			}
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				keys := make([]string, len(undecoded))
				for i, k := range undecoded {
					keys[i] = k.String()
				}
				return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
			}
		}
	}

	if cfg.Engine == "" {
		cfg.Engine = DefaultEngine
	}
	if err := ValidateEngine(cfg.Engine); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	cfg.Cache.SetDefaults()
	return cfg, nil
}

// Options returns pipeline options seeded from the configuration.
func (c Config) Options() Options {
	return Options{Engine: c.Engine, Align: c.Align, Loose: c.Loose}
}
