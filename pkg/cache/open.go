package cache

import (
	"context"
	"fmt"
)

// Backend names accepted by [Open].
const (
	BackendFile  = "file"
	BackendNone  = "none"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Config selects and configures a cache backend.
type Config struct {
	Backend string `toml:"backend" json:"backend"`
	Dir     string `toml:"dir" json:"dir,omitempty"`

	RedisAddr     string `toml:"redis_addr" json:"redis_addr,omitempty"`
	RedisPassword string `toml:"redis_password" json:"-"`
	RedisDB       int    `toml:"redis_db" json:"redis_db,omitempty"`

	MongoURI        string `toml:"mongo_uri" json:"mongo_uri,omitempty"`
	MongoDatabase   string `toml:"mongo_database" json:"mongo_database,omitempty"`
	MongoCollection string `toml:"mongo_collection" json:"mongo_collection,omitempty"`
}

// SetDefaults fills empty fields with the defaults of the chosen backend.
func (c *Config) SetDefaults() {
	if c.Backend == "" {
		c.Backend = BackendFile
	}
	if c.RedisAddr == "" {
		c.RedisAddr = "localhost:6379"
	}
	if c.MongoURI == "" {
		c.MongoURI = "mongodb://localhost:27017"
	}
	if c.MongoDatabase == "" {
		c.MongoDatabase = "kintree"
	}
	if c.MongoCollection == "" {
		c.MongoCollection = "cache"
	}
}

// Open builds the configured backend. The file backend requires Dir.
func Open(ctx context.Context, cfg Config) (Cache, error) {
	cfg.SetDefaults()
	switch cfg.Backend {
	case BackendFile:
		if cfg.Dir == "" {
			return nil, fmt.Errorf("%w: file backend without directory", ErrBackend)
		}
		return nonNil(NewFileCache(cfg.Dir))
	case BackendNone:
		return NewNullCache(), nil
	case BackendRedis:
		return nonNil(NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB))
	case BackendMongo:
		return nonNil(NewMongoCache(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection))
	default:
		return nil, fmt.Errorf("%w: %q", ErrBackend, cfg.Backend)
	}
}

// nonNil keeps a failed constructor from returning a typed nil Cache.
func nonNil[C Cache](c C, err error) (Cache, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}
