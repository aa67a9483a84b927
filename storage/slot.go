package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Slot is a durable string-valued key-value store. Set replaces the whole
// value; there is no versioning, so concurrent writers race and the last
// one wins.
type Slot interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Driver names accepted by Open.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown storage driver")

// Options configures Open.
type Options struct {
	Driver string
	// Path is a directory for the file driver and a database file for
	// sqlite and bolt.
	Path          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Open returns the Slot implementation selected by opts.Driver.
func Open(ctx context.Context, opts Options) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverFile:
		return NewFileSlot(opts.Path)
	case DriverSQLite:
		return OpenSQLiteSlot(ctx, opts.Path)
	case DriverBolt:
		return OpenBoltSlot(opts.Path)
	case DriverRedis:
		return OpenRedisSlot(ctx, RedisOptions{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
			Prefix:   opts.RedisPrefix,
		})
	case DriverMemory:
		return NewMemorySlot(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
	}
}

func requireKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("slot key is required")
	}
	return nil
}
