// Package database opens and manages the BadgerDB document store.
package database

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

// Config holds the store configuration.
type Config struct {
	// Path is the directory for database files. Ignored when InMemory is set.
	Path string
	// InMemory keeps everything in RAM, used by tests.
	InMemory bool
	// SyncWrites forces an fsync per write.
	SyncWrites bool
	// GCInterval is how often to run value-log garbage collection; 0 disables.
	GCInterval time.Duration
	// GCDiscardRatio is the minimum garbage ratio that triggers a rewrite.
	GCDiscardRatio float64
}

// DefaultConfig returns the production configuration for the given path.
func DefaultConfig(path string) Config {
	return Config{
		Path:           path,
		SyncWrites:     true,
		GCInterval:     5 * time.Minute,
		GCDiscardRatio: 0.5,
	}
}

// InMemoryConfig returns a configuration for tests: no disk, no GC.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// DB wraps a badger instance with GC lifecycle management.
type DB struct {
	*badger.DB
	stopGC chan struct{}
	doneGC chan struct{}
}

// badgerLogger routes badger's internal logging through logrus at debug level.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{})   { logrus.Errorf(format, args...) }
func (badgerLogger) Warningf(format string, args ...interface{}) { logrus.Warnf(format, args...) }
func (badgerLogger) Infof(format string, args ...interface{})    { logrus.Debugf(format, args...) }
func (badgerLogger) Debugf(format string, args ...interface{})   { logrus.Debugf(format, args...) }

// Open opens the store, creating the directory if needed, and starts the GC
// loop when configured. The caller must Close the returned DB.
func Open(cfg Config) (*DB, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("database path is required")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithLogger(badgerLogger{})

	bdb, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}

	db := &DB{DB: bdb}
	if cfg.GCInterval > 0 && !cfg.InMemory {
		db.stopGC = make(chan struct{})
		db.doneGC = make(chan struct{})
		go db.runGC(cfg.GCInterval, cfg.GCDiscardRatio)
	}
	return db, nil
}

func (d *DB) runGC(interval time.Duration, ratio float64) {
	defer close(d.doneGC)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stopGC:
			return
		case <-ticker.C:
			err := d.RunValueLogGC(ratio)
			if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
				logrus.WithError(err).Warn("badger value log GC failed")
			}
		}
	}
}

// Close stops the GC loop and closes the store.
func (d *DB) Close() error {
	if d.stopGC != nil {
		close(d.stopGC)
		<-d.doneGC
	}
	return d.DB.Close()
}
