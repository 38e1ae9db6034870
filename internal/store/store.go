package store

import (
	"errors"
	"sync"

	"github.com/inovacc/edcourse/internal/encoding"
	"github.com/inovacc/edcourse/internal/model"
)

// ErrEmptyKey is returned when a slot key is empty.
var ErrEmptyKey = errors.New("store: key is required")

// Store defines the persistence operations used by the app.
type Store interface {
	Ping() error

	// Get returns the blob stored under key, or nil when the slot is empty.
	Get(key string) ([]byte, error)

	// Set replaces the blob stored under key.
	Set(key string, blob []byte) error

	GetConfig() (*model.Config, error)
	SaveConfig(cfg *model.Config) error
	Close() error
}

var (
	once    sync.Once
	db      Store
	errInit error
)

// GetDB returns the initialized database store, opening it on first use.
func GetDB() (Store, error) {
	once.Do(lazyInit)

	return db, errInit
}

func lazyInit() {
	instance, err := initDB()
	if err != nil {
		errInit = err
		return
	}

	if err := instance.Ping(); err != nil {
		_ = instance.Close()
		errInit = err

		return
	}

	db = instance
}

// decodeConfig turns a stored config record into a Config, falling back to
// defaults for a missing record.
func decodeConfig(data []byte) (*model.Config, error) {
	if data == nil {
		cfg := model.DefaultConfig()
		return &cfg, nil
	}

	cfg, err := encoding.ParseJSON[model.Config](data)
	if err != nil {
		return nil, err
	}

	cfg.Normalize()

	return cfg, nil
}

func encodeConfig(cfg *model.Config) ([]byte, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	return encoding.ToJSON(cfg)
}
