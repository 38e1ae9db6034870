package store

import (
	"bytes"
	"time"

	"github.com/inovacc/edcourse/internal/encoding"
	"github.com/inovacc/edcourse/internal/model"
	"go.etcd.io/bbolt"
)

const (
	boltBucketState  = "state"  // key: slot name -> state blob
	boltBucketConfig = "config" // key: "config" -> Config JSON
	boltConfigKey    = "config"
)

// Bolt is a Store backed by a BoltDB file.
type Bolt struct {
	storage *bbolt.DB
}

// NewBolt opens (or creates) a Bolt database at the specified path.
func NewBolt(path string) (*Bolt, error) {
	if err := encoding.EnsureParentDir(path); err != nil {
		return nil, err
	}

	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketState)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketConfig)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

func (b *Bolt) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	var out []byte

	err := b.storage.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketState)).Get([]byte(key))
		if v != nil {
			// values are only valid for the life of the transaction
			out = bytes.Clone(v)
		}

		return nil
	})

	return out, err
}

func (b *Bolt) Set(key string, blob []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketState)).Put([]byte(key), blob)
	})
}

func (b *Bolt) GetConfig() (*model.Config, error) {
	var data []byte

	err := b.storage.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketConfig)).Get([]byte(boltConfigKey))
		if v != nil {
			data = bytes.Clone(v)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return decodeConfig(data)
}

func (b *Bolt) SaveConfig(cfg *model.Config) error {
	data, err := encodeConfig(cfg)
	if err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketConfig)).Put([]byte(boltConfigKey), data)
	})
}
