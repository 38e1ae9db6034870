package store

import (
	"bytes"
	"sync"

	"github.com/inovacc/edcourse/internal/model"
)

// Memory is a Store that keeps everything in process memory.
type Memory struct {
	mu     sync.RWMutex
	slots  map[string][]byte
	config []byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

func (m *Memory) Ping() error { return nil }

func (m *Memory) Close() error { return nil }

func (m *Memory) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.slots[key]
	if !ok {
		return nil, nil
	}

	return bytes.Clone(v), nil
}

func (m *Memory) Set(key string, blob []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[key] = bytes.Clone(blob)

	return nil
}

func (m *Memory) GetConfig() (*model.Config, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return decodeConfig(m.config)
}

func (m *Memory) SaveConfig(cfg *model.Config) error {
	data, err := encodeConfig(cfg)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.config = data

	return nil
}
