// Package storage is a small key-value layer standing in for browser local
// storage. Values are opaque bytes stored and replaced whole.
package storage

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jsphweid/fifths/config"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

type Storage interface {
	// Get returns false when the key has never been set or was removed.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	// Remove is not an error for a missing key.
	Remove(key string) error
	Close() error
}

func Open(c config.StorageConfig) (Storage, error) {
	switch c.Backend {
	case "memory":
		return NewMemory(), nil
	case "file":
		return NewFile(c.Path)
	case "sqlite":
		return NewSQLite(c.Path)
	case "dynamodb":
		return NewDynamo(c.Dynamo)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
}

type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte{}, v...), true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte{}, value...)
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Close() error {
	return nil
}
