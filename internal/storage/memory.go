package storage

import (
	"context"
	"sync"
)

// Memory keeps every namespace in process memory. Contents are lost on exit.
type Memory struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]map[string]string)}
}

// Namespace returns the view of one namespace.
func (m *Memory) Namespace(name string) (KV, error) {
	if !ValidNamespace(name) {
		return nil, ErrInvalidNamespace
	}
	return &memoryKV{parent: m, ns: name}, nil
}

type memoryKV struct {
	parent *Memory
	ns     string
}

func (kv *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	kv.parent.mu.RLock()
	defer kv.parent.mu.RUnlock()

	v, ok := kv.parent.data[kv.ns][key]
	return v, ok, nil
}

func (kv *memoryKV) Set(_ context.Context, key, value string) error {
	kv.parent.mu.Lock()
	defer kv.parent.mu.Unlock()

	ns, ok := kv.parent.data[kv.ns]
	if !ok {
		ns = make(map[string]string)
		kv.parent.data[kv.ns] = ns
	}
	ns[key] = value
	return nil
}

func (kv *memoryKV) Remove(_ context.Context, key string) error {
	kv.parent.mu.Lock()
	defer kv.parent.mu.Unlock()

	delete(kv.parent.data[kv.ns], key)
	return nil
}
