package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// File stores each namespace as a JSON object in its own file under dir.
type File struct {
	dir    string
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewFile creates a file backend rooted at dir, creating the directory if needed.
func NewFile(dir string, logger zerolog.Logger) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	return &File{
		dir:    dir,
		logger: logger.With().Str("component", "file-storage").Logger(),
	}, nil
}

// Namespace returns the view of one namespace file.
func (f *File) Namespace(name string) (KV, error) {
	if !ValidNamespace(name) {
		return nil, ErrInvalidNamespace
	}
	return &fileKV{parent: f, path: filepath.Join(f.dir, name+".json")}, nil
}

type fileKV struct {
	parent *File
	path   string
}

// read returns the namespace contents. A missing file is an empty namespace.
func (kv *fileKV) read() (map[string]string, error) {
	data, err := os.ReadFile(kv.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", kv.path, err)
	}

	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", kv.path, err)
	}
	return values, nil
}

func (kv *fileKV) write(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", kv.path, err)
	}

	tmp := kv.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, kv.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", kv.path, err)
	}
	return nil
}

func (kv *fileKV) Get(_ context.Context, key string) (string, bool, error) {
	kv.parent.mu.Lock()
	defer kv.parent.mu.Unlock()

	values, err := kv.read()
	if err != nil {
		kv.parent.logger.Warn().Err(err).Str("file", kv.path).Msg("storage file unreadable")
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (kv *fileKV) Set(_ context.Context, key, value string) error {
	kv.parent.mu.Lock()
	defer kv.parent.mu.Unlock()

	values, err := kv.read()
	if err != nil {
		// An unreadable file is replaced rather than blocking every write.
		kv.parent.logger.Warn().Err(err).Str("file", kv.path).Msg("overwriting unreadable storage file")
		values = map[string]string{}
	}
	values[key] = value
	return kv.write(values)
}

func (kv *fileKV) Remove(_ context.Context, key string) error {
	kv.parent.mu.Lock()
	defer kv.parent.mu.Unlock()

	values, err := kv.read()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return kv.write(values)
}
