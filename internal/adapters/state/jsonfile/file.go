package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	stateFileMode   = 0o600
	stateDirMode    = 0o700
	tempFilePattern = ".state-*.json.tmp"
)

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

// document is one JSON file that is always rewritten whole.
type document struct {
	path string
	name string
	mu   *sync.RWMutex
}

func newDocument(path string, name string) document {
	return document{path: path, name: name, mu: lockForPath(path)}
}

// read decodes the file into v and reports whether the file existed.
func (d document) read(v any) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s file: %w", d.name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s file: %w", d.name, err)
	}

	return true, nil
}

func (d document) write(v any) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(d.path), stateDirMode); err != nil {
		return fmt.Errorf("create %s directory: %w", d.name, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s file: %w", d.name, err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(d.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp %s file: %w", d.name, err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp %s file: %w", d.name, err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp %s file: %w", d.name, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp %s file: %w", d.name, err)
	}

	if err := os.Rename(tempName, d.path); err != nil {
		return fmt.Errorf("replace %s file: %w", d.name, err)
	}

	cleanup = false

	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
