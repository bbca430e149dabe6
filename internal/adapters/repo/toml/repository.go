package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/clipgen-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	StatePathKey    = "state.path"
	stateFileMode   = 0o600
	stateDirMode    = 0o700
	stateConfigDir  = ".config/clipgen"
	stateFileName   = "state.toml"
	tempFilePattern = ".state-*.toml.tmp"
)

// Repository is a KeyValueStore persisted as a single TOML document.
type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.KeyValueStore = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(StatePathKey)
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve state path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Repository{path: absPath, mu: lockForPath(absPath)}, nil
}

func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, stateConfigDir, stateFileName), nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	state, err := r.read()
	if err != nil {
		return "", false, err
	}

	value, ok := state.Values[key]
	return value, ok, nil
}

func (r *Repository) Set(ctx context.Context, key string, value string) error {
	return r.update(ctx, func(values map[string]string) bool {
		if current, ok := values[key]; ok && current == value {
			return false
		}
		values[key] = value
		return true
	})
}

func (r *Repository) Remove(ctx context.Context, key string) error {
	return r.update(ctx, func(values map[string]string) bool {
		if _, ok := values[key]; !ok {
			return false
		}
		delete(values, key)
		return true
	})
}

func (r *Repository) Clear(ctx context.Context) error {
	return r.update(ctx, func(values map[string]string) bool {
		if len(values) == 0 {
			return false
		}
		clear(values)
		return true
	})
}

func (r *Repository) update(ctx context.Context, mutate func(values map[string]string) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := r.read()
	if err != nil {
		return err
	}

	if !mutate(state.Values) {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.write(state)
}

func (r *Repository) read() (stateSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			state := stateSchema{}
			state.applyDefaults()
			return state, nil
		}
		return stateSchema{}, fmt.Errorf("read state file: %w", err)
	}

	var state stateSchema
	if err := toml.Unmarshal(data, &state); err != nil {
		return stateSchema{}, fmt.Errorf("decode state file: %w", err)
	}
	if err := state.validateVersion(); err != nil {
		return stateSchema{}, err
	}
	state.applyDefaults()

	return state, nil
}

func (r *Repository) write(state stateSchema) error {
	state.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := toml.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
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
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp state file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}
	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
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
