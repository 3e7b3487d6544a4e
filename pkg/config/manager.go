package config

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/segmentio/ksuid"

	"github.com/ironbus-io/ironbus-core/pkg/logger"
)

// Manager holds the active configuration and swaps it atomically.
// Readers always observe a complete, validated Config; a Set in flight
// never exposes a half-written value.
type Manager struct {
	current    atomic.Value // stores snapshot
	callbacks  []func(*Config)
	callbackMu sync.RWMutex
	setMu      sync.Mutex
}

type snapshot struct {
	config   *Config
	revision ksuid.KSUID
}

// NewManager creates a manager with no configuration applied.
func NewManager() *Manager {
	return &Manager{}
}

// Get returns the active configuration, or nil when none has been applied.
// The returned value is shared; callers that want to mutate it must Clone.
func (m *Manager) Get() *Config {
	snap, ok := m.current.Load().(snapshot)
	if !ok {
		return nil
	}
	return snap.config
}

// Revision identifies the active configuration. It changes on every
// applied Set and is ksuid.Nil before the first one.
func (m *Manager) Revision() ksuid.KSUID {
	snap, ok := m.current.Load().(snapshot)
	if !ok {
		return ksuid.Nil
	}
	return snap.revision
}

// Set validates cfg and makes a private copy of it the active
// configuration. When cfg equals the active configuration the call is a
// no-op: the revision is kept and no callbacks fire.
func (m *Manager) Set(ctx context.Context, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration cannot be nil")
	}
	if err := Validate(cfg); err != nil {
		return err
	}

	m.setMu.Lock()
	if old, ok := m.current.Load().(snapshot); ok && configEqual(old.config, cfg) {
		m.setMu.Unlock()
		return nil
	}
	revision, err := ksuid.NewRandom()
	if err != nil {
		m.setMu.Unlock()
		return fmt.Errorf("failed to generate configuration revision: %w", err)
	}
	applied := cfg.Clone()
	m.current.Store(snapshot{config: applied, revision: revision})
	m.setMu.Unlock()

	logger.FromContext(ctx).Debug("configuration applied", "revision", revision)
	m.notify(applied)
	return nil
}

// OnChange registers a callback invoked after each applied Set with the
// new active configuration.
func (m *Manager) OnChange(fn func(*Config)) {
	if fn == nil {
		return
	}
	m.callbackMu.Lock()
	defer m.callbackMu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

func (m *Manager) notify(cfg *Config) {
	m.callbackMu.RLock()
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.callbackMu.RUnlock()
	for _, fn := range callbacks {
		fn(cfg)
	}
}

func configEqual(a, b *Config) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
