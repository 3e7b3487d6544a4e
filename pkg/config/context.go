package config

import (
	"context"
)

// ContextKey is an alias used for storing values in context
type ContextKey string

const (
	// ManagerCtxKey is the context key used to store the *Manager instance
	ManagerCtxKey ContextKey = "config_manager"
)

// ContextWithManager stores the configuration manager in the context
func ContextWithManager(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, ManagerCtxKey, m)
}

// ManagerFromContext retrieves the configuration manager from the context,
// or nil when none was attached. There is deliberately no fallback
// instance: callers own construction, and a missing manager should surface
// as nil at the call site rather than as hidden global state.
func ManagerFromContext(ctx context.Context) *Manager {
	if ctx == nil {
		return nil
	}
	m, ok := ctx.Value(ManagerCtxKey).(*Manager)
	if !ok {
		return nil
	}
	return m
}

// FromContext returns the active configuration of the manager attached to
// ctx, or nil when no manager or no configuration is present.
func FromContext(ctx context.Context) *Config {
	m := ManagerFromContext(ctx)
	if m == nil {
		return nil
	}
	return m.Get()
}
