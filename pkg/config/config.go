package config

import (
	"time"

	"github.com/ironbus-io/ironbus-core/pkg/config/definition"
	"github.com/ironbus-io/ironbus-core/pkg/fspath"
)

// Config is the complete configuration of the messaging runtime: naming
// conventions, capacity limits, buffering policy, and the behavioral
// switches every other subsystem reads at construction time.
//
// A Config is a plain value. Direct field access is the read and write
// surface; string-like fields are validated fspath types, so a stored value
// is always valid and is never re-checked on read. Instances are not
// internally synchronized: mutate on one goroutine, then share read-only,
// or hand the value to a Manager.
type Config struct {
	Global   GlobalConfig `koanf:"global"`
	Defaults Defaults     `koanf:"defaults"`
}

// GlobalConfig settings apply to the whole machine-local installation and
// must agree between every process that wants to communicate.
type GlobalConfig struct {
	// Prefix is prepended to every file and shared-memory resource the
	// runtime creates, separating installations that share a machine.
	Prefix   fspath.FileName `koanf:"prefix"    validate:"required,file_name"`
	RootPath fspath.Path     `koanf:"root_path" validate:"required,fs_path"`
	Service  ServiceConfig   `koanf:"service"`
	Node     NodeConfig      `koanf:"node"`
}

// ServiceConfig controls how messaging services are materialized on the
// file system.
type ServiceConfig struct {
	Directory                  fspath.Path     `koanf:"directory"                     validate:"required,fs_path"`
	PublisherDataSegmentSuffix fspath.FileName `koanf:"publisher_data_segment_suffix" validate:"required,file_name"`
	StaticConfigStorageSuffix  fspath.FileName `koanf:"static_config_storage_suffix"  validate:"required,file_name"`
	DynamicConfigStorageSuffix fspath.FileName `koanf:"dynamic_config_storage_suffix" validate:"required,file_name"`
	// CreationTimeout bounds how long a service may stay half-created
	// before other processes treat its creator as dead.
	CreationTimeout       time.Duration   `koanf:"creation_timeout"        validate:"min=0"`
	ConnectionSuffix      fspath.FileName `koanf:"connection_suffix"       validate:"required,file_name"`
	EventConnectionSuffix fspath.FileName `koanf:"event_connection_suffix" validate:"required,file_name"`
}

// NodeConfig controls node bookkeeping and the cleanup of resources left
// behind by dead nodes. The two cleanup switches are independent; any
// combination is valid.
type NodeConfig struct {
	Directory                     fspath.Path     `koanf:"directory"            validate:"required,fs_path"`
	MonitorSuffix                 fspath.FileName `koanf:"monitor_suffix"       validate:"required,file_name"`
	StaticConfigSuffix            fspath.FileName `koanf:"static_config_suffix" validate:"required,file_name"`
	ServiceTagSuffix              fspath.FileName `koanf:"service_tag_suffix"   validate:"required,file_name"`
	CleanupDeadNodesOnCreation    bool            `koanf:"cleanup_dead_nodes_on_creation"`
	CleanupDeadNodesOnDestruction bool            `koanf:"cleanup_dead_nodes_on_destruction"`
}

// Defaults are the capacities and policies applied to services whose
// creators do not configure their own.
type Defaults struct {
	Event            EventDefaults            `koanf:"event"`
	PublishSubscribe PublishSubscribeDefaults `koanf:"publish_subscribe"`
}

// EventDefaults parameterize event-notification services. Capacity fields
// accept the whole uint64 range including zero; any operational floor is
// the consuming subsystem's concern.
type EventDefaults struct {
	MaxListeners uint64 `koanf:"max_listeners"`
	MaxNotifiers uint64 `koanf:"max_notifiers"`
	MaxNodes     uint64 `koanf:"max_nodes"`
	// EventIDMaxValue is the greatest event id a notifier may emit.
	EventIDMaxValue uint64 `koanf:"event_id_max_value"`
}

// PublishSubscribeDefaults parameterize publish-subscribe services.
// Capacity fields accept the whole uint64 range including zero.
type PublishSubscribeDefaults struct {
	MaxSubscribers               uint64 `koanf:"max_subscribers"`
	MaxPublishers                uint64 `koanf:"max_publishers"`
	MaxNodes                     uint64 `koanf:"max_nodes"`
	SubscriberMaxBufferSize      uint64 `koanf:"subscriber_max_buffer_size"`
	SubscriberMaxBorrowedSamples uint64 `koanf:"subscriber_max_borrowed_samples"`
	PublisherMaxLoanedSamples    uint64 `koanf:"publisher_max_loaned_samples"`
	PublisherHistorySize         uint64 `koanf:"publisher_history_size"`
	// EnableSafeOverflow lets publishers recycle the oldest sample of a
	// full subscriber buffer instead of applying the delivery strategy.
	EnableSafeOverflow                bool                    `koanf:"enable_safe_overflow"`
	UnableToDeliverStrategy           UnableToDeliverStrategy `koanf:"unable_to_deliver_strategy" validate:"deliver_strategy"`
	SubscriberExpiredConnectionBuffer uint64                  `koanf:"subscriber_expired_connection_buffer"`
}

// Default returns a Config populated with the shipped default values.
// Construction never fails, and two independently constructed defaults
// compare equal.
func Default() *Config {
	return defaultFromRegistry()
}

// defaultFromRegistry creates a Config using the centralized registry
func defaultFromRegistry() *Config {
	registry := definition.CreateRegistry()
	return &Config{
		Global: GlobalConfig{
			Prefix:   getFileName(registry, "global.prefix"),
			RootPath: getPath(registry, "global.root_path"),
			Service:  buildServiceConfig(registry),
			Node:     buildNodeConfig(registry),
		},
		Defaults: Defaults{
			Event:            buildEventDefaults(registry),
			PublishSubscribe: buildPublishSubscribeDefaults(registry),
		},
	}
}

func buildServiceConfig(registry *definition.Registry) ServiceConfig {
	return ServiceConfig{
		Directory:                  getPath(registry, "global.service.directory"),
		PublisherDataSegmentSuffix: getFileName(registry, "global.service.publisher_data_segment_suffix"),
		StaticConfigStorageSuffix:  getFileName(registry, "global.service.static_config_storage_suffix"),
		DynamicConfigStorageSuffix: getFileName(registry, "global.service.dynamic_config_storage_suffix"),
		CreationTimeout:            getDuration(registry, "global.service.creation_timeout"),
		ConnectionSuffix:           getFileName(registry, "global.service.connection_suffix"),
		EventConnectionSuffix:      getFileName(registry, "global.service.event_connection_suffix"),
	}
}

func buildNodeConfig(registry *definition.Registry) NodeConfig {
	return NodeConfig{
		Directory:                     getPath(registry, "global.node.directory"),
		MonitorSuffix:                 getFileName(registry, "global.node.monitor_suffix"),
		StaticConfigSuffix:            getFileName(registry, "global.node.static_config_suffix"),
		ServiceTagSuffix:              getFileName(registry, "global.node.service_tag_suffix"),
		CleanupDeadNodesOnCreation:    getBool(registry, "global.node.cleanup_dead_nodes_on_creation"),
		CleanupDeadNodesOnDestruction: getBool(registry, "global.node.cleanup_dead_nodes_on_destruction"),
	}
}

func buildEventDefaults(registry *definition.Registry) EventDefaults {
	return EventDefaults{
		MaxListeners:    getUint64(registry, "defaults.event.max_listeners"),
		MaxNotifiers:    getUint64(registry, "defaults.event.max_notifiers"),
		MaxNodes:        getUint64(registry, "defaults.event.max_nodes"),
		EventIDMaxValue: getUint64(registry, "defaults.event.event_id_max_value"),
	}
}

func buildPublishSubscribeDefaults(registry *definition.Registry) PublishSubscribeDefaults {
	return PublishSubscribeDefaults{
		MaxSubscribers:                    getUint64(registry, "defaults.publish_subscribe.max_subscribers"),
		MaxPublishers:                     getUint64(registry, "defaults.publish_subscribe.max_publishers"),
		MaxNodes:                          getUint64(registry, "defaults.publish_subscribe.max_nodes"),
		SubscriberMaxBufferSize:           getUint64(registry, "defaults.publish_subscribe.subscriber_max_buffer_size"),
		SubscriberMaxBorrowedSamples:      getUint64(registry, "defaults.publish_subscribe.subscriber_max_borrowed_samples"),
		PublisherMaxLoanedSamples:         getUint64(registry, "defaults.publish_subscribe.publisher_max_loaned_samples"),
		PublisherHistorySize:              getUint64(registry, "defaults.publish_subscribe.publisher_history_size"),
		EnableSafeOverflow:                getBool(registry, "defaults.publish_subscribe.enable_safe_overflow"),
		UnableToDeliverStrategy:           getStrategy(registry, "defaults.publish_subscribe.unable_to_deliver_strategy"),
		SubscriberExpiredConnectionBuffer: getUint64(registry, "defaults.publish_subscribe.subscriber_expired_connection_buffer"),
	}
}

// Clone returns an independent copy. Config is a pure value type, so a
// shallow copy is a full copy.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// Helper functions for type-safe registry access
func getFileName(registry *definition.Registry, path string) fspath.FileName {
	if val := registry.GetDefault(path); val != nil {
		if name, ok := val.(fspath.FileName); ok {
			return name
		}
	}
	return ""
}

func getPath(registry *definition.Registry, path string) fspath.Path {
	if val := registry.GetDefault(path); val != nil {
		if p, ok := val.(fspath.Path); ok {
			return p
		}
	}
	return ""
}

func getBool(registry *definition.Registry, path string) bool {
	if val := registry.GetDefault(path); val != nil {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getDuration(registry *definition.Registry, path string) time.Duration {
	if val := registry.GetDefault(path); val != nil {
		if d, ok := val.(time.Duration); ok {
			return d
		}
	}
	return 0
}

func getUint64(registry *definition.Registry, path string) uint64 {
	if val := registry.GetDefault(path); val != nil {
		if u, ok := val.(uint64); ok {
			return u
		}
	}
	return 0
}

func getStrategy(registry *definition.Registry, path string) UnableToDeliverStrategy {
	if val := registry.GetDefault(path); val != nil {
		if raw, ok := val.(string); ok {
			if strategy, err := ParseUnableToDeliverStrategy(raw); err == nil {
				return strategy
			}
		}
	}
	return UnableToDeliverStrategyBlock
}
