package definition

import (
	"reflect"
	"time"

	"github.com/ironbus-io/ironbus-core/pkg/fspath"
)

// Standard type definitions for consistency
var (
	fileNameType = reflect.TypeOf(fspath.FileName(""))
	pathType     = reflect.TypeOf(fspath.Path(""))
	durationType = reflect.TypeOf(time.Duration(0))
	uint64Type   = reflect.TypeOf(uint64(0))
	boolType     = reflect.TypeOf(true)
	stringType   = reflect.TypeOf("")
)

// CreateRegistry creates and populates the configuration registry
// This is the SINGLE SOURCE OF TRUTH for all configuration defaults
func CreateRegistry() *Registry {
	registry := NewRegistry()
	registerGlobalFields(registry)
	registerServiceFields(registry)
	registerNodeFields(registry)
	registerEventFields(registry)
	registerPublishSubscribeFields(registry)
	return registry
}

func registerGlobalFields(registry *Registry) {
	registry.Register(&FieldDef{
		Path:    "global.prefix",
		Default: fspath.MustFileName("iob_"),
		Type:    fileNameType,
		Help:    "Prefix prepended to every file and shared-memory resource the runtime creates",
	})
	registry.Register(&FieldDef{
		Path:    "global.root_path",
		Default: fspath.MustPath("/tmp/ironbus/"),
		Type:    pathType,
		Help:    "Directory under which all runtime state is stored",
	})
}

func registerServiceFields(registry *Registry) {
	registry.Register(&FieldDef{
		Path:    "global.service.directory",
		Default: fspath.MustPath("services"),
		Type:    pathType,
		Help:    "Directory for service state, relative to the root path",
	})
	registry.Register(&FieldDef{
		Path:    "global.service.publisher_data_segment_suffix",
		Default: fspath.MustFileName(".publisher_data"),
		Type:    fileNameType,
		Help:    "Suffix of the data segments publishers allocate their samples in",
	})
	registry.Register(&FieldDef{
		Path:    "global.service.static_config_storage_suffix",
		Default: fspath.MustFileName(".service"),
		Type:    fileNameType,
		Help:    "Suffix of the storage holding a service's immutable configuration",
	})
	registry.Register(&FieldDef{
		Path:    "global.service.dynamic_config_storage_suffix",
		Default: fspath.MustFileName(".dynamic"),
		Type:    fileNameType,
		Help:    "Suffix of the storage holding a service's runtime state",
	})
	registry.Register(&FieldDef{
		Path:    "global.service.creation_timeout",
		Default: 500 * time.Millisecond,
		Type:    durationType,
		Help:    "How long a service may stay in the half-created state before other processes treat its creator as dead",
	})
	registry.Register(&FieldDef{
		Path:    "global.service.connection_suffix",
		Default: fspath.MustFileName(".connection"),
		Type:    fileNameType,
		Help:    "Suffix of publisher-to-subscriber connections",
	})
	registry.Register(&FieldDef{
		Path:    "global.service.event_connection_suffix",
		Default: fspath.MustFileName(".event"),
		Type:    fileNameType,
		Help:    "Suffix of notifier-to-listener connections",
	})
}

func registerNodeFields(registry *Registry) {
	registry.Register(&FieldDef{
		Path:    "global.node.directory",
		Default: fspath.MustPath("nodes"),
		Type:    pathType,
		Help:    "Directory for node state, relative to the root path",
	})
	registry.Register(&FieldDef{
		Path:    "global.node.monitor_suffix",
		Default: fspath.MustFileName(".node_monitor"),
		Type:    fileNameType,
		Help:    "Suffix of the monitor token every living node keeps alive",
	})
	registry.Register(&FieldDef{
		Path:    "global.node.static_config_suffix",
		Default: fspath.MustFileName(".details"),
		Type:    fileNameType,
		Help:    "Suffix of the storage holding a node's details",
	})
	registry.Register(&FieldDef{
		Path:    "global.node.service_tag_suffix",
		Default: fspath.MustFileName(".service_tag"),
		Type:    fileNameType,
		Help:    "Suffix of the tags a node leaves at every service it participates in",
	})
	registry.Register(&FieldDef{
		Path:    "global.node.cleanup_dead_nodes_on_creation",
		Default: true,
		Type:    boolType,
		Help:    "Remove stale resources of dead nodes when a new node is created",
	})
	registry.Register(&FieldDef{
		Path:    "global.node.cleanup_dead_nodes_on_destruction",
		Default: true,
		Type:    boolType,
		Help:    "Remove stale resources of dead nodes when a node is destroyed",
	})
}

func registerEventFields(registry *Registry) {
	registry.Register(&FieldDef{
		Path:    "defaults.event.max_listeners",
		Default: uint64(16),
		Type:    uint64Type,
		Help:    "Listener capacity of an event service that does not configure its own",
	})
	registry.Register(&FieldDef{
		Path:    "defaults.event.max_notifiers",
		Default: uint64(16),
		Type:    uint64Type,
		Help:    "Notifier capacity of an event service that does not configure its own",
	})
	registry.Register(&FieldDef{
		Path:    "defaults.event.max_nodes",
		Default: uint64(36),
		Type:    uint64Type,
		Help:    "Number of nodes that may attach to one event service",
	})
	registry.Register(&FieldDef{
		Path:    "defaults.event.event_id_max_value",
		Default: uint64(4294967295),
		Type:    uint64Type,
		Help:    "Greatest event id a notifier may emit on the service",
	})
}

func registerPublishSubscribeFields(registry *Registry) {
	registerPublishSubscribeCapacityFields(registry)
	registerPublishSubscribeBufferFields(registry)
	registry.Register(&FieldDef{
		Path:    "defaults.publish_subscribe.enable_safe_overflow",
		Default: true,
		Type:    boolType,
		Help:    "Let publishers recycle the oldest sample when a subscriber buffer is full",
	})
	registry.Register(&FieldDef{
		Path:    "defaults.publish_subscribe.unable_to_deliver_strategy",
		Default: "Block",
		Type:    stringType,
		Help:    "Delivery policy when safe overflow is disabled and a subscriber buffer is full: Block or DiscardSample",
	})
}

func registerPublishSubscribeCapacityFields(registry *Registry) {
	registry.Register(&FieldDef{
		Path:    "defaults.publish_subscribe.max_subscribers",
		Default: uint64(8),
		Type:    uint64Type,
		Help:    "Subscriber capacity of a publish-subscribe service that does not configure its own",
	})
	registry.Register(&FieldDef{
		Path:    "defaults.publish_subscribe.max_publishers",
		Default: uint64(2),
		Type:    uint64Type,
		Help:    "Publisher capacity of a publish-subscribe service that does not configure its own",
	})
	registry.Register(&FieldDef{
		Path:    "defaults.publish_subscribe.max_nodes",
		Default: uint64(20),
		Type:    uint64Type,
		Help:    "Number of nodes that may attach to one publish-subscribe service",
	})
}

func registerPublishSubscribeBufferFields(registry *Registry) {
	registry.Register(&FieldDef{
		Path:    "defaults.publish_subscribe.subscriber_max_buffer_size",
		Default: uint64(2),
		Type:    uint64Type,
		Help:    "Number of samples a subscriber can queue before new deliveries overflow",
	})
	registry.Register(&FieldDef{
		Path:    "defaults.publish_subscribe.subscriber_max_borrowed_samples",
		Default: uint64(2),
		Type:    uint64Type,
		Help:    "Number of samples a subscriber can hold borrowed at the same time",
	})
	registry.Register(&FieldDef{
		Path:    "defaults.publish_subscribe.publisher_max_loaned_samples",
		Default: uint64(2),
		Type:    uint64Type,
		Help:    "Number of samples a publisher can hold loaned at the same time",
	})
	registry.Register(&FieldDef{
		Path:    "defaults.publish_subscribe.publisher_history_size",
		Default: uint64(1),
		Type:    uint64Type,
		Help:    "Number of delivered samples a publisher keeps for late-joining subscribers",
	})
	registry.Register(&FieldDef{
		Path:    "defaults.publish_subscribe.subscriber_expired_connection_buffer",
		Default: uint64(128),
		Type:    uint64Type,
		Help:    "Number of in-flight samples retained from connections that have expired",
	})
}
