package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironbus-io/ironbus-core/pkg/fspath"
)

func TestDefault(t *testing.T) {
	t.Run("Should return the shipped default configuration", func(t *testing.T) {
		// Act
		cfg := Default()
		// Assert
		require.NotNil(t, cfg)
		assert.Equal(t, fspath.FileName("iob_"), cfg.Global.Prefix)
		assert.Equal(t, fspath.Path("/tmp/ironbus/"), cfg.Global.RootPath)

		service := cfg.Global.Service
		assert.Equal(t, fspath.Path("services"), service.Directory)
		assert.Equal(t, fspath.FileName(".publisher_data"), service.PublisherDataSegmentSuffix)
		assert.Equal(t, fspath.FileName(".service"), service.StaticConfigStorageSuffix)
		assert.Equal(t, fspath.FileName(".dynamic"), service.DynamicConfigStorageSuffix)
		assert.Equal(t, fspath.FileName(".connection"), service.ConnectionSuffix)
		assert.Equal(t, fspath.FileName(".event"), service.EventConnectionSuffix)
		assert.Equal(t, 500*time.Millisecond, service.CreationTimeout)

		node := cfg.Global.Node
		assert.Equal(t, fspath.Path("nodes"), node.Directory)
		assert.Equal(t, fspath.FileName(".node_monitor"), node.MonitorSuffix)
		assert.Equal(t, fspath.FileName(".details"), node.StaticConfigSuffix)
		assert.Equal(t, fspath.FileName(".service_tag"), node.ServiceTagSuffix)
		assert.True(t, node.CleanupDeadNodesOnCreation)
		assert.True(t, node.CleanupDeadNodesOnDestruction)

		event := cfg.Defaults.Event
		assert.Equal(t, uint64(16), event.MaxListeners)
		assert.Equal(t, uint64(16), event.MaxNotifiers)
		assert.Equal(t, uint64(36), event.MaxNodes)
		assert.Equal(t, uint64(4294967295), event.EventIDMaxValue)

		pubsub := cfg.Defaults.PublishSubscribe
		assert.Equal(t, uint64(8), pubsub.MaxSubscribers)
		assert.Equal(t, uint64(2), pubsub.MaxPublishers)
		assert.Equal(t, uint64(20), pubsub.MaxNodes)
		assert.Equal(t, uint64(2), pubsub.SubscriberMaxBufferSize)
		assert.Equal(t, uint64(2), pubsub.SubscriberMaxBorrowedSamples)
		assert.Equal(t, uint64(2), pubsub.PublisherMaxLoanedSamples)
		assert.Equal(t, uint64(1), pubsub.PublisherHistorySize)
		assert.True(t, pubsub.EnableSafeOverflow)
		assert.Equal(t, UnableToDeliverStrategyBlock, pubsub.UnableToDeliverStrategy)
		assert.Equal(t, uint64(128), pubsub.SubscriberExpiredConnectionBuffer)
	})

	t.Run("Should produce equal values on every call", func(t *testing.T) {
		first := Default()
		second := Default()
		assert.Equal(t, *first, *second)
		// Independent instances: mutating one leaves the other untouched.
		first.Defaults.Event.MaxListeners = 999
		assert.Equal(t, uint64(16), second.Defaults.Event.MaxListeners)
	})

	t.Run("Should pass validation", func(t *testing.T) {
		require.NoError(t, Validate(Default()))
	})
}

func TestConfig_FieldAccess(t *testing.T) {
	t.Run("Should store global naming overrides", func(t *testing.T) {
		cfg := Default()
		cfg.Global.Prefix = fspath.MustFileName("oh_my_dot")
		cfg.Global.RootPath = fspath.MustPath("some_path")
		cfg.Global.Service.Directory = fspath.MustPath("look/there/flies/a/dead/pidgin")
		cfg.Global.Node.Directory = fspath.MustPath("eat/the/carrototier")

		assert.Equal(t, fspath.FileName("oh_my_dot"), cfg.Global.Prefix)
		assert.Equal(t, fspath.Path("some_path"), cfg.Global.RootPath)
		assert.Equal(t, fspath.Path("look/there/flies/a/dead/pidgin"), cfg.Global.Service.Directory)
		assert.Equal(t, fspath.Path("eat/the/carrototier"), cfg.Global.Node.Directory)
		require.NoError(t, Validate(cfg))
	})

	t.Run("Should store service suffix and timeout overrides", func(t *testing.T) {
		cfg := Default()
		suffix := fspath.MustFileName("no_touchy_fishy")
		cfg.Global.Service.PublisherDataSegmentSuffix = suffix
		cfg.Global.Service.StaticConfigStorageSuffix = suffix
		cfg.Global.Service.DynamicConfigStorageSuffix = suffix
		cfg.Global.Service.ConnectionSuffix = suffix
		cfg.Global.Service.CreationTimeout = 1234 * time.Second

		assert.Equal(t, suffix, cfg.Global.Service.PublisherDataSegmentSuffix)
		assert.Equal(t, suffix, cfg.Global.Service.StaticConfigStorageSuffix)
		assert.Equal(t, suffix, cfg.Global.Service.DynamicConfigStorageSuffix)
		assert.Equal(t, suffix, cfg.Global.Service.ConnectionSuffix)
		assert.Equal(t, 1234*time.Second, cfg.Global.Service.CreationTimeout)
		require.NoError(t, Validate(cfg))
	})

	t.Run("Should store event capacity overrides", func(t *testing.T) {
		cfg := Default()
		cfg.Defaults.Event.MaxListeners = 123
		cfg.Defaults.Event.MaxNotifiers = 45
		cfg.Defaults.Event.MaxNodes = 78
		cfg.Defaults.Event.EventIDMaxValue = 799

		assert.Equal(t, uint64(123), cfg.Defaults.Event.MaxListeners)
		assert.Equal(t, uint64(45), cfg.Defaults.Event.MaxNotifiers)
		assert.Equal(t, uint64(78), cfg.Defaults.Event.MaxNodes)
		assert.Equal(t, uint64(799), cfg.Defaults.Event.EventIDMaxValue)
		require.NoError(t, Validate(cfg))
	})

	t.Run("Should store publish-subscribe capacity overrides", func(t *testing.T) {
		cfg := Default()
		pubsub := &cfg.Defaults.PublishSubscribe
		pubsub.MaxSubscribers = 313
		pubsub.MaxPublishers = 424
		pubsub.MaxNodes = 535
		pubsub.SubscriberMaxBufferSize = 646
		pubsub.SubscriberMaxBorrowedSamples = 757
		pubsub.PublisherMaxLoanedSamples = 868
		pubsub.PublisherHistorySize = 979
		pubsub.SubscriberExpiredConnectionBuffer = 13113

		assert.Equal(t, uint64(313), cfg.Defaults.PublishSubscribe.MaxSubscribers)
		assert.Equal(t, uint64(424), cfg.Defaults.PublishSubscribe.MaxPublishers)
		assert.Equal(t, uint64(535), cfg.Defaults.PublishSubscribe.MaxNodes)
		assert.Equal(t, uint64(646), cfg.Defaults.PublishSubscribe.SubscriberMaxBufferSize)
		assert.Equal(t, uint64(757), cfg.Defaults.PublishSubscribe.SubscriberMaxBorrowedSamples)
		assert.Equal(t, uint64(868), cfg.Defaults.PublishSubscribe.PublisherMaxLoanedSamples)
		assert.Equal(t, uint64(979), cfg.Defaults.PublishSubscribe.PublisherHistorySize)
		assert.Equal(t, uint64(13113), cfg.Defaults.PublishSubscribe.SubscriberExpiredConnectionBuffer)
		require.NoError(t, Validate(cfg))
	})

	t.Run("Should store both delivery strategies", func(t *testing.T) {
		cfg := Default()
		cfg.Defaults.PublishSubscribe.UnableToDeliverStrategy = UnableToDeliverStrategyDiscardSample
		assert.Equal(t, UnableToDeliverStrategyDiscardSample, cfg.Defaults.PublishSubscribe.UnableToDeliverStrategy)
		require.NoError(t, Validate(cfg))

		cfg.Defaults.PublishSubscribe.UnableToDeliverStrategy = UnableToDeliverStrategyBlock
		assert.Equal(t, UnableToDeliverStrategyBlock, cfg.Defaults.PublishSubscribe.UnableToDeliverStrategy)
		require.NoError(t, Validate(cfg))
	})

	t.Run("Should accept every cleanup flag combination", func(t *testing.T) {
		for _, onCreation := range []bool{false, true} {
			for _, onDestruction := range []bool{false, true} {
				cfg := Default()
				cfg.Global.Node.CleanupDeadNodesOnCreation = onCreation
				cfg.Global.Node.CleanupDeadNodesOnDestruction = onDestruction
				assert.Equal(t, onCreation, cfg.Global.Node.CleanupDeadNodesOnCreation)
				assert.Equal(t, onDestruction, cfg.Global.Node.CleanupDeadNodesOnDestruction)
				require.NoError(t, Validate(cfg))
			}
		}
	})

	t.Run("Should leave sibling fields untouched on a single-field write", func(t *testing.T) {
		cfg := Default()
		cfg.Global.Prefix = fspath.MustFileName("oh_my_dot")
		// Restoring the one written field must restore full equality.
		assert.NotEqual(t, *Default(), *cfg)
		cfg.Global.Prefix = Default().Global.Prefix
		assert.Equal(t, *Default(), *cfg)
	})
}

func TestConfig_Clone(t *testing.T) {
	t.Run("Should copy every field", func(t *testing.T) {
		cfg := Default()
		cfg.Defaults.Event.MaxListeners = 77
		clone := cfg.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, *cfg, *clone)
	})

	t.Run("Should be independent of the original", func(t *testing.T) {
		cfg := Default()
		clone := cfg.Clone()
		clone.Global.Prefix = fspath.MustFileName("other_")
		clone.Defaults.PublishSubscribe.MaxSubscribers = 999
		assert.Equal(t, fspath.FileName("iob_"), cfg.Global.Prefix)
		assert.Equal(t, uint64(8), cfg.Defaults.PublishSubscribe.MaxSubscribers)
	})

	t.Run("Should return nil for a nil receiver", func(t *testing.T) {
		var cfg *Config
		assert.Nil(t, cfg.Clone())
	})
}
