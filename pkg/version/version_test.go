package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Run("Should expose the injected build variables", func(t *testing.T) {
		info := Get()
		assert.Equal(t, Version, info.Version)
		assert.Equal(t, CommitHash, info.CommitHash)
		assert.Equal(t, BuildDate, info.BuildDate)
	})
}

func TestCompatibilityTag(t *testing.T) {
	original := Version
	defer func() { Version = original }()

	t.Run("Should reduce a semantic version to major.minor", func(t *testing.T) {
		Version = "v1.4.2"
		assert.Equal(t, "1.4", CompatibilityTag())

		Version = "0.9.0"
		assert.Equal(t, "0.9", CompatibilityTag())
	})

	t.Run("Should pass through values without a minor component", func(t *testing.T) {
		Version = "unknown"
		assert.Equal(t, "unknown", CompatibilityTag())
	})
}
