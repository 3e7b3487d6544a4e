package config

import "fmt"

// UnableToDeliverStrategy is the policy a publisher applies when a sample
// cannot be delivered because the receiving subscriber's buffer is full and
// safe overflow is disabled.
type UnableToDeliverStrategy int

const (
	// UnableToDeliverStrategyBlock blocks the publisher until the
	// subscriber has consumed a sample.
	UnableToDeliverStrategyBlock UnableToDeliverStrategy = iota
	// UnableToDeliverStrategyDiscardSample drops the undeliverable sample.
	UnableToDeliverStrategyDiscardSample
)

const (
	blockToken         = "Block"
	discardSampleToken = "DiscardSample"
)

// ParseUnableToDeliverStrategy converts a serialized token into a strategy.
// Only the exact tokens "Block" and "DiscardSample" are accepted.
func ParseUnableToDeliverStrategy(raw string) (UnableToDeliverStrategy, error) {
	switch raw {
	case blockToken:
		return UnableToDeliverStrategyBlock, nil
	case discardSampleToken:
		return UnableToDeliverStrategyDiscardSample, nil
	default:
		return 0, fmt.Errorf("unknown unable-to-deliver strategy %q", raw)
	}
}

// IsValid reports whether s is one of the two defined variants.
func (s UnableToDeliverStrategy) IsValid() bool {
	switch s {
	case UnableToDeliverStrategyBlock, UnableToDeliverStrategyDiscardSample:
		return true
	}
	return false
}

func (s UnableToDeliverStrategy) String() string {
	switch s {
	case UnableToDeliverStrategyBlock:
		return blockToken
	case UnableToDeliverStrategyDiscardSample:
		return discardSampleToken
	}
	return fmt.Sprintf("UnableToDeliverStrategy(%d)", int(s))
}

func (s UnableToDeliverStrategy) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("cannot marshal unknown unable-to-deliver strategy %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *UnableToDeliverStrategy) UnmarshalText(text []byte) error {
	strategy, err := ParseUnableToDeliverStrategy(string(text))
	if err != nil {
		return err
	}
	*s = strategy
	return nil
}
