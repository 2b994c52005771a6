package ledger

import (
	"fmt"
	"time"

	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/shared"
	"github.com/rs/zerolog"
)

// Option configures a Ledger.
type Option func(*Ledger) error

// WithLogger sets the logger for execution events.
func WithLogger(logger zerolog.Logger) Option {
	return func(ledger *Ledger) error {
		ledger.logger = logger
		return nil
	}
}

// WithMetrics enables Prometheus metrics. Metrics may be nil.
func WithMetrics(metrics *Metrics) Option {
	return func(ledger *Ledger) error {
		ledger.metrics = metrics
		return nil
	}
}

// WithClock replaces time.Now as the consensus time source.
func WithClock(clock Clock) Option {
	return func(ledger *Ledger) error {
		if clock != nil {
			ledger.clock = clock
		}
		return nil
	}
}

// WithNetwork labels the ledger as mainnet or testnet.
func WithNetwork(network string) Option {
	return func(ledger *Ledger) error {
		normalized, err := shared.NormalizeNetwork(network)
		if err != nil {
			return err
		}
		ledger.network = normalized
		return nil
	}
}

// WithFirstEntityNum sets the entity number of the first allocated account or
// contract.
func WithFirstEntityNum(num int64) Option {
	return func(ledger *Ledger) error {
		if num <= 0 {
			return fmt.Errorf("first entity number must be positive, got %d", num)
		}
		ledger.nextEntityNum = num
		return nil
	}
}

func systemClock() time.Time {
	return time.Now().UTC()
}
