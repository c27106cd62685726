package types

import (
	"fmt"
)

// FeeDenominator is the fixed denominator for Settings.FeeRate: a rate of
// 1_000_000_000 is 100% of the pool.
const FeeDenominator uint64 = 1_000_000_000

// Settings is the global singleton controlling timeouts and the protocol fee.
// It is read live at the time of each game operation; games never snapshot it,
// so an update affects every in-flight game.
type Settings struct {
	// Authority is the only identity permitted to update settings.
	Authority string `json:"authority" yaml:"authority"`
	// Treasury is credited with the protocol fee at settlement.
	Treasury string `json:"treasury" yaml:"treasury"`
	// ForfeitTimeout is the window, in seconds, an unrevealed player has after
	// the opponent's reveal before settlement may declare a forfeit.
	ForfeitTimeout int64 `json:"forfeit_timeout" yaml:"forfeit_timeout"`
	// StaleTimeout is the age, in seconds, after which a game with no reveals
	// may be unwound.
	StaleTimeout int64 `json:"stale_timeout" yaml:"stale_timeout"`
	// FeeRate is the fee numerator over FeeDenominator applied to the pool.
	FeeRate uint64 `json:"fee_rate" yaml:"fee_rate"`
	// FeeOnDraw charges the fee on draw settlements as well. When false a draw
	// refunds both stakes in full.
	FeeOnDraw bool `json:"fee_on_draw" yaml:"fee_on_draw"`
}

// DefaultSettings returns the settings used when genesis supplies none.
func DefaultSettings() Settings {
	return Settings{
		ForfeitTimeout: 600,
		StaleTimeout:   3600,
		FeeRate:        10_000_000, // 1%
		FeeOnDraw:      false,
	}
}

// Validate checks settings bounds. Timeouts and the fee rate are plain
// non-negative integers; the reference behavior imposes no further checks.
func (s Settings) Validate() error {
	if s.ForfeitTimeout < 0 {
		return fmt.Errorf("forfeit_timeout cannot be negative")
	}
	if s.StaleTimeout < 0 {
		return fmt.Errorf("stale_timeout cannot be negative")
	}
	return nil
}
