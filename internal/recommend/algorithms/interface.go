// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package algorithms

import (
	"github.com/tomtom215/gigboard/internal/recommend"
)

// BaseStrategy holds the settings shared by every strategy.
type BaseStrategy struct {
	strategyType recommend.StrategyType
	weight       float64
	threshold    float64
}

// NewBaseStrategy creates a base with the strategy's weight and cut-off.
//
//nolint:gocritic // StrategyConfig is a small value type
func NewBaseStrategy(t recommend.StrategyType, cfg recommend.StrategyConfig) BaseStrategy {
	return BaseStrategy{
		strategyType: t,
		weight:       cfg.Weight,
		threshold:    cfg.Threshold,
	}
}

// Type returns the strategy identifier.
func (b *BaseStrategy) Type() recommend.StrategyType {
	return b.strategyType
}

// Weight returns the multiplier applied to the strategy's combined score.
func (b *BaseStrategy) Weight() float64 {
	return b.weight
}

// keep reports whether a weighted total clears the strategy threshold.
func (b *BaseStrategy) keep(total float64) bool {
	return total > b.threshold
}
