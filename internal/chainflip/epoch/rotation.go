// Package epoch estimates when the validator set rotates at the next epoch boundary.
package epoch

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/jitcord/pkg/safe"
)

// DefaultBlockTime is the target State Chain block interval.
const DefaultBlockTime = 6 * time.Second

// ErrInconsistentState is returned when block counters cannot describe the current epoch,
// typically because one of the reads is stale.
var ErrInconsistentState = errors.New("inconsistent epoch state")

// State is the epoch part of the auction state.
type State struct {
	BlocksPerEpoch  uint64
	EpochStartBlock uint64
}

// EstimateRotation returns the time left until the epoch ends, assuming linear block production.
func EstimateRotation(state State, currentBlock uint64, blockTime time.Duration) (time.Duration, error) {
	if blockTime <= 0 {
		return 0, fmt.Errorf("block time must be positive, got %s", blockTime)
	}
	elapsed, err := safe.Sub(currentBlock, state.EpochStartBlock)
	if err != nil {
		return 0, fmt.Errorf("%w: current block %d precedes epoch start %d", ErrInconsistentState, currentBlock, state.EpochStartBlock)
	}
	remaining, err := safe.Sub(state.BlocksPerEpoch, elapsed)
	if err != nil {
		return 0, fmt.Errorf("%w: %d blocks elapsed in an epoch of %d", ErrInconsistentState, elapsed, state.BlocksPerEpoch)
	}
	d, err := safe.Duration(remaining, blockTime)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInconsistentState, err)
	}
	return d, nil
}

// NextRotation returns the estimated rotation instant relative to now.
func NextRotation(now time.Time, state State, currentBlock uint64, blockTime time.Duration) (time.Time, error) {
	d, err := EstimateRotation(state, currentBlock, blockTime)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(d), nil
}
