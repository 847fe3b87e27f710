package service

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/jitcord/internal/chainflip/asset"
	"github.com/goodnatureofminers/jitcord/internal/chainflip/epoch"
	"go.uber.org/zap"
)

// Auction reports the minimum active bid, chain position and the estimated next rotation.
// Inconsistent epoch counters leave NextRotation nil instead of failing the query.
func (s *QueryService) Auction(ctx context.Context) (AuctionView, error) {
	state, err := s.node.AuctionState(ctx)
	if err != nil {
		return AuctionView{}, fmt.Errorf("get auction state: %w", err)
	}
	header, err := s.node.ChainHeader(ctx)
	if err != nil {
		return AuctionView{}, fmt.Errorf("get chain header: %w", err)
	}
	startedAt, err := s.node.CurrentEpochStartedAt(ctx)
	if err != nil {
		return AuctionView{}, fmt.Errorf("get epoch start: %w", err)
	}
	currentEpoch, err := s.node.CurrentEpoch(ctx)
	if err != nil {
		return AuctionView{}, fmt.Errorf("get current epoch: %w", err)
	}

	currentBlock, err := header.Number.Uint64()
	if err != nil {
		return AuctionView{}, fmt.Errorf("block number: %w", err)
	}

	view := AuctionView{
		CurrentBlock: currentBlock,
		CurrentEpoch: currentEpoch,
	}

	if state.MinActiveBid != nil {
		bid, err := s.conv.Amount(asset.NewAmount(asset.FLIP, state.MinActiveBid.Big()))
		if err != nil {
			return AuctionView{}, fmt.Errorf("min active bid: %w", err)
		}
		view.MinActiveBid = &bid
	}

	rotation, err := epoch.NextRotation(
		s.clock.Now(),
		epoch.State{
			BlocksPerEpoch:  uint64(state.BlocksPerEpoch),
			EpochStartBlock: uint64(startedAt),
		},
		currentBlock,
		s.blockTime,
	)
	if err != nil {
		s.logger.Warn("rotation estimate unavailable",
			zap.Uint64("current_block", currentBlock),
			zap.Uint32("epoch_started_at", startedAt),
			zap.Uint32("blocks_per_epoch", state.BlocksPerEpoch),
			zap.Error(err))
	} else {
		view.NextRotation = &rotation
	}

	return view, nil
}
