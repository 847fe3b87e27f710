// Package service runs the node queries behind each bot command and normalizes their results.
package service

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/jitcord/internal/chainflip/asset"
	"github.com/goodnatureofminers/jitcord/internal/chainflip/convert"
	"github.com/goodnatureofminers/jitcord/internal/chainflip/epoch"
	"go.uber.org/zap"
)

// ErrAccountNotFound is returned when no known account matches a search.
var ErrAccountNotFound = errors.New("account not found")

// QueryService answers bot commands. It holds no state between calls.
type QueryService struct {
	node      NodeClient
	registry  asset.Registry
	conv      *convert.Converter
	clock     Clock
	blockTime time.Duration
	logger    *zap.Logger
}

// NewQueryService builds the query service. A non-positive blockTime falls back to epoch.DefaultBlockTime.
func NewQueryService(
	node NodeClient,
	registry asset.Registry,
	clock Clock,
	blockTime time.Duration,
	logger *zap.Logger,
) *QueryService {
	if blockTime <= 0 {
		blockTime = epoch.DefaultBlockTime
	}
	return &QueryService{
		node:      node,
		registry:  registry,
		conv:      convert.NewConverter(registry),
		clock:     clock,
		blockTime: blockTime,
		logger:    logger.Named("query"),
	}
}

// Converter returns the converter bound to the service's asset registry.
func (s *QueryService) Converter() *convert.Converter {
	return s.conv
}
