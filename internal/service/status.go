package service

import (
	"context"
	"fmt"
)

// Version returns the node software version.
func (s *QueryService) Version(ctx context.Context) (string, error) {
	v, err := s.node.SystemVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("get node version: %w", err)
	}
	return v, nil
}

// Status reports version, peer count and sync state.
func (s *QueryService) Status(ctx context.Context) (StatusView, error) {
	version, err := s.node.SystemVersion(ctx)
	if err != nil {
		return StatusView{}, fmt.Errorf("get node version: %w", err)
	}
	health, err := s.node.SystemHealth(ctx)
	if err != nil {
		return StatusView{}, fmt.Errorf("get node health: %w", err)
	}
	return StatusView{
		Version: version,
		Peers:   health.Peers,
		Synced:  !health.IsSyncing,
	}, nil
}
