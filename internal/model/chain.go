package model

import (
	"encoding/json"
	"fmt"
)

// BlockHeader is the chain_getHeader result.
type BlockHeader struct {
	ParentHash     string `json:"parentHash"`
	Number         Uint   `json:"number"`
	StateRoot      string `json:"stateRoot"`
	ExtrinsicsRoot string `json:"extrinsicsRoot"`
}

// SystemHealth is the system_health result.
type SystemHealth struct {
	Peers           uint32 `json:"peers"`
	IsSyncing       bool   `json:"isSyncing"`
	ShouldHavePeers bool   `json:"shouldHavePeers"`
}

// AuctionState is the cf_auction_state result.
type AuctionState struct {
	BlocksPerEpoch               uint32   `json:"blocks_per_epoch"`
	CurrentEpochStartedAt        uint32   `json:"current_epoch_started_at"`
	RedemptionPeriodAsPercentage uint8    `json:"redemption_period_as_percentage"`
	MinFunding                   Uint     `json:"min_funding"`
	AuctionSizeRange             []uint16 `json:"auction_size_range"`
	MinActiveBid                 *Uint    `json:"min_active_bid"`
}

// AccountPair is an (account id, display alias) entry of cf_accounts.
type AccountPair struct {
	ID    string
	Alias string
}

// UnmarshalJSON decodes the two-element array form ["cF...", "alias"].
func (p *AccountPair) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decode account pair: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("decode account pair: expected 2 elements, got %d", len(pair))
	}
	p.ID, p.Alias = pair[0], pair[1]
	return nil
}

// MarshalJSON encodes the pair back into its array form.
func (p AccountPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{p.ID, p.Alias})
}

// AccountList is the cf_accounts result in node order.
type AccountList []AccountPair
