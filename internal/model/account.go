package model

// AccountInfo is the role-tagged cf_account_info result. Only the fields of the
// variant named by Role are populated by the node.
type AccountInfo struct {
	Role string `json:"role"`

	FlipBalance Uint `json:"flip_balance"`

	// broker and liquidity_provider
	EarnedFees NestedAmounts `json:"earned_fees,omitempty"`

	// liquidity_provider
	Balances        NestedAmounts      `json:"balances,omitempty"`
	RefundAddresses map[string]*string `json:"refund_addresses,omitempty"`

	// validator
	Bond                       Uint            `json:"bond"`
	LastHeartbeat              uint32          `json:"last_heartbeat"`
	ReputationPoints           int32           `json:"reputation_points"`
	KeyholderEpochs            []uint32        `json:"keyholder_epochs,omitempty"`
	IsCurrentAuthority         bool            `json:"is_current_authority"`
	IsCurrentBackup            bool            `json:"is_current_backup"`
	IsQualified                bool            `json:"is_qualified"`
	IsOnline                   bool            `json:"is_online"`
	IsBidding                  bool            `json:"is_bidding"`
	BoundRedeemAddress         *string         `json:"bound_redeem_address,omitempty"`
	APYBasisPoints             *uint32         `json:"apy_bp,omitempty"`
	RestrictedBalances         map[string]Uint `json:"restricted_balances,omitempty"`
	EstimatedRedeemableBalance *Uint           `json:"estimated_redeemable_balance,omitempty"`
}

// LegacyAccountInfo is the flat cf_account_info_v2 result returned by older nodes.
type LegacyAccountInfo struct {
	Balance            Uint            `json:"balance"`
	Bond               Uint            `json:"bond"`
	LastHeartbeat      uint32          `json:"last_heartbeat"`
	ReputationPoints   int32           `json:"reputation_points"`
	KeyholderEpochs    []uint32        `json:"keyholder_epochs"`
	IsCurrentAuthority bool            `json:"is_current_authority"`
	IsCurrentBackup    bool            `json:"is_current_backup"`
	IsQualified        bool            `json:"is_qualified"`
	IsOnline           bool            `json:"is_online"`
	IsBidding          bool            `json:"is_bidding"`
	BoundRedeemAddress *string         `json:"bound_redeem_address"`
	APYBasisPoints     *uint32         `json:"apy_bp"`
	RestrictedBalances map[string]Uint `json:"restricted_balances"`
}
