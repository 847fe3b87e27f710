// Package account discriminates State Chain account roles and extracts their role-specific fields.
package account

import (
	"github.com/goodnatureofminers/jitcord/internal/chainflip/asset"
)

// Role is the wire discriminator of an account.
type Role string

// Account roles.
const (
	RoleUnregistered      Role = "unregistered"
	RoleBroker            Role = "broker"
	RoleLiquidityProvider Role = "liquidity_provider"
	RoleValidator         Role = "validator"
)

// Record is one of Unregistered, Broker, LiquidityProvider or Validator.
type Record interface {
	Role() Role
	Balance() asset.Amount
	record()
}

// Unregistered is an account holding FLIP without a registered role.
type Unregistered struct {
	FlipBalance asset.Amount
}

// Broker is an account registered to submit swaps on behalf of users.
type Broker struct {
	FlipBalance asset.Amount
	EarnedFees  asset.Balances
}

// LiquidityProvider is an account providing pool liquidity.
type LiquidityProvider struct {
	FlipBalance asset.Amount
	Balances    asset.Balances
	EarnedFees  asset.Balances
	// RefundAddresses maps a chain name to the refund address registered for it.
	RefundAddresses map[string]string
}

// Validator is an account bidding for or holding an authority slot.
type Validator struct {
	FlipBalance        asset.Amount
	Bond               asset.Amount
	LastHeartbeat      uint32
	ReputationPoints   int32
	KeyholderEpochs    []uint32
	IsCurrentAuthority bool
	IsCurrentBackup    bool
	IsQualified        bool
	IsOnline           bool
	IsBidding          bool
	// BoundRedeemAddress is nil when redemptions are not restricted to one address.
	BoundRedeemAddress *string
	// APYBasisPoints is nil when the validator earns no rewards.
	APYBasisPoints     *uint32
	RestrictedBalances map[string]asset.Amount
}

func (Unregistered) Role() Role      { return RoleUnregistered }
func (Broker) Role() Role            { return RoleBroker }
func (LiquidityProvider) Role() Role { return RoleLiquidityProvider }
func (Validator) Role() Role         { return RoleValidator }

func (r Unregistered) Balance() asset.Amount      { return r.FlipBalance }
func (r Broker) Balance() asset.Amount            { return r.FlipBalance }
func (r LiquidityProvider) Balance() asset.Amount { return r.FlipBalance }
func (r Validator) Balance() asset.Amount         { return r.FlipBalance }

func (Unregistered) record()      {}
func (Broker) record()            {}
func (LiquidityProvider) record() {}
func (Validator) record()         {}
