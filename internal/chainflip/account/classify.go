package account

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/jitcord/internal/chainflip/asset"
	"github.com/goodnatureofminers/jitcord/internal/model"
)

// ErrUnrecognizedRole is returned for role tags outside the known set.
var ErrUnrecognizedRole = errors.New("unrecognized account role")

// Classify maps a role-tagged account payload onto its Record variant.
func Classify(info model.AccountInfo) (Record, error) {
	flip := asset.NewAmount(asset.FLIP, info.FlipBalance.Big())

	switch Role(info.Role) {
	case RoleUnregistered:
		return Unregistered{FlipBalance: flip}, nil
	case RoleBroker:
		return Broker{
			FlipBalance: flip,
			EarnedFees:  Balances(info.EarnedFees),
		}, nil
	case RoleLiquidityProvider:
		return LiquidityProvider{
			FlipBalance:     flip,
			Balances:        Balances(info.Balances),
			EarnedFees:      Balances(info.EarnedFees),
			RefundAddresses: refundAddresses(info.RefundAddresses),
		}, nil
	case RoleValidator:
		return Validator{
			FlipBalance:        flip,
			Bond:               asset.NewAmount(asset.FLIP, info.Bond.Big()),
			LastHeartbeat:      info.LastHeartbeat,
			ReputationPoints:   info.ReputationPoints,
			KeyholderEpochs:    info.KeyholderEpochs,
			IsCurrentAuthority: info.IsCurrentAuthority,
			IsCurrentBackup:    info.IsCurrentBackup,
			IsQualified:        info.IsQualified,
			IsOnline:           info.IsOnline,
			IsBidding:          info.IsBidding,
			BoundRedeemAddress: info.BoundRedeemAddress,
			APYBasisPoints:     info.APYBasisPoints,
			RestrictedBalances: FlipAmounts(info.RestrictedBalances),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedRole, info.Role)
	}
}

// Balances binds every wire amount of a chain -> asset -> amount listing to its asset symbol.
func Balances(src model.NestedAmounts) asset.Balances {
	if len(src) == 0 {
		return nil
	}
	out := make(asset.Balances, 0, len(src))
	for _, chain := range src {
		group := asset.BalanceGroup{
			Holder:  chain.Chain,
			Amounts: make([]asset.Amount, 0, len(chain.Amounts)),
		}
		for _, a := range chain.Amounts {
			group.Amounts = append(group.Amounts, asset.NewAmount(asset.Normalize(a.Asset), a.Amount.Big()))
		}
		out = append(out, group)
	}
	return out
}

// FlipAmounts binds a keyed set of raw FLIP values.
func FlipAmounts(src map[string]model.Uint) map[string]asset.Amount {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]asset.Amount, len(src))
	for k, v := range src {
		out[k] = asset.NewAmount(asset.FLIP, v.Big())
	}
	return out
}

func refundAddresses(src map[string]*string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for chain, addr := range src {
		if addr == nil || *addr == "" {
			continue
		}
		out[chain] = *addr
	}
	return out
}
