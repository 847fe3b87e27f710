// Package legacy adapts the flat account record of older node APIs to the role-tagged account model.
package legacy

import (
	"github.com/goodnatureofminers/jitcord/internal/chainflip/account"
	"github.com/goodnatureofminers/jitcord/internal/chainflip/asset"
	"github.com/goodnatureofminers/jitcord/internal/model"
)

// Normalize maps a cf_account_info_v2 record onto account.Record.
// The flat shape carries no role tag: any validator signal yields a Validator,
// everything else an Unregistered account holding the balance.
func Normalize(info model.LegacyAccountInfo) account.Record {
	balance := asset.NewAmount(asset.FLIP, info.Balance.Big())
	if !hasValidatorSignal(info) {
		return account.Unregistered{FlipBalance: balance}
	}
	return account.Validator{
		FlipBalance:        balance,
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
		APYBasisPoints:     nonZero(info.APYBasisPoints),
		RestrictedBalances: account.FlipAmounts(info.RestrictedBalances),
	}
}

func hasValidatorSignal(info model.LegacyAccountInfo) bool {
	return !info.Bond.IsZero() ||
		info.IsBidding ||
		info.IsOnline ||
		info.IsQualified ||
		info.IsCurrentAuthority ||
		info.IsCurrentBackup ||
		len(info.KeyholderEpochs) > 0 ||
		info.ReputationPoints != 0 ||
		info.LastHeartbeat != 0
}

// v2 nodes report apy_bp = 0 for accounts that earn nothing.
func nonZero(v *uint32) *uint32 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}
