package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/jitcord/internal/chainflip/account"
	"github.com/goodnatureofminers/jitcord/internal/chainflip/legacy"
	"github.com/goodnatureofminers/jitcord/internal/model"
	"github.com/goodnatureofminers/jitcord/internal/rpc"
	"github.com/goodnatureofminers/jitcord/internal/ss58"
	"go.uber.org/zap"
)

// AccountInfo resolves name to an account and classifies its record. A State Chain
// address is used as is; anything else is searched in the node's account list by
// id or alias substring, the last match winning.
func (s *QueryService) AccountInfo(ctx context.Context, name string) (AccountView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return AccountView{}, fmt.Errorf("%w: empty name", ErrAccountNotFound)
	}

	view := AccountView{ID: name}
	if !ss58.Valid(name, ss58.ChainflipPrefix) {
		accounts, err := s.node.Accounts(ctx)
		if err != nil {
			return AccountView{}, fmt.Errorf("list accounts: %w", err)
		}
		pair, ok := searchAccount(accounts, name)
		if !ok {
			return AccountView{}, fmt.Errorf("%w: %q", ErrAccountNotFound, name)
		}
		view.ID, view.Alias = pair.ID, pair.Alias
	}

	record, err := s.accountRecord(ctx, view.ID)
	if err != nil {
		return AccountView{}, err
	}
	view.Record = record
	return view, nil
}

func (s *QueryService) accountRecord(ctx context.Context, id string) (account.Record, error) {
	info, err := s.node.AccountInfo(ctx, id)
	switch {
	case err == nil:
		record, err := account.Classify(info)
		if err != nil {
			return nil, fmt.Errorf("classify account %s: %w", id, err)
		}
		return record, nil
	case rpc.IsMethodNotFound(err):
		s.logger.Debug("node lacks cf_account_info, using cf_account_info_v2", zap.String("account", id))
	default:
		return nil, fmt.Errorf("get account info %s: %w", id, err)
	}

	flat, err := s.node.AccountInfoV2(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account info v2 %s: %w", id, err)
	}
	return legacy.Normalize(flat), nil
}

func searchAccount(accounts model.AccountList, name string) (model.AccountPair, bool) {
	var (
		found model.AccountPair
		ok    bool
	)
	for _, pair := range accounts {
		if strings.Contains(pair.ID, name) || strings.Contains(pair.Alias, name) {
			found, ok = pair, true
		}
	}
	return found, ok
}
