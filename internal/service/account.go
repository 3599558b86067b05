package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Traqian/alpha-beta-swap-vault/internal/amm"
	"github.com/Traqian/alpha-beta-swap-vault/internal/apperrors"
	"github.com/Traqian/alpha-beta-swap-vault/internal/metrics"
)

// Connect opens a wallet through the account source and tracks it.
func (s *VaultService) Connect(ctx context.Context) (_ amm.Account, err error) {
	defer func() { metrics.ObserveOperation(opConnect, err) }()

	account, err := s.accountSource.Connect(ctx)
	if err != nil {
		return amm.Account{}, errors.Wrapf(apperrors.ErrSourceUnavailable, "s.accountSource.Connect: %v", err)
	}
	if account.Address == (common.Address{}) {
		return amm.Account{}, errors.Wrap(apperrors.ErrSourceUnavailable, "account source returned an empty address")
	}

	s.mu.Lock()
	s.accounts[account.Address] = account
	connected := len(s.accounts)
	s.mu.Unlock()

	metrics.ConnectedAccounts.Set(float64(connected))
	s.logger.Info("account connected",
		zap.String("address", account.Address.Hex()),
		zap.String("balance_a", account.BalanceA.String()),
		zap.String("balance_b", account.BalanceB.String()),
		zap.String("balance_lp", account.BalanceLp.String()),
	)

	return account, nil
}

// Disconnect forgets a connected account.
func (s *VaultService) Disconnect(_ context.Context, address common.Address) (err error) {
	defer func() { metrics.ObserveOperation(opDisconnect, err) }()

	s.mu.Lock()
	if _, ok := s.accounts[address]; !ok {
		s.mu.Unlock()
		return errors.Wrapf(apperrors.ErrAccountNotFound, "address %s", address.Hex())
	}
	delete(s.accounts, address)
	connected := len(s.accounts)
	s.mu.Unlock()

	metrics.ConnectedAccounts.Set(float64(connected))
	s.logger.Info("account disconnected", zap.String("address", address.Hex()))

	return nil
}

// Account returns the balances of a connected account.
func (s *VaultService) Account(_ context.Context, address common.Address) (amm.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lookup(address)
}

// lookup must be called with mu held.
func (s *VaultService) lookup(address common.Address) (amm.Account, error) {
	account, ok := s.accounts[address]
	if !ok {
		return amm.Account{}, errors.Wrapf(apperrors.ErrAccountNotFound, "address %s", address.Hex())
	}
	return account, nil
}
