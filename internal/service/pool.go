package service

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Traqian/alpha-beta-swap-vault/internal/amm"
	"github.com/Traqian/alpha-beta-swap-vault/internal/apperrors"
	"github.com/Traqian/alpha-beta-swap-vault/internal/metrics"
	"github.com/Traqian/alpha-beta-swap-vault/internal/poolmath"
	"github.com/Traqian/alpha-beta-swap-vault/internal/service/dto"
	"github.com/Traqian/alpha-beta-swap-vault/internal/service/validate"
)

const (
	opQuote           = "quote"
	opRefresh         = "refresh"
	opConnect         = "connect"
	opDisconnect      = "disconnect"
	opSwap            = "swap"
	opAddLiquidity    = "add_liquidity"
	opRemoveLiquidity = "remove_liquidity"
)

// Pool returns a snapshot of the shared pool.
func (s *VaultService) Pool(_ context.Context) amm.Pool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.pool
}

// Quote prices a swap against the current pool without changing it.
func (s *VaultService) Quote(_ context.Context, req dto.QuoteRequest) (_ amm.SwapQuote, err error) {
	defer func() { metrics.ObserveOperation(opQuote, err) }()

	if err = validate.QuoteRequestValidate(req); err != nil {
		return amm.SwapQuote{}, err
	}

	s.mu.RLock()
	pool := s.pool
	s.mu.RUnlock()

	quote := amm.Quote(pool, req.Direction, req.Amount, req.Slippage)
	metrics.Quotes.WithLabelValues(string(req.Direction), string(quote.Severity)).Inc()

	return quote, nil
}

// BalancedDeposit returns the BETA amount that matches amountA at the current
// pool ratio.
func (s *VaultService) BalancedDeposit(_ context.Context, amountA decimal.Decimal) (decimal.Decimal, error) {
	if amountA.IsNegative() {
		return decimal.Zero, errors.Wrapf(apperrors.ErrZeroOrNegativeAmount, "deposit %s ALPHA", amountA)
	}

	s.mu.RLock()
	pool := s.pool
	s.mu.RUnlock()

	if !pool.IsInitialized() {
		return decimal.Zero, errors.Wrap(apperrors.ErrUninitializedPool, "no ratio for an empty pool")
	}

	return poolmath.ProportionalAmount(amountA, pool.ReserveA, pool.ReserveB), nil
}

// RefreshPool replaces the pool with the source's state and re-reads the
// balances of every connected account. Nothing is applied unless every read
// succeeds.
func (s *VaultService) RefreshPool(ctx context.Context) (_ amm.Pool, err error) {
	defer func() { metrics.ObserveOperation(opRefresh, err) }()

	pool, err := s.poolSource.FetchPool(ctx)
	if err != nil {
		return amm.Pool{}, errors.Wrapf(apperrors.ErrSourceUnavailable, "s.poolSource.FetchPool: %v", err)
	}
	if err = pool.Validate(); err != nil {
		return amm.Pool{}, errors.Wrap(err, "pool.Validate")
	}

	s.mu.RLock()
	addresses := make([]common.Address, 0, len(s.accounts))
	for addr := range s.accounts {
		addresses = append(addresses, addr)
	}
	s.mu.RUnlock()

	balances, err := s.fetchBalances(ctx, addresses)
	if err != nil {
		return amm.Pool{}, errors.Wrapf(apperrors.ErrSourceUnavailable, "s.fetchBalances: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.setPool(pool)
	for addr, account := range balances {
		// Accounts disconnected while balances were being read stay gone.
		if _, ok := s.accounts[addr]; ok {
			s.accounts[addr] = account
		}
	}

	s.logger.Info("pool refreshed",
		zap.String("reserve_a", pool.ReserveA.String()),
		zap.String("reserve_b", pool.ReserveB.String()),
		zap.String("total_lp_supply", pool.TotalLpSupply.String()),
		zap.Int("accounts", len(balances)),
	)

	return pool, nil
}

func (s *VaultService) fetchBalances(ctx context.Context, addresses []common.Address) (map[common.Address]amm.Account, error) {
	type balanceResult struct {
		account amm.Account
		err     error
	}

	var wg sync.WaitGroup
	ch := make(chan balanceResult, len(addresses))

	getBalances := func(addr common.Address) {
		defer wg.Done()

		account, err := s.accountSource.Balances(ctx, addr)
		if err != nil {
			ch <- balanceResult{err: errors.Wrapf(err, "balances of %s", addr.Hex())}
			return
		}
		account.Address = addr

		ch <- balanceResult{account: account}
	}

	wg.Add(len(addresses))
	for _, addr := range addresses {
		go getBalances(addr)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	var combinedErr error
	balances := make(map[common.Address]amm.Account, len(addresses))

	for result := range ch {
		if result.err != nil {
			combinedErr = multierr.Append(combinedErr, result.err)
			continue
		}
		balances[result.account.Address] = result.account
	}

	if combinedErr != nil {
		return nil, combinedErr
	}

	return balances, nil
}

// setPool must be called with mu held.
func (s *VaultService) setPool(pool amm.Pool) {
	s.pool = pool
	metrics.SetPool(pool.ReserveA, pool.ReserveB, pool.TotalLpSupply)
}
