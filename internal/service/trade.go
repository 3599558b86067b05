package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Traqian/alpha-beta-swap-vault/internal/amm"
	"github.com/Traqian/alpha-beta-swap-vault/internal/apperrors"
	"github.com/Traqian/alpha-beta-swap-vault/internal/metrics"
	"github.com/Traqian/alpha-beta-swap-vault/internal/service/dto"
	"github.com/Traqian/alpha-beta-swap-vault/internal/service/validate"
)

// Swap executes a swap for a connected account against the shared pool.
func (s *VaultService) Swap(_ context.Context, req dto.SwapRequest) (_ amm.SwapResult, err error) {
	defer func() { metrics.ObserveOperation(opSwap, err) }()

	if err = validate.SwapRequestValidate(req); err != nil {
		return amm.SwapResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.lookup(req.Address)
	if err != nil {
		return amm.SwapResult{}, err
	}

	res, err := amm.Swap(s.pool, account, req.Direction, req.Amount)
	if err != nil {
		return amm.SwapResult{}, errors.Wrap(err, "amm.Swap")
	}
	if req.MinAmountOut.IsPositive() && res.AmountOut.LessThan(req.MinAmountOut) {
		return amm.SwapResult{}, errors.Wrapf(apperrors.ErrSlippageExceeded,
			"output %s, minimum %s", res.AmountOut, req.MinAmountOut)
	}

	s.setPool(res.Pool)
	s.accounts[req.Address] = res.Account

	s.logger.Info("swap executed",
		zap.String("address", req.Address.Hex()),
		zap.String("direction", string(req.Direction)),
		zap.String("amount_in", res.AmountIn.String()),
		zap.String("amount_out", res.AmountOut.String()),
		zap.String("fee", res.FeeAmount.String()),
	)

	return res, nil
}

// AddLiquidity deposits both assets of a connected account into the pool.
func (s *VaultService) AddLiquidity(_ context.Context, req dto.AddLiquidityRequest) (_ amm.AddLiquidityResult, err error) {
	defer func() { metrics.ObserveOperation(opAddLiquidity, err) }()

	if err = validate.AddLiquidityRequestValidate(req); err != nil {
		return amm.AddLiquidityResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.lookup(req.Address)
	if err != nil {
		return amm.AddLiquidityResult{}, err
	}

	res, err := amm.AddLiquidity(s.pool, account, req.AmountA, req.AmountB)
	if err != nil {
		return amm.AddLiquidityResult{}, errors.Wrap(err, "amm.AddLiquidity")
	}

	s.setPool(res.Pool)
	s.accounts[req.Address] = res.Account

	s.logger.Info("liquidity added",
		zap.String("address", req.Address.Hex()),
		zap.String("deposit_a", res.DepositA.String()),
		zap.String("deposit_b", res.DepositB.String()),
		zap.String("minted", res.Minted.String()),
	)

	return res, nil
}

// RemoveLiquidity burns LP shares of a connected account.
func (s *VaultService) RemoveLiquidity(_ context.Context, req dto.RemoveLiquidityRequest) (_ amm.RemoveLiquidityResult, err error) {
	defer func() { metrics.ObserveOperation(opRemoveLiquidity, err) }()

	if err = validate.RemoveLiquidityRequestValidate(req); err != nil {
		return amm.RemoveLiquidityResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.lookup(req.Address)
	if err != nil {
		return amm.RemoveLiquidityResult{}, err
	}

	res, err := amm.RemoveLiquidity(s.pool, account, req.LpAmount)
	if err != nil {
		return amm.RemoveLiquidityResult{}, errors.Wrap(err, "amm.RemoveLiquidity")
	}

	s.setPool(res.Pool)
	s.accounts[req.Address] = res.Account

	s.logger.Info("liquidity removed",
		zap.String("address", req.Address.Hex()),
		zap.String("burned", res.Burned.String()),
		zap.String("amount_a", res.AmountA.String()),
		zap.String("amount_b", res.AmountB.String()),
	)

	return res, nil
}
