package service

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Traqian/alpha-beta-swap-vault/internal/amm"
	"github.com/Traqian/alpha-beta-swap-vault/internal/service/dto"
)

// Service represents interface for business logic.
type Service interface {
	Pool(ctx context.Context) amm.Pool
	Quote(ctx context.Context, req dto.QuoteRequest) (amm.SwapQuote, error)
	BalancedDeposit(ctx context.Context, amountA decimal.Decimal) (decimal.Decimal, error)
	RefreshPool(ctx context.Context) (amm.Pool, error)

	Connect(ctx context.Context) (amm.Account, error)
	Disconnect(ctx context.Context, address common.Address) error
	Account(ctx context.Context, address common.Address) (amm.Account, error)

	Swap(ctx context.Context, req dto.SwapRequest) (amm.SwapResult, error)
	AddLiquidity(ctx context.Context, req dto.AddLiquidityRequest) (amm.AddLiquidityResult, error)
	RemoveLiquidity(ctx context.Context, req dto.RemoveLiquidityRequest) (amm.RemoveLiquidityResult, error)
}

// PoolSource supplies the pool state the vault is seeded and refreshed from.
type PoolSource interface {
	FetchPool(ctx context.Context) (amm.Pool, error)
}

// AccountSource supplies wallets and their balances.
type AccountSource interface {
	// Connect opens a new wallet and returns its initial balances.
	Connect(ctx context.Context) (amm.Account, error)
	// Balances re-reads the balances of a known wallet.
	Balances(ctx context.Context, address common.Address) (amm.Account, error)
}

// VaultService represents struct for business logic.
//
// It owns the single shared pool and the connected accounts. Every mutation
// runs under mu, sources are always called without holding it.
type VaultService struct {
	mu       sync.RWMutex
	pool     amm.Pool
	accounts map[common.Address]amm.Account

	poolSource    PoolSource
	accountSource AccountSource

	logger *zap.Logger
}

// NewVaultService creates VaultService seeded with pool.
func NewVaultService(pool amm.Pool, poolSource PoolSource, accountSource AccountSource, logger *zap.Logger) *VaultService {
	s := &VaultService{
		accounts: make(map[common.Address]amm.Account),

		poolSource:    poolSource,
		accountSource: accountSource,

		logger: logger,
	}
	s.setPool(pool)

	return s
}
