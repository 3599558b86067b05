package main

import (
	"context"
	"log"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Traqian/alpha-beta-swap-vault/internal/config"
	"github.com/Traqian/alpha-beta-swap-vault/internal/infra/seed"
	"github.com/Traqian/alpha-beta-swap-vault/internal/infra/uniswap"
	"github.com/Traqian/alpha-beta-swap-vault/internal/service"
	transport "github.com/Traqian/alpha-beta-swap-vault/internal/transport/http"
)

func main() {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
	}

	cfg := config.Load(path)

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("newLogger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	poolSource, err := newPoolSource(cfg.Pool)
	if err != nil {
		logger.Fatal("newPoolSource", zap.Error(err))
	}

	minBalance, maxBalance := cfg.Wallet.BalanceRange()
	minLp, maxLp := cfg.Wallet.LpBalanceRange()
	walletSource, err := seed.NewWalletSource(seed.WalletOptions{
		MinBalance:   minBalance,
		MaxBalance:   maxBalance,
		MinLpBalance: minLp,
		MaxLpBalance: maxLp,
		Latency:      cfg.Wallet.Latency,
	})
	if err != nil {
		logger.Fatal("seed.NewWalletSource", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	pool, err := poolSource.FetchPool(ctx)
	cancel()
	if err != nil {
		logger.Fatal("poolSource.FetchPool", zap.Error(err))
	}

	logger.Info("pool seeded",
		zap.String("source", cfg.Pool.Source),
		zap.String("reserve_a", pool.ReserveA.String()),
		zap.String("reserve_b", pool.ReserveB.String()),
		zap.String("total_lp_supply", pool.TotalLpSupply.String()),
	)

	svc := service.NewVaultService(pool, poolSource, walletSource, logger)
	srv := transport.NewServer(svc, cfg, logger)

	if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Fatal("srv.ListenAndServe", zap.Error(err))
	}
}

func newPoolSource(cfg config.PoolConfig) (service.PoolSource, error) {
	switch cfg.Source {
	case config.SourceChain:
		client, err := uniswap.NewClient(cfg.RPCURL, cfg.CallTimeout)
		if err != nil {
			return nil, errors.Wrap(err, "uniswap.NewClient")
		}
		return uniswap.NewPoolSource(client, common.HexToAddress(cfg.PairAddress),
			cfg.DecimalsA, cfg.DecimalsB, cfg.LPDecimals), nil
	default:
		reserveA, reserveB, totalSupply := cfg.Seed()
		src, err := seed.NewStaticPoolSource(reserveA, reserveB, totalSupply, 0)
		if err != nil {
			return nil, errors.Wrap(err, "seed.NewStaticPoolSource")
		}
		return src, nil
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
