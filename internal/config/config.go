package config

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/Traqian/alpha-beta-swap-vault/internal/numeric"
)

// Pool sources.
const (
	SourceStatic = "static"
	SourceChain  = "chain"
)

// maxTokenDecimals bounds the on-chain token decimals we are willing to scale.
const maxTokenDecimals = 36

// Config holds application configuration loaded from file.
type Config struct {
	ListenAddr        string        `yaml:"listen_addr"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	LogLevel          string        `yaml:"log_level"`
	DefaultSlippage   string        `yaml:"default_slippage"`

	Pool   PoolConfig   `yaml:"pool"`
	Wallet WalletConfig `yaml:"wallet"`
}

// PoolConfig selects and parameterises the pool seed.
type PoolConfig struct {
	Source      string `yaml:"source"`
	ReserveA    string `yaml:"reserve_a"`
	ReserveB    string `yaml:"reserve_b"`
	TotalSupply string `yaml:"total_supply"`

	RPCURL      string        `yaml:"rpc_url"`
	PairAddress string        `yaml:"pair_address"`
	DecimalsA   int32         `yaml:"decimals_a"`
	DecimalsB   int32         `yaml:"decimals_b"`
	LPDecimals  int32         `yaml:"lp_decimals"`
	CallTimeout time.Duration `yaml:"call_timeout"`
}

// WalletConfig bounds the randomly generated balances of connected wallets.
type WalletConfig struct {
	MinBalance   string        `yaml:"min_balance"`
	MaxBalance   string        `yaml:"max_balance"`
	MinLpBalance string        `yaml:"min_lp_balance"`
	MaxLpBalance string        `yaml:"max_lp_balance"`
	Latency      time.Duration `yaml:"latency"`
}

// Load reads the config from a YAML file path.
// Fails fatally if config is invalid or file is missing.
func Load(path string) Config {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("failed to open config file: os.Open: %v", err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			log.Printf("failed to close config file: f.Close: %v", err)
		}
	}(f)

	cfg, err := Parse(f)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	return cfg
}

// Parse decodes a YAML document, applies fallbacks and validates the result.
// An empty document yields the defaults.
func Parse(r io.Reader) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decoder.Decode")
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// Default returns the configuration used when no file overrides anything.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	const defaultTimeout = 5 * time.Second
	if c.ListenAddr == "" {
		c.ListenAddr = ":1337"
	}
	if c.GraceTimeout == 0 {
		c.GraceTimeout = defaultTimeout
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = defaultTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaultTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DefaultSlippage == "" {
		c.DefaultSlippage = "0.5"
	}

	p := &c.Pool
	if p.Source == "" {
		p.Source = SourceStatic
	}
	if p.ReserveA == "" {
		p.ReserveA = "1000"
	}
	if p.ReserveB == "" {
		p.ReserveB = "1000"
	}
	if p.TotalSupply == "" {
		p.TotalSupply = "1000"
	}
	if p.DecimalsA == 0 {
		p.DecimalsA = 18
	}
	if p.DecimalsB == 0 {
		p.DecimalsB = 18
	}
	if p.LPDecimals == 0 {
		p.LPDecimals = 18
	}
	if p.CallTimeout == 0 {
		p.CallTimeout = defaultTimeout
	}

	w := &c.Wallet
	if w.MinBalance == "" {
		w.MinBalance = "100"
	}
	if w.MaxBalance == "" {
		w.MaxBalance = "200"
	}
	if w.MinLpBalance == "" {
		w.MinLpBalance = "5"
	}
	if w.MaxLpBalance == "" {
		w.MaxLpBalance = "15"
	}
}

// Validate reports every problem found in the configuration at once.
func (c Config) Validate() error {
	var err error

	if _, lvlErr := zapcore.ParseLevel(c.LogLevel); lvlErr != nil {
		err = multierr.Append(err, errors.Wrap(lvlErr, "log_level"))
	}

	slippage, slipErr := parseNonNegative("default_slippage", c.DefaultSlippage)
	err = multierr.Append(err, slipErr)
	if slipErr == nil && slippage.GreaterThan(decimal.NewFromInt(100)) {
		err = multierr.Append(err, errors.Errorf("default_slippage must be within [0, 100], got %s", c.DefaultSlippage))
	}

	err = multierr.Append(err, c.Pool.validate())
	err = multierr.Append(err, c.Wallet.validate())

	return err
}

func (p PoolConfig) validate() error {
	var err error

	switch p.Source {
	case SourceStatic:
		for field, value := range map[string]string{
			"pool.reserve_a":    p.ReserveA,
			"pool.reserve_b":    p.ReserveB,
			"pool.total_supply": p.TotalSupply,
		} {
			_, fieldErr := parseNonNegative(field, value)
			err = multierr.Append(err, fieldErr)
		}
	case SourceChain:
		if p.RPCURL == "" {
			err = multierr.Append(err, errors.New("pool.rpc_url is required for the chain source"))
		}
		if !common.IsHexAddress(p.PairAddress) {
			err = multierr.Append(err, errors.Errorf("pool.pair_address %q is not a hex address", p.PairAddress))
		}
	default:
		err = multierr.Append(err, errors.Errorf("pool.source must be %q or %q, got %q", SourceStatic, SourceChain, p.Source))
	}

	for field, value := range map[string]int32{
		"pool.decimals_a":  p.DecimalsA,
		"pool.decimals_b":  p.DecimalsB,
		"pool.lp_decimals": p.LPDecimals,
	} {
		if value < 0 || value > maxTokenDecimals {
			err = multierr.Append(err, errors.Errorf("%s must be within [0, %d], got %d", field, maxTokenDecimals, value))
		}
	}

	return err
}

func (w WalletConfig) validate() error {
	var err error

	minBal, minErr := parseNonNegative("wallet.min_balance", w.MinBalance)
	maxBal, maxErr := parseNonNegative("wallet.max_balance", w.MaxBalance)
	err = multierr.Append(err, multierr.Combine(minErr, maxErr))
	if minErr == nil && maxErr == nil && minBal.GreaterThan(maxBal) {
		err = multierr.Append(err, errors.New("wallet.min_balance must not exceed wallet.max_balance"))
	}

	minLp, minLpErr := parseNonNegative("wallet.min_lp_balance", w.MinLpBalance)
	maxLp, maxLpErr := parseNonNegative("wallet.max_lp_balance", w.MaxLpBalance)
	err = multierr.Append(err, multierr.Combine(minLpErr, maxLpErr))
	if minLpErr == nil && maxLpErr == nil && minLp.GreaterThan(maxLp) {
		err = multierr.Append(err, errors.New("wallet.min_lp_balance must not exceed wallet.max_lp_balance"))
	}

	if w.Latency < 0 {
		err = multierr.Append(err, errors.New("wallet.latency must not be negative"))
	}

	return err
}

// Slippage returns the default slippage tolerance in percent.
func (c Config) Slippage() decimal.Decimal {
	return numeric.Parse(c.DefaultSlippage)
}

// Seed returns the static pool reserves and LP supply.
func (p PoolConfig) Seed() (reserveA, reserveB, totalSupply decimal.Decimal) {
	return numeric.Parse(p.ReserveA), numeric.Parse(p.ReserveB), numeric.Parse(p.TotalSupply)
}

// BalanceRange returns the ALPHA/BETA balance bounds for new wallets.
func (w WalletConfig) BalanceRange() (decimal.Decimal, decimal.Decimal) {
	return numeric.Parse(w.MinBalance), numeric.Parse(w.MaxBalance)
}

// LpBalanceRange returns the LP balance bounds for new wallets.
func (w WalletConfig) LpBalanceRange() (decimal.Decimal, decimal.Decimal) {
	return numeric.Parse(w.MinLpBalance), numeric.Parse(w.MaxLpBalance)
}

func parseNonNegative(field, value string) (decimal.Decimal, error) {
	d, err := numeric.ParseStrict(value)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, field)
	}
	if d.IsNegative() {
		return decimal.Zero, errors.Errorf("%s must not be negative, got %s", field, value)
	}
	return d, nil
}
