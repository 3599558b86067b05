package uniswap

import (
	"context"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const pairABIJSON = `[
	{"inputs":[],"name":"getReserves","outputs":[{"internalType":"uint112","name":"_reserve0","type":"uint112"},{"internalType":"uint112","name":"_reserve1","type":"uint112"},{"internalType":"uint32","name":"_blockTimestampLast","type":"uint32"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"totalSupply","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

const (
	getReservesMethod = "getReserves"
	totalSupplyMethod = "totalSupply"
)

// Client defines an abstraction for reading Uniswap V2 pair data from the Ethereum blockchain.
type Client interface {
	// GetPairReserves returns the current reserves of token0 and token1 for a given pair contract.
	GetPairReserves(ctx context.Context, pair common.Address) (*big.Int, *big.Int, error)
	// GetTotalSupply returns the outstanding LP supply of a given pair contract.
	GetTotalSupply(ctx context.Context, pair common.Address) (*big.Int, error)
	// GetPairState reads reserves and LP supply concurrently.
	GetPairState(ctx context.Context, pair common.Address) (reserve0, reserve1, totalSupply *big.Int, err error)
}

// EthCaller represents interface for calling contracts.
type EthCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

type ethClientImpl struct {
	caller  EthCaller
	pairABI abi.ABI

	callTimeout time.Duration
}

// NewClient creates a new Uniswap Client backed by an Ethereum RPC connection.
func NewClient(rpcURL string, callTimeout time.Duration) (Client, error) {
	caller, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, errors.Wrap(err, "ethclient.Dial")
	}

	return newClientWithCaller(caller, callTimeout)
}

func newClientWithCaller(caller EthCaller, callTimeout time.Duration) (Client, error) {
	pairABI, err := abi.JSON(strings.NewReader(pairABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON")
	}

	return &ethClientImpl{
		caller:  caller,
		pairABI: pairABI,

		callTimeout: callTimeout,
	}, nil
}

func (c *ethClientImpl) call(ctx context.Context, to common.Address, method string) ([]interface{}, error) {
	data, err := c.pairABI.Pack(method)
	if err != nil {
		return nil, errors.Wrap(err, "c.pairABI.Pack")
	}

	if c.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}

	res, err := c.caller.CallContract(
		ctx,
		ethereum.CallMsg{
			To:   &to,
			Data: data,
		},
		nil,
	)
	if err != nil {
		return nil, errors.Wrap(err, "c.caller.CallContract")
	}

	out, err := c.pairABI.Unpack(method, res)
	if err != nil {
		return nil, errors.Wrap(err, "c.pairABI.Unpack")
	}

	return out, nil
}

// GetPairReserves returns the current reserves of token0 and token1 for a given pair contract.
func (c *ethClientImpl) GetPairReserves(ctx context.Context, pair common.Address) (*big.Int, *big.Int, error) {
	out, err := c.call(ctx, pair, getReservesMethod)
	if err != nil {
		return nil, nil, errors.Wrap(err, "c.call")
	}

	const requiredSize = 2
	if len(out) < requiredSize {
		return nil, nil, errors.Errorf("insufficient outputs from getReserves call: expected %d, got %d", requiredSize, len(out))
	}

	reserves := make([]*big.Int, requiredSize)
	reserveNames := []string{"reserve0", "reserve1"}

	for i := 0; i < requiredSize; i++ {
		reserve, ok := out[i].(*big.Int)
		if !ok {
			return nil, nil, errors.Errorf("failed to cast %s to *big.Int", reserveNames[i])
		}
		reserves[i] = reserve
	}

	return reserves[0], reserves[1], nil
}

// GetTotalSupply returns the outstanding LP supply of a given pair contract.
func (c *ethClientImpl) GetTotalSupply(ctx context.Context, pair common.Address) (*big.Int, error) {
	out, err := c.call(ctx, pair, totalSupplyMethod)
	if err != nil {
		return nil, errors.Wrap(err, "c.call")
	}
	if len(out) == 0 {
		return nil, errors.New("empty output from totalSupply call")
	}

	supply, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.New("failed to cast totalSupply to *big.Int")
	}

	return supply, nil
}

// GetPairState reads reserves and LP supply concurrently. Failures of both
// reads are reported together.
func (c *ethClientImpl) GetPairState(ctx context.Context, pair common.Address) (*big.Int, *big.Int, *big.Int, error) {
	const numCalls = 2

	type stateResult struct {
		reserve0, reserve1 *big.Int
		supply             *big.Int
		err                error
		name               string
	}

	var wg sync.WaitGroup
	ch := make(chan stateResult, numCalls)

	wg.Add(numCalls)
	go func() {
		defer wg.Done()

		r0, r1, err := c.GetPairReserves(ctx, pair)
		if err != nil {
			ch <- stateResult{err: errors.Wrapf(err, "failed to call %s", getReservesMethod)}
			return
		}
		ch <- stateResult{reserve0: r0, reserve1: r1, name: getReservesMethod}
	}()
	go func() {
		defer wg.Done()

		supply, err := c.GetTotalSupply(ctx, pair)
		if err != nil {
			ch <- stateResult{err: errors.Wrapf(err, "failed to call %s", totalSupplyMethod)}
			return
		}
		ch <- stateResult{supply: supply, name: totalSupplyMethod}
	}()

	go func() {
		wg.Wait()
		close(ch)
	}()

	var (
		reserve0, reserve1, supply *big.Int
		combinedErr                error
	)

	for result := range ch {
		if result.err != nil {
			combinedErr = multierr.Append(combinedErr, result.err)
			continue
		}

		switch result.name {
		case getReservesMethod:
			reserve0, reserve1 = result.reserve0, result.reserve1
		case totalSupplyMethod:
			supply = result.supply
		}
	}

	if combinedErr != nil {
		return nil, nil, nil, errors.Wrap(combinedErr, "failed to get pair state")
	}

	return reserve0, reserve1, supply, nil
}
