package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Traqian/alpha-beta-swap-vault/internal/amm"
	"github.com/Traqian/alpha-beta-swap-vault/internal/apperrors"
	"github.com/Traqian/alpha-beta-swap-vault/internal/config"
	"github.com/Traqian/alpha-beta-swap-vault/internal/service/dto"
	"github.com/Traqian/alpha-beta-swap-vault/internal/service/mock"
	httpdto "github.com/Traqian/alpha-beta-swap-vault/internal/transport/http/dto"
)

const testAddress = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestServer(t *testing.T) (*Server, *mock.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mock.NewMockService(ctrl)

	return NewServer(mockService, config.Config{DefaultSlippage: "0.5"}, zaptest.NewLogger(t)), mockService
}

func serve(t *testing.T, server *Server, method, target, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()

	server.mux.ServeHTTP(w, req)

	resp := w.Result()
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func seededPool(t *testing.T) amm.Pool {
	t.Helper()

	pool, err := amm.NewPool(d("1000"), d("1000"), d("1000"))
	require.NoError(t, err)
	return pool
}

func TestPingHandler(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)

	resp := serve(t, server, http.MethodGet, "/ping", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "pong", string(body))
}

func TestPoolHandler(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)
	mockService.EXPECT().Pool(gomock.Any()).Return(seededPool(t))

	resp := serve(t, server, http.MethodGet, "/pool", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))

	got := decode[httpdto.PoolResponse](t, resp)
	require.Equal(t, "1000", got.ReserveA.Value)
	require.Equal(t, "1", got.ExchangeRate.Display)
	require.Equal(t, "0.3", got.FeePercent)
	require.Equal(t, "ALPHA", got.TokenA.Symbol)
	require.True(t, got.Initialized)
}

func TestRefreshPoolHandler(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		server, mockService := newTestServer(t)
		mockService.EXPECT().RefreshPool(gomock.Any()).Return(seededPool(t), nil)

		resp := serve(t, server, http.MethodPost, "/pool/refresh", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("source unavailable", func(t *testing.T) {
		t.Parallel()

		server, mockService := newTestServer(t)
		mockService.EXPECT().RefreshPool(gomock.Any()).
			Return(amm.Pool{}, errors.Wrap(apperrors.ErrSourceUnavailable, "rpc down"))

		resp := serve(t, server, http.MethodPost, "/pool/refresh", "")
		require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})
}

func TestQuoteHandler(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		server, mockService := newTestServer(t)
		pool := seededPool(t)

		mockService.EXPECT().
			Quote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req dto.QuoteRequest) (amm.SwapQuote, error) {
				require.Equal(t, amm.AlphaToBeta, req.Direction)
				require.True(t, req.Slippage.Equal(d("0.5")))
				return amm.Quote(pool, req.Direction, req.Amount, req.Slippage), nil
			})

		resp := serve(t, server, http.MethodGet, "/quote?direction=ALPHA_TO_BETA&amount=100", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		got := decode[httpdto.QuoteResponse](t, resp)
		require.Equal(t, "90.661089388014913158", got.OutputAmount.Value)
		require.Equal(t, "90.6611", got.OutputAmount.Display)
		require.Equal(t, "0.3", got.FeeAmount.Value)
		require.Equal(t, "high", got.Severity)
	})

	t.Run("validation error - bad amount", func(t *testing.T) {
		t.Parallel()

		server, _ := newTestServer(t)

		resp := serve(t, server, http.MethodGet, "/quote?direction=ALPHA_TO_BETA&amount=ten", "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		got := decode[httpdto.ErrorResponse](t, resp)
		require.Contains(t, got.Error, "bad amount")
	})

	t.Run("wrong http method", func(t *testing.T) {
		t.Parallel()

		server, _ := newTestServer(t)

		resp := serve(t, server, http.MethodPost, "/quote", "")
		require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestServiceErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		serviceError       error
		expectedStatusCode int
	}{
		{"invalid argument", apperrors.ErrInvalidArgument, http.StatusBadRequest},
		{"zero amount", apperrors.ErrZeroOrNegativeAmount, http.StatusBadRequest},
		{"insufficient balance", apperrors.ErrInsufficientBalance, http.StatusUnprocessableEntity},
		{"insufficient lp balance", apperrors.ErrInsufficientLpBalance, http.StatusUnprocessableEntity},
		{"uninitialized pool", apperrors.ErrUninitializedPool, http.StatusUnprocessableEntity},
		{"slippage exceeded", apperrors.ErrSlippageExceeded, http.StatusUnprocessableEntity},
		{"account not found", apperrors.ErrAccountNotFound, http.StatusNotFound},
		{"source unavailable", apperrors.ErrSourceUnavailable, http.StatusBadGateway},
		{"wrapped error", errors.Wrap(apperrors.ErrInsufficientBalance, "amm.Swap"), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("unknown error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server, mockService := newTestServer(t)
			mockService.EXPECT().
				Swap(gomock.Any(), gomock.Any()).
				Return(amm.SwapResult{}, tt.serviceError)

			resp := serve(t, server, http.MethodPost, "/swap",
				`{"address":"`+testAddress+`","direction":"ALPHA_TO_BETA","amount":"10"}`)
			require.Equal(t, tt.expectedStatusCode, resp.StatusCode)

			got := decode[httpdto.ErrorResponse](t, resp)
			if tt.expectedStatusCode == http.StatusInternalServerError {
				require.Equal(t, "internal error", got.Error)
			}
		})
	}
}

func TestSwapHandler(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		server, mockService := newTestServer(t)
		pool := seededPool(t)
		account := amm.Account{Address: common.HexToAddress(testAddress), BalanceA: d("150"), BalanceB: d("120")}

		mockService.EXPECT().
			Swap(gomock.Any(), dto.SwapRequest{
				Address:      common.HexToAddress(testAddress),
				Direction:    amm.AlphaToBeta,
				Amount:       d("100"),
				MinAmountOut: d("90"),
			}).
			DoAndReturn(func(_ any, req dto.SwapRequest) (amm.SwapResult, error) {
				return amm.Swap(pool, account, req.Direction, req.Amount)
			})

		resp := serve(t, server, http.MethodPost, "/swap",
			`{"address":"`+testAddress+`","direction":"ALPHA_TO_BETA","amount":"100","min_amount_out":"90"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		got := decode[httpdto.SwapResponse](t, resp)
		require.Equal(t, "ALPHA_TO_BETA", got.Direction)
		require.Equal(t, "90.661089388014913158", got.AmountOut.Value)
		require.Equal(t, "1100", got.Pool.ReserveA.Value)
		require.Equal(t, "50", got.Account.BalanceA.Value)
		require.Equal(t, common.HexToAddress(testAddress).Hex(), got.Account.Address)
	})

	t.Run("validation error - missing amount", func(t *testing.T) {
		t.Parallel()

		server, _ := newTestServer(t)

		resp := serve(t, server, http.MethodPost, "/swap", `{"address":"`+testAddress+`","direction":"ALPHA_TO_BETA"}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestWalletHandlers(t *testing.T) {
	t.Parallel()

	addr := common.HexToAddress(testAddress)
	account := amm.Account{Address: addr, BalanceA: d("150.25"), BalanceB: d("120"), BalanceLp: d("7.5")}

	t.Run("connect", func(t *testing.T) {
		t.Parallel()

		server, mockService := newTestServer(t)
		mockService.EXPECT().Connect(gomock.Any()).Return(account, nil)

		resp := serve(t, server, http.MethodPost, "/wallets", "")
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		got := decode[httpdto.AccountResponse](t, resp)
		require.Equal(t, addr.Hex(), got.Address)
		require.Equal(t, "150.25", got.BalanceA.Value)
		require.Equal(t, "7.5", got.BalanceLp.Display)
	})

	t.Run("account", func(t *testing.T) {
		t.Parallel()

		server, mockService := newTestServer(t)
		mockService.EXPECT().Account(gomock.Any(), addr).Return(account, nil)

		resp := serve(t, server, http.MethodGet, "/wallets/"+testAddress, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("account not found", func(t *testing.T) {
		t.Parallel()

		server, mockService := newTestServer(t)
		mockService.EXPECT().Account(gomock.Any(), addr).
			Return(amm.Account{}, errors.Wrap(apperrors.ErrAccountNotFound, "address"))

		resp := serve(t, server, http.MethodGet, "/wallets/"+testAddress, "")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("bad address", func(t *testing.T) {
		t.Parallel()

		server, _ := newTestServer(t)

		resp := serve(t, server, http.MethodGet, "/wallets/alice", "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("disconnect", func(t *testing.T) {
		t.Parallel()

		server, mockService := newTestServer(t)
		mockService.EXPECT().Disconnect(gomock.Any(), addr).Return(nil)

		resp := serve(t, server, http.MethodDelete, "/wallets/"+testAddress, "")
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}

func TestLiquidityHandlers(t *testing.T) {
	t.Parallel()

	addr := common.HexToAddress(testAddress)
	account := amm.Account{Address: addr, BalanceA: d("150"), BalanceB: d("120"), BalanceLp: d("10")}

	t.Run("balanced", func(t *testing.T) {
		t.Parallel()

		server, mockService := newTestServer(t)
		mockService.EXPECT().BalancedDeposit(gomock.Any(), d("10")).Return(d("20"), nil)

		resp := serve(t, server, http.MethodGet, "/liquidity/balanced?amount_a=10", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		got := decode[httpdto.BalancedResponse](t, resp)
		require.Equal(t, "20", got.AmountB.Value)
	})

	t.Run("add", func(t *testing.T) {
		t.Parallel()

		server, mockService := newTestServer(t)
		pool := seededPool(t)

		mockService.EXPECT().
			AddLiquidity(gomock.Any(), dto.AddLiquidityRequest{Address: addr, AmountA: d("10"), AmountB: d("10")}).
			DoAndReturn(func(_ any, req dto.AddLiquidityRequest) (amm.AddLiquidityResult, error) {
				return amm.AddLiquidity(pool, account, req.AmountA, req.AmountB)
			})

		resp := serve(t, server, http.MethodPost, "/liquidity/add",
			`{"address":"`+testAddress+`","amount_a":"10","amount_b":"10"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		got := decode[httpdto.AddLiquidityResponse](t, resp)
		require.Equal(t, "10", got.Minted.Value)
		require.Equal(t, "1010", got.Pool.TotalLpSupply.Value)
		require.Equal(t, "20", got.Account.BalanceLp.Value)
	})

	t.Run("remove", func(t *testing.T) {
		t.Parallel()

		server, mockService := newTestServer(t)
		pool := seededPool(t)

		mockService.EXPECT().
			RemoveLiquidity(gomock.Any(), dto.RemoveLiquidityRequest{Address: addr, LpAmount: d("10")}).
			DoAndReturn(func(_ any, req dto.RemoveLiquidityRequest) (amm.RemoveLiquidityResult, error) {
				return amm.RemoveLiquidity(pool, account, req.LpAmount)
			})

		resp := serve(t, server, http.MethodPost, "/liquidity/remove",
			`{"address":"`+testAddress+`","lp_amount":"10"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		got := decode[httpdto.RemoveLiquidityResponse](t, resp)
		require.Equal(t, "10", got.AmountA.Value)
		require.Equal(t, "0", got.Account.BalanceLp.Value)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)

	resp := serve(t, server, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "vault_connected_accounts")
}

func TestLogMiddleware(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)

	ctrl := gomock.NewController(t)
	server := NewServer(mock.NewMockService(ctrl), config.Config{}, zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	handler := server.logMiddleware(server.mux)
	handler.ServeHTTP(w, req)

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	require.Equal(t, "GET", fields["method"])
	require.Equal(t, "/ping", fields["path"])
	require.EqualValues(t, http.StatusOK, fields["status"])
}

func TestServer_ListenAndServe(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	server := NewServer(mock.NewMockService(ctrl), config.Config{
		ReadHeaderTimeout: 5 * time.Second,
		GraceTimeout:      5 * time.Second,
	}, zaptest.NewLogger(t))

	const addr = "localhost:0"

	errCh := make(chan error, 1)

	go func() {
		errCh <- server.ListenAndServe(addr)
	}()

	time.Sleep(100 * time.Millisecond)

	err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM)
	require.NoError(t, err)

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}
