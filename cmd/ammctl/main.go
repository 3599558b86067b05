// Command ammctl runs pool calculations offline against reserves given as flags.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Traqian/alpha-beta-swap-vault/internal/amm"
	"github.com/Traqian/alpha-beta-swap-vault/internal/numeric"
	"github.com/Traqian/alpha-beta-swap-vault/internal/poolmath"
	"github.com/Traqian/alpha-beta-swap-vault/internal/service/dto"
	"github.com/Traqian/alpha-beta-swap-vault/internal/service/validate"
)

type poolFlags struct {
	reserveA decimal.Decimal
	reserveB decimal.Decimal
	supply   decimal.Decimal
	decimals int32
}

func (f *poolFlags) pool() (amm.Pool, error) {
	pool, err := amm.NewPool(f.reserveA, f.reserveB, f.supply)
	if err != nil {
		return amm.Pool{}, errors.Wrap(err, "amm.NewPool")
	}
	return pool, nil
}

func (f *poolFlags) format(d decimal.Decimal) string {
	return numeric.Format(d, f.decimals)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &poolFlags{}

	root := &cobra.Command{
		Use:          "ammctl",
		Short:        "ALPHA/BETA pool calculator",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	decimalVar(pf, &flags.reserveA, "reserve-a", "1000", "ALPHA reserve")
	decimalVar(pf, &flags.reserveB, "reserve-b", "1000", "BETA reserve")
	decimalVar(pf, &flags.supply, "supply", "1000", "outstanding LP supply")
	pf.Int32Var(&flags.decimals, "decimals", numeric.DisplayDecimals, "fractional digits shown")

	root.AddCommand(
		newQuoteCmd(flags),
		newMintCmd(flags),
		newBurnCmd(flags),
		newBalancedCmd(flags),
	)

	return root
}

func newQuoteCmd(flags *poolFlags) *cobra.Command {
	var (
		direction string
		amount    decimal.Decimal
		slippage  decimal.Decimal
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a swap",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := flags.pool()
			if err != nil {
				return err
			}
			d, err := amm.ParseDirection(direction)
			if err != nil {
				return err
			}

			req := dto.QuoteRequest{Direction: d, Amount: amount, Slippage: slippage}
			if err = validate.QuoteRequestValidate(req); err != nil {
				return err
			}

			q := amm.Quote(pool, req.Direction, req.Amount, req.Slippage)
			inAsset, outAsset := d.InputAsset(), d.OutputAsset()

			w := cmd.OutOrStdout()
			printf(w, "input:            %s %s\n", flags.format(q.InputAmount), inAsset)
			printf(w, "output:           %s %s\n", flags.format(q.OutputAmount), outAsset)
			printf(w, "fee:              %s %s\n", flags.format(q.FeeAmount), inAsset)
			printf(w, "price impact:     %s%% (%s)\n", flags.format(q.PriceImpact), q.Severity)
			printf(w, "minimum received: %s %s\n", flags.format(q.MinimumReceived), outAsset)
			printf(w, "rate:             1 %s = %s %s\n", inAsset, flags.format(q.ExecutionRate), outAsset)
			return nil
		},
	}

	cmd.Flags().StringVar(&direction, "direction", string(amm.AlphaToBeta), "ALPHA_TO_BETA or BETA_TO_ALPHA")
	decimalVar(cmd.Flags(), &amount, "amount", "0", "input amount")
	decimalVar(cmd.Flags(), &slippage, "slippage", "0.5", "slippage tolerance in percent")

	return cmd
}

func newMintCmd(flags *poolFlags) *cobra.Command {
	var amountA, amountB decimal.Decimal

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "LP shares minted for a deposit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := flags.pool()
			if err != nil {
				return err
			}

			minted := poolmath.LPTokensToMint(amountA, amountB, pool.ReserveA, pool.ReserveB, pool.TotalLpSupply)
			share := decimal.Zero
			if total := pool.TotalLpSupply.Add(minted); total.IsPositive() {
				share = minted.Mul(decimal.NewFromInt(100)).DivRound(total, poolmath.Precision)
			}

			w := cmd.OutOrStdout()
			printf(w, "minted:     %s LP\n", flags.format(minted))
			printf(w, "pool share: %s%%\n", flags.format(share))
			return nil
		},
	}

	decimalVar(cmd.Flags(), &amountA, "amount-a", "0", "ALPHA deposit")
	decimalVar(cmd.Flags(), &amountB, "amount-b", "0", "BETA deposit")

	return cmd
}

func newBurnCmd(flags *poolFlags) *cobra.Command {
	var lp decimal.Decimal

	cmd := &cobra.Command{
		Use:   "burn",
		Short: "Reserves returned for burning LP shares",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := flags.pool()
			if err != nil {
				return err
			}

			amountA, amountB := poolmath.RemoveLiquidityAmounts(lp, pool.ReserveA, pool.ReserveB, pool.TotalLpSupply)

			w := cmd.OutOrStdout()
			printf(w, "alpha: %s %s\n", flags.format(amountA), amm.AssetAlpha)
			printf(w, "beta:  %s %s\n", flags.format(amountB), amm.AssetBeta)
			return nil
		},
	}

	decimalVar(cmd.Flags(), &lp, "lp", "0", "LP shares to burn")

	return cmd
}

func newBalancedCmd(flags *poolFlags) *cobra.Command {
	var amountA decimal.Decimal

	cmd := &cobra.Command{
		Use:   "balanced",
		Short: "BETA amount that matches an ALPHA deposit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := flags.pool()
			if err != nil {
				return err
			}

			amountB := poolmath.ProportionalAmount(amountA, pool.ReserveA, pool.ReserveB)
			printf(cmd.OutOrStdout(), "%s %s\n", flags.format(amountB), amm.AssetBeta)
			return nil
		},
	}

	decimalVar(cmd.Flags(), &amountA, "amount-a", "0", "ALPHA deposit")

	return cmd
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
