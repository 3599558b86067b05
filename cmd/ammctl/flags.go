package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/Traqian/alpha-beta-swap-vault/internal/numeric"
)

// decimalValue is a pflag.Value holding a decimal amount.
type decimalValue struct {
	d *decimal.Decimal
}

var _ pflag.Value = decimalValue{}

func newDecimalValue(def string, p *decimal.Decimal) decimalValue {
	*p = numeric.Parse(def)
	return decimalValue{d: p}
}

func (v decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v decimalValue) Set(s string) error {
	d, err := numeric.ParseStrict(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (v decimalValue) Type() string {
	return "decimal"
}

func decimalVar(fs *pflag.FlagSet, p *decimal.Decimal, name, def, usage string) {
	fs.Var(newDecimalValue(def, p), name, usage)
}
