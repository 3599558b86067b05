package poolmath

import "github.com/shopspring/decimal"

// Price impact thresholds in percent.
var (
	ImpactLow      = decimal.NewFromInt(1)
	ImpactModerate = decimal.NewFromInt(3)
	ImpactHigh     = decimal.NewFromInt(5)
	ImpactExtreme  = decimal.NewFromInt(10)
)

// Severity classifies how far a swap moves the pool price.
type Severity string

const (
	SeverityNone     Severity = "none"     // < 1%
	SeverityLow      Severity = "low"      // 1-3%
	SeverityModerate Severity = "moderate" // 3-5%
	SeverityHigh     Severity = "high"     // 5-10%
	SeverityExtreme  Severity = "extreme"  // >= 10%
)

// ImpactSeverity returns the severity level for a price impact percentage.
func ImpactSeverity(impactPercent decimal.Decimal) Severity {
	switch {
	case impactPercent.LessThan(ImpactLow):
		return SeverityNone
	case impactPercent.LessThan(ImpactModerate):
		return SeverityLow
	case impactPercent.LessThan(ImpactHigh):
		return SeverityModerate
	case impactPercent.LessThan(ImpactExtreme):
		return SeverityHigh
	default:
		return SeverityExtreme
	}
}
