package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/housecomp/housing-simulator/internal/domain"
)

// AnnualToMonthly converts a stated annual percentage into the equivalent
// compound monthly rate: (1 + annual/100)^(1/12) - 1. A zero or absent rate
// converts to zero; no rate means no drift, never a fault.
func AnnualToMonthly(annualPct decimal.Decimal) decimal.Decimal {
	if annualPct.IsZero() {
		return decimal.Zero
	}
	annual, _ := annualPct.Float64()
	monthly := math.Pow(1.0+annual/100.0, 1.0/12.0) - 1.0
	return decimal.NewFromFloat(monthly)
}

// Inflate compounds base by an annual percentage over a number of elapsed
// months: base * (1 + annual/100)^(months/12). Callers anchor elapsedMonths
// to the series' own first month, not to month 1 globally.
func Inflate(base decimal.Decimal, elapsedMonths int, annualPct decimal.Decimal) decimal.Decimal {
	if elapsedMonths <= 0 || annualPct.IsZero() || base.IsZero() {
		return base
	}
	annual, _ := annualPct.Float64()
	factor := math.Pow(1.0+annual/100.0, float64(elapsedMonths)/12.0)
	return base.Mul(decimal.NewFromFloat(factor))
}

// MonthlyRateFor resolves the schedule's applicable annual rate at the given
// month and converts it to a monthly rate. Months not covered by any band
// yield zero.
func MonthlyRateFor(schedule domain.RateSchedule, month int) decimal.Decimal {
	return AnnualToMonthly(schedule.AnnualRateFor(month))
}
