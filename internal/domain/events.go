package domain

import (
	"github.com/shopspring/decimal"
)

// ValueType distinguishes fixed cash amounts from percentages of a live
// balance.
type ValueType string

const (
	ValueFixed      ValueType = "fixed"
	ValuePercentage ValueType = "percentage"
)

// RecurringEvent is a declarative cash event: a one-off or recurring extra
// amortization or investment contribution. Events are declared once at
// simulation start and expanded into concrete firings before the monthly loop
// runs.
type RecurringEvent struct {
	// Month is the first firing month (1-indexed). Zero with no interval
	// makes the event inert.
	Month int `yaml:"month"`
	// Value is a cash amount for fixed events or a percentage for percentage
	// events. Percentage values are evaluated against the current balance of
	// the thing they diminish at the month they fire.
	Value     decimal.Decimal `yaml:"value"`
	ValueType ValueType       `yaml:"value_type"`
	// IntervalMonths makes the event recur every N months. Nil means a
	// single firing.
	IntervalMonths *int `yaml:"interval_months"`
	// Occurrences bounds the number of firings. Mutually exclusive with
	// EndMonth.
	Occurrences *int `yaml:"occurrences"`
	// EndMonth bounds the last firing month. Mutually exclusive with
	// Occurrences.
	EndMonth *int `yaml:"end_month"`
	// InflationAdjust grows a fixed value by the general inflation rate,
	// anchored at the event's own first firing month.
	InflationAdjust bool `yaml:"inflation_adjust"`
	// Source selects the pool of money the event draws from.
	Source FundingSource `yaml:"funding_source"`
}

// RateBand is one interval of a piecewise annual rate series.
type RateBand struct {
	StartMonth int `yaml:"start_month"`
	// EndMonth is inclusive; nil means open-ended.
	EndMonth   *int            `yaml:"end_month"`
	AnnualRate decimal.Decimal `yaml:"annual_rate"`
}

// Contains reports whether the band's interval covers the given month.
func (b RateBand) Contains(month int) bool {
	if month < b.StartMonth {
		return false
	}
	return b.EndMonth == nil || month <= *b.EndMonth
}

// RateSchedule is an ordered list of rate bands looked up per month.
type RateSchedule []RateBand

// AnnualRateFor returns the annual rate applicable at the given month. Bands
// are scanned in declared order and the first match wins; a month covered by
// no band yields zero.
func (s RateSchedule) AnnualRateFor(month int) decimal.Decimal {
	for _, band := range s {
		if band.Contains(month) {
			return band.AnnualRate
		}
	}
	return decimal.Zero
}
