package config

import (
	"github.com/shopspring/decimal"

	"github.com/housecomp/housing-simulator/internal/domain"
)

// CreateExampleInput builds a realistic example configuration: a 500k
// property financed over 30 years under SAC, compared against renting at
// 2.5k and investing at 11% a year, with an FGTS-like account available at
// purchase time.
func CreateExampleInput() *domain.SimulationInput {
	annualInterest := decimal.NewFromFloat(10.0)
	rent := decimal.NewFromInt(2500)
	fgtsCap := decimal.NewFromInt(60000)
	interval := 12
	occurrences := 5

	return &domain.SimulationInput{
		HorizonMonths: 360,
		MonthlyIncome: decimal.NewFromInt(12000),
		Property: domain.PropertyConfig{
			Value:                 decimal.NewFromInt(500000),
			HOAMonthly:            decimal.NewFromInt(800),
			PropertyTaxMonthly:    decimal.NewFromInt(250),
			AppreciationAnnualPct: decimal.NewFromFloat(4.0),
			TransferTaxPct:        decimal.NewFromFloat(3.0),
			DeedFeePct:            decimal.NewFromFloat(1.5),
		},
		Loan: domain.LoanConfig{
			DownPayment:       decimal.NewFromInt(100000),
			TermMonths:        360,
			AnnualInterestPct: &annualInterest,
			System:            domain.SystemSAC,
		},
		Rent: domain.RentConfig{
			Monthly: &rent,
		},
		Investment: domain.InvestmentConfig{
			InitialBalance:      decimal.NewFromInt(50000),
			MonthlyContribution: decimal.NewFromInt(3000),
			Returns: domain.RateSchedule{
				{StartMonth: 1, AnnualRate: decimal.NewFromFloat(11.0)},
			},
			TaxRegime:  domain.TaxOnWithdrawal,
			TaxRatePct: decimal.NewFromFloat(15.0),
		},
		RestrictedSavings: &domain.RestrictedSavingsConfig{
			InitialBalance:          decimal.NewFromInt(40000),
			MonthlyContribution:     decimal.NewFromInt(960),
			AnnualYieldPct:          decimal.NewFromFloat(3.0),
			UseAtPurchase:           true,
			MaxWithdrawalAtPurchase: &fgtsCap,
		},
		Economy: domain.EconomyConfig{
			InflationAnnualPct: decimal.NewFromFloat(4.5),
		},
		ExtraAmortizations: []domain.RecurringEvent{
			{
				Month:          13,
				Value:          decimal.NewFromInt(10000),
				ValueType:      domain.ValueFixed,
				IntervalMonths: &interval,
				Occurrences:    &occurrences,
				Source:         domain.SourceCash,
			},
		},
	}
}
