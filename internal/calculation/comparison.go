package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/housecomp/housing-simulator/internal/domain"
)

// Compare aggregates the three finished ledgers into cross-scenario metrics
// and selects a winner. It is a pure function over the finished record
// sequences.
func Compare(buy, rentInvest, investThenBuy *domain.ScenarioResult, initialWealth decimal.Decimal) *domain.ComparisonResult {
	results := []*domain.ScenarioResult{buy, rentInvest, investThenBuy}
	comparison := &domain.ComparisonResult{
		InitialWealth: initialWealth,
		Outcomes:      make([]domain.ScenarioOutcome, 0, len(results)),
	}

	best := -1
	var bestChange decimal.Decimal

	for i, result := range results {
		outcome := domain.ScenarioOutcome{
			Kind:         result.Summary.Kind,
			Name:         result.Summary.Name,
			TotalOutflow: result.Summary.TotalOutflow,
		}
		if last := result.FinalRecord(); last != nil {
			outcome.FinalWealth = last.Wealth
			outcome.AverageMonthlyOutflow = result.Summary.TotalOutflow.
				Div(decimal.NewFromInt(int64(len(result.Records))))
		}
		outcome.NetWorthChange = outcome.FinalWealth.Sub(initialWealth)
		if initialWealth.IsPositive() {
			outcome.ROIPct = outcome.NetWorthChange.Div(initialWealth).
				Mul(decimal.NewFromInt(100))
		}

		// The winner is the highest net-worth change, deliberately not the
		// lowest total cost. First declared wins ties.
		if best < 0 || outcome.NetWorthChange.GreaterThan(bestChange) {
			best = i
			bestChange = outcome.NetWorthChange
		}

		comparison.Outcomes = append(comparison.Outcomes, outcome)
	}

	comparison.Best = results[best].Summary.Kind
	comparison.BreakEvenMonth = breakEvenMonth(buy.Records, rentInvest.Records)

	return comparison
}

// breakEvenMonth finds the first month where the cumulative buy cost drops
// to or below the cumulative rent cost, 0 if it never does within the
// horizon.
func breakEvenMonth(buy, rent []domain.MonthlyRecord) int {
	n := len(buy)
	if len(rent) < n {
		n = len(rent)
	}

	var cumBuy, cumRent decimal.Decimal
	for i := 0; i < n; i++ {
		cumBuy = cumBuy.Add(buy[i].HousingCost)
		cumRent = cumRent.Add(rent[i].HousingCost)
		if cumBuy.LessThanOrEqual(cumRent) {
			return buy[i].Month
		}
	}
	return 0
}
