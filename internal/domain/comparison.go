package domain

import (
	"github.com/shopspring/decimal"
)

// ScenarioOutcome holds the cross-scenario metrics for one finished scenario.
type ScenarioOutcome struct {
	Kind                  ScenarioKind    `json:"kind"`
	Name                  string          `json:"name"`
	FinalWealth           decimal.Decimal `json:"final_wealth"`
	NetWorthChange        decimal.Decimal `json:"net_worth_change"`
	ROIPct                decimal.Decimal `json:"roi_pct"`
	TotalOutflow          decimal.Decimal `json:"total_outflow"`
	AverageMonthlyOutflow decimal.Decimal `json:"average_monthly_outflow"`
}

// ComparisonResult ranks the three finished scenarios. It is derived once
// from the finished ledgers and holds no independent lifecycle.
type ComparisonResult struct {
	// InitialWealth is the total cash committed at month 1, held constant
	// across scenarios so they are comparable.
	InitialWealth decimal.Decimal   `json:"initial_wealth"`
	Outcomes      []ScenarioOutcome `json:"outcomes"`
	// Best is the scenario with the highest net-worth change. The winner is
	// the argmax of net-worth change, never the argmin of cost.
	Best ScenarioKind `json:"best"`
	// BreakEvenMonth is the first month where cumulative buy outflow drops
	// to or below cumulative rent outflow, 0 if it never does.
	BreakEvenMonth int `json:"break_even_month"`
}

// Outcome returns the outcome for a given scenario kind, or nil.
func (c *ComparisonResult) Outcome(kind ScenarioKind) *ScenarioOutcome {
	for i := range c.Outcomes {
		if c.Outcomes[i].Kind == kind {
			return &c.Outcomes[i]
		}
	}
	return nil
}

// SimulationOutput bundles everything one engine run produces.
type SimulationOutput struct {
	Buy           *ScenarioResult   `json:"buy"`
	RentInvest    *ScenarioResult   `json:"rent_invest"`
	InvestThenBuy *ScenarioResult   `json:"invest_then_buy"`
	Comparison    *ComparisonResult `json:"comparison"`
}

// Results returns the three scenario results in presentation order.
func (o *SimulationOutput) Results() []*ScenarioResult {
	return []*ScenarioResult{o.Buy, o.RentInvest, o.InvestThenBuy}
}
