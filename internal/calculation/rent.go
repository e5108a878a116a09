package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/housecomp/housing-simulator/internal/domain"
	"github.com/housecomp/housing-simulator/pkg/money"
)

// resolveContribution sums the month's scheduled investment contributions on
// top of the base contribution, routing restricted-savings-funded events
// through the withdrawal gate.
func resolveContribution(base decimal.Decimal, schedule *EventSchedule, month int,
	read BalanceReader, fgts *RestrictedSavings) (contribution, blocked decimal.Decimal, reason domain.BlockReason) {

	contribution = base
	amounts := schedule.AmountsAt(month, read)
	for source, amount := range amounts {
		if !amount.IsPositive() {
			continue
		}
		if source == domain.SourceRestrictedSavings {
			res := fgts.Withdraw(amount, month)
			if res.OK {
				contribution = contribution.Add(res.Amount)
			} else {
				blocked = blocked.Add(amount)
				reason = res.Reason
			}
			continue
		}
		contribution = contribution.Add(amount)
	}
	return contribution, blocked, reason
}

// runRentInvestScenario simulates renting for the whole horizon while
// investing. Renting never completes, so there is no terminal transition.
func (ce *SimulationEngine) runRentInvestScenario(in *domain.SimulationInput) (*domain.ScenarioResult, error) {
	inv := NewInvestment(in.Investment)
	// The would-be down payment stays invested.
	inv.Deposit(in.Loan.DownPayment)

	fgts := NewRestrictedSavings(in.RestrictedSavings)
	contribs := ExpandEvents(in.Contributions, in.HorizonMonths, in.Economy.InflationAnnualPct)
	invBalance := func(int) decimal.Decimal { return inv.Balance() }

	summary := domain.ScenarioSummary{Kind: domain.ScenarioRentInvest, Name: "Rent and invest"}
	records := make([]domain.MonthlyRecord, 0, in.HorizonMonths)

	for month := 1; month <= in.HorizonMonths; month++ {
		fgts.Step()

		propertyValue := Inflate(in.Property.Value, month-1, in.Property.AppreciationAnnualPct)
		rent := rentAt(in, propertyValue, month)
		hoa := Inflate(in.Property.HOAMonthly, month-1, in.Economy.InflationAnnualPct)
		propertyTax := Inflate(in.Property.PropertyTaxMonthly, month-1, in.Economy.InflationAnnualPct)
		housingCost := rent.Add(hoa).Add(propertyTax)

		contribution, blocked, reason := resolveContribution(
			in.Investment.MonthlyContribution, contribs, month, invBalance, fgts)

		flow := inv.Step(month, contribution, housingCost, in.MonthlyIncome)

		record := domain.MonthlyRecord{
			Month:                    month,
			Rent:                     rent,
			HOA:                      hoa,
			PropertyTax:              propertyTax,
			HousingCost:              housingCost,
			CashOutflow:              housingCost.Add(contribution),
			Contribution:             flow.Contribution,
			Withdrawal:               flow.Withdrawal,
			WithdrawalShortfall:      flow.Shortfall,
			GrossReturn:              flow.GrossReturn,
			TaxPaid:                  flow.Tax,
			SustainabilityRatio:      flow.SustainabilityRatio,
			BurnMonth:                flow.Burn,
			BlockedAmortization:      blocked,
			BlockedReason:            reason,
			InvestmentBalance:        inv.Balance(),
			CostBasis:                inv.CostBasis(),
			RestrictedSavingsBalance: fgts.Balance(),
		}
		// A renter's wealth is the invested balance; there is no property
		// equity.
		record.Wealth = record.InvestmentBalance.Add(record.RestrictedSavingsBalance)

		if flow.Shortfall.IsPositive() {
			ce.Logger.Debugf("month %d: housing cost shortfall of %s not covered by income or investments",
				month, flow.Shortfall.StringFixed(2))
		}

		summary.TotalOutflow = summary.TotalOutflow.Add(record.CashOutflow)
		records = append(records, record)
	}

	summary.RestrictedSavings = fgts.Usage()
	finalize(&summary, records)

	return &domain.ScenarioResult{Summary: summary, Records: records}, nil
}

// rentAt resolves the month's rent: a fixed value inflated by the rent
// inflation rate, or a percentage of the current property value.
func rentAt(in *domain.SimulationInput, propertyValue decimal.Decimal, month int) decimal.Decimal {
	if in.Rent.PercentOfProperty != nil {
		return money.Percent(propertyValue, *in.Rent.PercentOfProperty)
	}
	if in.Rent.Monthly != nil {
		return Inflate(*in.Rent.Monthly, month-1, in.Economy.RentInflation())
	}
	return decimal.Zero
}
