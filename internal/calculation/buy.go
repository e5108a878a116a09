package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/housecomp/housing-simulator/internal/domain"
	"github.com/housecomp/housing-simulator/pkg/money"
)

// loanMonthlyRate resolves the loan's monthly rate from whichever form the
// input declared. Validation guarantees at most one is set; absent rates
// mean zero.
func loanMonthlyRate(cfg domain.LoanConfig) decimal.Decimal {
	if cfg.MonthlyInterestPct != nil {
		return money.Fraction(*cfg.MonthlyInterestPct)
	}
	if cfg.AnnualInterestPct != nil {
		return AnnualToMonthly(*cfg.AnnualInterestPct)
	}
	return decimal.Zero
}

// runBuyScenario simulates buying now with a mortgage. States are
// {financing, paid_off}; reaching paid_off does not end the simulation, the
// horizon continues with a zero installment and full equity.
func (ce *SimulationEngine) runBuyScenario(in *domain.SimulationInput) (*domain.ScenarioResult, error) {
	loan, err := NewLoan(in.FinancedPrincipal(), loanMonthlyRate(in.Loan), in.Loan.TermMonths, in.Loan.System)
	if err != nil {
		return nil, fmt.Errorf("buy scenario: %w", err)
	}

	fgts := NewRestrictedSavings(in.RestrictedSavings)
	extras := ExpandEvents(in.ExtraAmortizations, in.HorizonMonths, in.Economy.InflationAnnualPct)
	loanBalance := func(int) decimal.Decimal { return loan.Balance() }

	summary := domain.ScenarioSummary{Kind: domain.ScenarioBuy, Name: "Buy now"}
	records := make([]domain.MonthlyRecord, 0, in.HorizonMonths)

	for month := 1; month <= in.HorizonMonths; month++ {
		fgts.Step()

		record := domain.MonthlyRecord{Month: month}

		var extra, cashExtra decimal.Decimal
		if !loan.PaidOff() {
			amounts := extras.AmountsAt(month, loanBalance)
			cashExtra = amounts[domain.SourceCash]
			extra = cashExtra

			if request := amounts[domain.SourceRestrictedSavings]; request.IsPositive() {
				// The debit is capped at what the loan can still absorb after
				// the scheduled principal and the cash extra, so no withdrawn
				// money evaporates between the account and the loan.
				headroom := money.Max(decimal.Zero, loan.MaxExtra().Sub(cashExtra))
				request = money.Min(request, headroom)

				if request.IsPositive() {
					res := fgts.Withdraw(request, month)
					if res.OK {
						extra = extra.Add(res.Amount)
					} else {
						// Blocked amortizations are recorded and do not reduce
						// the balance.
						record.BlockedAmortization = request
						record.BlockedReason = res.Reason
						ce.Logger.Debugf("month %d: extra amortization of %s blocked (%s)",
							month, request.StringFixed(2), res.Reason)
					}
				}
			}
		}

		pay := loan.Step(month, extra)
		if loan.Balance().LessThan(payoffEpsilon.Neg()) {
			return nil, fmt.Errorf("invariant violation: loan balance %s went negative at month %d",
				loan.Balance(), month)
		}

		// When the payoff caps the extra, attribute the cut to the cash
		// portion; the restricted-savings debit already happened in full.
		appliedCash := money.Min(cashExtra, pay.Extra)

		propertyValue := Inflate(in.Property.Value, month-1, in.Property.AppreciationAnnualPct)
		hoa := Inflate(in.Property.HOAMonthly, month-1, in.Economy.InflationAnnualPct)
		propertyTax := Inflate(in.Property.PropertyTaxMonthly, month-1, in.Economy.InflationAnnualPct)

		record.Installment = pay.Installment
		record.Interest = pay.Interest
		record.PrincipalPaid = pay.Principal
		record.ExtraAmortization = pay.Extra
		record.HOA = hoa
		record.PropertyTax = propertyTax
		record.HousingCost = pay.Installment.Add(appliedCash).Add(hoa).Add(propertyTax)
		if month == 1 {
			// Cash committed at purchase: down payment plus the one-time
			// transfer tax and deed fee.
			upfront := money.Percent(in.Property.Value, in.Property.UpfrontCostPct())
			record.HousingCost = record.HousingCost.Add(in.Loan.DownPayment).Add(upfront)
		}
		record.CashOutflow = record.HousingCost

		record.LoanBalance = loan.Balance()
		record.PropertyValue = propertyValue
		record.Equity = propertyValue.Sub(loan.Balance())
		record.RestrictedSavingsBalance = fgts.Balance()
		record.Wealth = record.Equity.Add(record.RestrictedSavingsBalance)
		record.LoanPaidOff = loan.PaidOff()

		summary.TotalOutflow = summary.TotalOutflow.Add(record.CashOutflow)
		summary.TotalInterestPaid = summary.TotalInterestPaid.Add(pay.Interest)

		records = append(records, record)
	}

	summary.PayoffMonth = loan.PayoffMonth()
	summary.RestrictedSavings = fgts.Usage()
	finalize(&summary, records)

	return &domain.ScenarioResult{Summary: summary, Records: records}, nil
}

// finalize fills the balance-derived summary fields from the last record.
func finalize(summary *domain.ScenarioSummary, records []domain.MonthlyRecord) {
	if len(records) == 0 {
		return
	}
	last := records[len(records)-1]
	summary.FinalEquity = last.Equity
	summary.FinalInvestmentBalance = last.InvestmentBalance
	summary.FinalRestrictedSavings = last.RestrictedSavingsBalance
	summary.FinalWealth = last.Wealth

	var ratioSum decimal.Decimal
	withdrawalMonths := 0
	for _, r := range records {
		if r.BurnMonth {
			summary.BurnMonths++
		}
		if r.Withdrawal.IsPositive() {
			withdrawalMonths++
			ratioSum = ratioSum.Add(r.SustainabilityRatio)
		}
		summary.TotalTaxPaid = summary.TotalTaxPaid.Add(r.TaxPaid)
		summary.TotalRentPaid = summary.TotalRentPaid.Add(r.Rent)
	}
	if withdrawalMonths > 0 {
		summary.AvgSustainability = ratioSum.Div(decimal.NewFromInt(int64(withdrawalMonths)))
	}
}
