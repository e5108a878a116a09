package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/housecomp/housing-simulator/internal/domain"
	"github.com/housecomp/housing-simulator/pkg/money"
)

// estimateWindowMonths is the trailing window used for the linear
// months-to-purchase extrapolation.
const estimateWindowMonths = 12

// runInvestThenBuyScenario simulates investing until the portfolio can buy
// the property outright. States are {accumulating, purchased} with a one-way
// transition; after the purchase the scenario behaves like a fully paid Buy.
func (ce *SimulationEngine) runInvestThenBuyScenario(in *domain.SimulationInput) (*domain.ScenarioResult, error) {
	inv := NewInvestment(in.Investment)
	inv.Deposit(in.Loan.DownPayment)

	fgts := NewRestrictedSavings(in.RestrictedSavings)
	contribs := ExpandEvents(in.Contributions, in.HorizonMonths, in.Economy.InflationAnnualPct)
	invBalance := func(int) decimal.Decimal { return inv.Balance() }

	summary := domain.ScenarioSummary{Kind: domain.ScenarioInvestThenBuy, Name: "Invest then buy"}
	records := make([]domain.MonthlyRecord, 0, in.HorizonMonths)

	purchased := false
	var purchase *domain.PurchaseBreakdown

	// balanceHistory holds the end-of-month net liquidation values seen
	// while accumulating, for the trailing-window estimate.
	balanceHistory := make([]decimal.Decimal, 0, in.HorizonMonths)

	for month := 1; month <= in.HorizonMonths; month++ {
		fgts.Step()

		propertyValue := Inflate(in.Property.Value, month-1, in.Property.AppreciationAnnualPct)
		record := domain.MonthlyRecord{Month: month, PropertyValue: propertyValue}

		if !purchased {
			contribution, blocked, reason := resolveContribution(
				in.Investment.MonthlyContribution, contribs, month, invBalance, fgts)
			record.BlockedAmortization = blocked
			record.BlockedReason = reason

			flow := inv.Step(month, contribution, decimal.Zero, decimal.Zero)
			record.Contribution = flow.Contribution
			record.GrossReturn = flow.GrossReturn
			record.TaxPaid = flow.Tax
			record.CashOutflow = contribution

			upfront := money.Percent(propertyValue, in.Property.UpfrontCostPct())
			target := propertyValue.Add(upfront)

			// The trigger is the net liquidation value, not the raw balance:
			// the purchase must survive the tax realized on liquidation.
			netValue := inv.NetLiquidationValue()

			if netValue.GreaterThanOrEqual(target) {
				purchased = true

				var fgtsUsed decimal.Decimal
				if in.RestrictedSavings != nil && in.RestrictedSavings.UseAtPurchase {
					res := fgts.WithdrawForPurchase(target, in.RestrictedSavings.MaxWithdrawalAtPurchase, month)
					if res.OK {
						fgtsUsed = res.Amount
					}
				}

				invDebit, liquidationTax := inv.WithdrawNow(target.Sub(fgtsUsed))
				record.TaxPaid = record.TaxPaid.Add(liquidationTax)
				record.Withdrawal = invDebit.Add(liquidationTax)

				purchase = &domain.PurchaseBreakdown{
					Month:                 month,
					Price:                 propertyValue,
					UpfrontCosts:          upfront,
					FromRestrictedSavings: fgtsUsed,
					FromInvestment:        invDebit,
					TaxOnLiquidation:      liquidationTax,
				}
				ce.Logger.Infof("month %d: outright purchase for %s (upfront costs %s, restricted savings %s)",
					month, propertyValue.StringFixed(2), upfront.StringFixed(2), fgtsUsed.StringFixed(2))
			} else {
				balanceHistory = append(balanceHistory, netValue)
				if est, ok := estimateMonthsToPurchase(target, netValue, balanceHistory); ok {
					record.EstimatedMonthsToPurchase = &est
				}
			}
		} else {
			// Owner costs continue for the rest of the horizon; the loan-free
			// purchase means a zero installment and full equity. Contributions
			// stop, matching a paid-off purchase; the residual balance keeps
			// compounding.
			flow := inv.Step(month, decimal.Zero, decimal.Zero, decimal.Zero)
			record.GrossReturn = flow.GrossReturn
			record.TaxPaid = flow.Tax

			hoa := Inflate(in.Property.HOAMonthly, month-1, in.Economy.InflationAnnualPct)
			propertyTax := Inflate(in.Property.PropertyTaxMonthly, month-1, in.Economy.InflationAnnualPct)
			record.HOA = hoa
			record.PropertyTax = propertyTax
			record.HousingCost = hoa.Add(propertyTax)
			record.CashOutflow = record.HousingCost
		}

		if purchased {
			record.Equity = propertyValue
		}
		record.Purchased = purchased
		record.InvestmentBalance = inv.Balance()
		record.CostBasis = inv.CostBasis()
		record.RestrictedSavingsBalance = fgts.Balance()
		record.Wealth = record.Equity.Add(record.InvestmentBalance).Add(record.RestrictedSavingsBalance)

		summary.TotalOutflow = summary.TotalOutflow.Add(record.CashOutflow)
		records = append(records, record)
	}

	summary.Purchase = purchase
	summary.RestrictedSavings = fgts.Usage()
	finalize(&summary, records)

	return &domain.ScenarioResult{Summary: summary, Records: records}, nil
}

// estimateMonthsToPurchase extrapolates how many months of average net
// accumulation are still needed: shortfall / trailing average balance growth.
// The estimate feeds informational milestone fields only and never affects
// the simulation itself.
func estimateMonthsToPurchase(target, balance decimal.Decimal, history []decimal.Decimal) (int, bool) {
	n := len(history) - 1
	if n <= 0 {
		return 0, false
	}
	if n > estimateWindowMonths {
		n = estimateWindowMonths
	}

	growth := balance.Sub(history[len(history)-1-n])
	if !growth.IsPositive() {
		return 0, false
	}
	avg := growth.Div(decimal.NewFromInt(int64(n)))

	shortfall := target.Sub(balance)
	months := shortfall.Div(avg).Ceil().IntPart()
	if months < 1 {
		months = 1
	}
	return int(months), true
}
