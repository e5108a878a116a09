package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/housecomp/housing-simulator/internal/domain"
	"github.com/housecomp/housing-simulator/pkg/money"
)

// Investment is the investment account: balance evolution under piecewise
// annual returns, one of two mutually exclusive tax regimes, and a
// withdrawal waterfall for housing costs.
type Investment struct {
	balance decimal.Decimal
	// costBasis tracks principal not yet taxed; only meaningful under the
	// on_withdrawal regime.
	costBasis decimal.Decimal
	returns   domain.RateSchedule
	regime    domain.TaxRegime
	taxRate   decimal.Decimal
}

// InvestmentMonth is the flow produced by one monthly step.
type InvestmentMonth struct {
	Contribution decimal.Decimal
	Withdrawal   decimal.Decimal
	// Shortfall is the housing cost left uncovered after income and the
	// account balance are exhausted. Recorded, not silently dropped.
	Shortfall   decimal.Decimal
	GrossReturn decimal.Decimal
	Tax         decimal.Decimal
	NetReturn   decimal.Decimal
	// SustainabilityRatio is grossReturn / withdrawal for months with a
	// non-zero withdrawal.
	SustainabilityRatio decimal.Decimal
	// Burn flags a month where the withdrawal exceeded the gross return,
	// independent of whether the balance could absorb it.
	Burn bool
}

// NewInvestment builds the account from its config.
func NewInvestment(cfg domain.InvestmentConfig) *Investment {
	return &Investment{
		balance:   cfg.InitialBalance,
		costBasis: cfg.InitialBalance,
		returns:   cfg.Returns,
		regime:    cfg.TaxRegime,
		taxRate:   money.Fraction(cfg.TaxRatePct),
	}
}

// Deposit adds principal outside the monthly cycle (e.g. the redirected down
// payment at simulation start).
func (inv *Investment) Deposit(amount decimal.Decimal) {
	inv.balance = inv.balance.Add(amount)
	inv.costBasis = inv.costBasis.Add(amount)
}

// Step advances the account one month, in order: contribution, housing-cost
// withdrawal via the income waterfall, gross return on the remaining
// balance, then tax per regime.
func (inv *Investment) Step(month int, contribution, housingCost, income decimal.Decimal) InvestmentMonth {
	out := InvestmentMonth{Contribution: contribution}

	if contribution.IsPositive() {
		inv.balance = inv.balance.Add(contribution)
		inv.costBasis = inv.costBasis.Add(contribution)
	}

	// Waterfall: external income covers the cost first; only the remainder
	// is withdrawn. The debit is grossed up so the cost is covered net of the
	// realized tax, and both leave the balance.
	need := housingCost.Sub(income)
	if need.IsPositive() {
		net, tax := inv.withdrawNet(need)
		out.Withdrawal = net.Add(tax)
		out.Shortfall = need.Sub(net)
		out.Tax = out.Tax.Add(tax)
	}

	rate := MonthlyRateFor(inv.returns, month)
	out.GrossReturn = inv.balance.Mul(rate)
	out.NetReturn = out.GrossReturn

	if inv.regime == domain.TaxMonthly && out.GrossReturn.IsPositive() {
		// Tax is charged on the month's positive gross return; only the net
		// return compounds. Negative returns are never taxed.
		monthlyTax := out.GrossReturn.Mul(inv.taxRate)
		out.Tax = out.Tax.Add(monthlyTax)
		out.NetReturn = out.GrossReturn.Sub(monthlyTax)
	}
	inv.balance = inv.balance.Add(out.NetReturn)

	if out.Withdrawal.IsPositive() {
		out.SustainabilityRatio = safeRatio(out.GrossReturn, out.Withdrawal)
		out.Burn = out.Withdrawal.GreaterThan(out.GrossReturn)
	}

	return out
}

// WithdrawNow delivers an amount in net proceeds immediately (the
// outright-purchase liquidation). The balance is debited by the grossed-up
// amount, capped at what it holds; the net granted and the tax realized are
// returned separately.
func (inv *Investment) WithdrawNow(amount decimal.Decimal) (granted, tax decimal.Decimal) {
	return inv.withdrawNet(amount)
}

// withdrawNet debits the account so that need arrives in net proceeds after
// the realized-gain tax. The debit is grossed up by the tax share and capped
// at the balance; proceeds and tax both leave the account, so a withdrawal
// never releases more money than the balance held.
func (inv *Investment) withdrawNet(need decimal.Decimal) (net, tax decimal.Decimal) {
	if !need.IsPositive() || !inv.balance.IsPositive() {
		return decimal.Zero, decimal.Zero
	}

	one := decimal.NewFromInt(1)
	gross := need
	if inv.regime == domain.TaxOnWithdrawal {
		unrealized := inv.balance.Sub(inv.costBasis)
		if unrealized.IsPositive() {
			// tax(g) = g/balance * unrealized * rate, so delivering need net
			// requires g = need / (1 - unrealized/balance * rate).
			taxShare := unrealized.Div(inv.balance).Mul(inv.taxRate)
			if taxShare.LessThan(one) {
				gross = need.Div(one.Sub(taxShare))
			} else {
				gross = inv.balance
			}
		}
	}
	gross = money.Min(gross, inv.balance)

	tax = inv.realize(gross)
	inv.balance = inv.balance.Sub(gross)
	return gross.Sub(tax), tax
}

// realize computes the tax on the realized share of the unrealized gain for a
// gross debit: realized gain = (gross / balance before) * unrealized gain.
// The cost basis drops by the principal fraction of the debit.
func (inv *Investment) realize(gross decimal.Decimal) decimal.Decimal {
	if inv.regime != domain.TaxOnWithdrawal || !gross.IsPositive() || inv.balance.IsZero() {
		return decimal.Zero
	}

	unrealized := inv.balance.Sub(inv.costBasis)
	var tax decimal.Decimal
	if unrealized.IsPositive() {
		realizedGain := gross.Div(inv.balance).Mul(unrealized)
		tax = realizedGain.Mul(inv.taxRate)
		inv.costBasis = inv.costBasis.Sub(gross.Sub(realizedGain))
	} else {
		inv.costBasis = inv.costBasis.Sub(gross)
	}
	if inv.costBasis.IsNegative() {
		inv.costBasis = decimal.Zero
	}
	return tax
}

// NetLiquidationValue is the cash a full liquidation would deliver right now,
// after the realized-gain tax on everything still unrealized.
func (inv *Investment) NetLiquidationValue() decimal.Decimal {
	if inv.regime != domain.TaxOnWithdrawal {
		return inv.balance
	}
	unrealized := inv.balance.Sub(inv.costBasis)
	if !unrealized.IsPositive() {
		return inv.balance
	}
	return inv.balance.Sub(unrealized.Mul(inv.taxRate))
}

// Balance returns the current balance.
func (inv *Investment) Balance() decimal.Decimal {
	return inv.balance
}

// CostBasis returns the untaxed principal tracked under on_withdrawal.
func (inv *Investment) CostBasis() decimal.Decimal {
	return inv.costBasis
}

func safeRatio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}
