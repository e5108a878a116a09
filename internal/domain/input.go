package domain

import (
	"github.com/shopspring/decimal"
)

// AmortizationSystem selects how the loan principal is repaid.
type AmortizationSystem string

const (
	// SystemPRICE is the constant-installment (annuity) system.
	SystemPRICE AmortizationSystem = "price"
	// SystemSAC is the constant-amortization system; the principal portion is
	// fixed and the installment declines over time.
	SystemSAC AmortizationSystem = "sac"
)

// TaxRegime selects how investment returns are taxed.
type TaxRegime string

const (
	// TaxMonthly charges tax on each month's positive gross return; only the
	// net return compounds.
	TaxMonthly TaxRegime = "monthly"
	// TaxOnWithdrawal lets gains accumulate untaxed; tax on the realized gain
	// is charged proportionally when money leaves the account.
	TaxOnWithdrawal TaxRegime = "on_withdrawal"
)

// FundingSource identifies which pool of money a cash event draws from.
type FundingSource string

const (
	SourceCash              FundingSource = "cash"
	SourceRestrictedSavings FundingSource = "restricted_savings"
	SourceInvestment        FundingSource = "investment"
)

// SimulationInput is the immutable parameter bundle for one simulation
// request. It is loaded once from YAML, validated, and then shared read-only
// by the three scenario simulations.
type SimulationInput struct {
	// HorizonMonths is the number of months to simulate, 1-indexed.
	HorizonMonths int `yaml:"horizon_months"`

	// MonthlyIncome is external income available each month to cover housing
	// costs before the investment account is touched.
	MonthlyIncome decimal.Decimal `yaml:"monthly_income"`

	Property          PropertyConfig           `yaml:"property"`
	Loan              LoanConfig               `yaml:"loan"`
	Rent              RentConfig               `yaml:"rent"`
	Investment        InvestmentConfig         `yaml:"investment"`
	RestrictedSavings *RestrictedSavingsConfig `yaml:"restricted_savings"`
	Economy           EconomyConfig            `yaml:"economy"`

	// ExtraAmortizations are recurring extra principal payments against the
	// financed loan (Buy scenario).
	ExtraAmortizations []RecurringEvent `yaml:"extra_amortizations"`
	// Contributions are recurring deposits into the investment account
	// (RentInvest and InvestThenBuy scenarios), on top of the base monthly
	// contribution.
	Contributions []RecurringEvent `yaml:"contributions"`
}

// PropertyConfig describes the property under consideration.
type PropertyConfig struct {
	Value                 decimal.Decimal `yaml:"value"`
	HOAMonthly            decimal.Decimal `yaml:"hoa_monthly"`
	PropertyTaxMonthly    decimal.Decimal `yaml:"property_tax_monthly"`
	AppreciationAnnualPct decimal.Decimal `yaml:"appreciation_annual_pct"`
	// TransferTaxPct and DeedFeePct are one-time purchase costs, each a
	// percentage of the property value at purchase time.
	TransferTaxPct decimal.Decimal `yaml:"transfer_tax_pct"`
	DeedFeePct     decimal.Decimal `yaml:"deed_fee_pct"`
}

// LoanConfig describes the mortgage for the Buy scenario. Exactly one of
// AnnualInterestPct or MonthlyInterestPct must be set.
type LoanConfig struct {
	DownPayment        decimal.Decimal    `yaml:"down_payment"`
	TermMonths         int                `yaml:"term_months"`
	AnnualInterestPct  *decimal.Decimal   `yaml:"annual_interest_pct"`
	MonthlyInterestPct *decimal.Decimal   `yaml:"monthly_interest_pct"`
	System             AmortizationSystem `yaml:"system"`
}

// RentConfig describes rent for the RentInvest scenario. Exactly one of
// Monthly or PercentOfProperty must be set.
type RentConfig struct {
	// Monthly is a fixed rent, inflated by the rent inflation rate.
	Monthly *decimal.Decimal `yaml:"monthly"`
	// PercentOfProperty computes rent as a percentage of the current
	// (appreciated) property value.
	PercentOfProperty *decimal.Decimal `yaml:"percent_of_property"`
}

// InvestmentConfig describes the investment account shared by the RentInvest
// and InvestThenBuy scenarios.
type InvestmentConfig struct {
	InitialBalance      decimal.Decimal `yaml:"initial_balance"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution"`
	Returns             RateSchedule    `yaml:"returns"`
	TaxRegime           TaxRegime       `yaml:"tax_regime"`
	TaxRatePct          decimal.Decimal `yaml:"tax_rate_pct"`
}

// RestrictedSavingsConfig describes the FGTS-like account. A nil config means
// the account does not exist for this simulation.
type RestrictedSavingsConfig struct {
	InitialBalance      decimal.Decimal `yaml:"initial_balance"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution"`
	AnnualYieldPct      decimal.Decimal `yaml:"annual_yield_pct"`
	// UseAtPurchase allows the balance to be drained toward the purchase in
	// the InvestThenBuy scenario, subject to the withdrawal cooldown.
	UseAtPurchase bool `yaml:"use_at_purchase"`
	// MaxWithdrawalAtPurchase caps the purchase-time withdrawal request
	// before the all-or-nothing check runs. Nil means no cap.
	MaxWithdrawalAtPurchase *decimal.Decimal `yaml:"max_withdrawal_at_purchase"`
}

// EconomyConfig carries economy-wide drift rates. Absent rates mean no drift.
type EconomyConfig struct {
	// InflationAnnualPct adjusts recurring costs (HOA, property tax) and
	// inflation-adjusted cash events.
	InflationAnnualPct decimal.Decimal `yaml:"inflation_annual_pct"`
	// RentInflationAnnualPct adjusts fixed rent. Nil falls back to the
	// general inflation rate.
	RentInflationAnnualPct *decimal.Decimal `yaml:"rent_inflation_annual_pct"`
}

// RentInflation returns the annual rate used to inflate fixed rent.
func (e EconomyConfig) RentInflation() decimal.Decimal {
	if e.RentInflationAnnualPct != nil {
		return *e.RentInflationAnnualPct
	}
	return e.InflationAnnualPct
}

// FinancedPrincipal returns the amount financed by the loan.
func (in *SimulationInput) FinancedPrincipal() decimal.Decimal {
	return in.Property.Value.Sub(in.Loan.DownPayment)
}

// UpfrontCostPct returns the combined percentage of the property value due as
// one-time purchase costs.
func (p PropertyConfig) UpfrontCostPct() decimal.Decimal {
	return p.TransferTaxPct.Add(p.DeedFeePct)
}
