package domain

import (
	"github.com/shopspring/decimal"
)

// ScenarioKind identifies one of the three competing strategies.
type ScenarioKind string

const (
	ScenarioBuy           ScenarioKind = "buy"
	ScenarioRentInvest    ScenarioKind = "rent_invest"
	ScenarioInvestThenBuy ScenarioKind = "invest_then_buy"
)

// BlockReason explains a denied restricted-savings withdrawal.
type BlockReason string

const (
	BlockCooldownActive      BlockReason = "cooldown_active"
	BlockInsufficientBalance BlockReason = "insufficient_balance"
)

// MonthlyRecord is the append-only, one-per-month snapshot of a scenario.
// Records are produced by the simulators and never mutated after the month
// they belong to is finalized.
type MonthlyRecord struct {
	Month int `json:"month"`

	// Cash flow
	Installment         decimal.Decimal `json:"installment"`
	Interest            decimal.Decimal `json:"interest"`
	PrincipalPaid       decimal.Decimal `json:"principal_paid"`
	ExtraAmortization   decimal.Decimal `json:"extra_amortization"`
	BlockedAmortization decimal.Decimal `json:"blocked_amortization"`
	BlockedReason       BlockReason     `json:"blocked_reason,omitempty"`
	Rent                decimal.Decimal `json:"rent"`
	HOA                 decimal.Decimal `json:"hoa"`
	PropertyTax         decimal.Decimal `json:"property_tax"`
	HousingCost         decimal.Decimal `json:"housing_cost"`
	CashOutflow         decimal.Decimal `json:"cash_outflow"`

	// Investment flow
	Contribution        decimal.Decimal `json:"contribution"`
	Withdrawal          decimal.Decimal `json:"withdrawal"`
	WithdrawalShortfall decimal.Decimal `json:"withdrawal_shortfall"`
	GrossReturn         decimal.Decimal `json:"gross_return"`
	TaxPaid             decimal.Decimal `json:"tax_paid"`
	SustainabilityRatio decimal.Decimal `json:"sustainability_ratio"`
	BurnMonth           bool            `json:"burn_month"`

	// Balances at end of month
	LoanBalance              decimal.Decimal `json:"loan_balance"`
	PropertyValue            decimal.Decimal `json:"property_value"`
	Equity                   decimal.Decimal `json:"equity"`
	InvestmentBalance        decimal.Decimal `json:"investment_balance"`
	CostBasis                decimal.Decimal `json:"cost_basis"`
	RestrictedSavingsBalance decimal.Decimal `json:"restricted_savings_balance"`
	Wealth                   decimal.Decimal `json:"wealth"`

	// Milestones
	LoanPaidOff bool `json:"loan_paid_off"`
	Purchased   bool `json:"purchased"`
	// EstimatedMonthsToPurchase is a linear extrapolation emitted while the
	// InvestThenBuy scenario is still accumulating. Informational only.
	EstimatedMonthsToPurchase *int `json:"estimated_months_to_purchase,omitempty"`
}

// PurchaseBreakdown records how an outright purchase was funded.
type PurchaseBreakdown struct {
	Month                 int             `json:"month"`
	Price                 decimal.Decimal `json:"price"`
	UpfrontCosts          decimal.Decimal `json:"upfront_costs"`
	FromRestrictedSavings decimal.Decimal `json:"from_restricted_savings"`
	FromInvestment        decimal.Decimal `json:"from_investment"`
	TaxOnLiquidation      decimal.Decimal `json:"tax_on_liquidation"`
}

// RestrictedSavingsUsage summarizes withdrawal activity against the
// FGTS-like account over a whole scenario.
type RestrictedSavingsUsage struct {
	WithdrawalsGranted int             `json:"withdrawals_granted"`
	AmountWithdrawn    decimal.Decimal `json:"amount_withdrawn"`
	WithdrawalsBlocked int             `json:"withdrawals_blocked"`
	AmountBlocked      decimal.Decimal `json:"amount_blocked"`
}

// ScenarioSummary aggregates a finished scenario's ledger into headline
// totals.
type ScenarioSummary struct {
	Kind ScenarioKind `json:"kind"`
	Name string       `json:"name"`

	TotalOutflow           decimal.Decimal `json:"total_outflow"`
	TotalInterestPaid      decimal.Decimal `json:"total_interest_paid"`
	TotalRentPaid          decimal.Decimal `json:"total_rent_paid"`
	TotalTaxPaid           decimal.Decimal `json:"total_tax_paid"`
	FinalEquity            decimal.Decimal `json:"final_equity"`
	FinalInvestmentBalance decimal.Decimal `json:"final_investment_balance"`
	FinalRestrictedSavings decimal.Decimal `json:"final_restricted_savings"`
	FinalWealth            decimal.Decimal `json:"final_wealth"`

	// PayoffMonth is the month the loan reached zero, 0 if never.
	PayoffMonth int `json:"payoff_month"`
	// BurnMonths counts months where withdrawals exceeded gross returns.
	BurnMonths int `json:"burn_months"`
	// AvgSustainability is the mean return/withdrawal ratio over months with
	// a non-zero withdrawal.
	AvgSustainability decimal.Decimal `json:"avg_sustainability"`

	Purchase          *PurchaseBreakdown     `json:"purchase,omitempty"`
	RestrictedSavings RestrictedSavingsUsage `json:"restricted_savings"`
}

// ScenarioResult is one scenario's complete output: the month-indexed ledger
// plus its summary.
type ScenarioResult struct {
	Summary ScenarioSummary `json:"summary"`
	Records []MonthlyRecord `json:"records"`
}

// FinalRecord returns the last month's record, or nil for an empty ledger.
func (r *ScenarioResult) FinalRecord() *MonthlyRecord {
	if len(r.Records) == 0 {
		return nil
	}
	return &r.Records[len(r.Records)-1]
}
