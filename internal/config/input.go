package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/housecomp/housing-simulator/internal/domain"
)

// InputParser handles parsing of simulation input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a simulation input bundle from a YAML file and
// validates it. Validation failures are configuration errors: they surface
// immediately and the simulation does not start.
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.SimulationInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Validate(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// Validate enforces the configuration invariants the engine assumes.
func (ip *InputParser) Validate(in *domain.SimulationInput) error {
	if in.HorizonMonths <= 0 || in.HorizonMonths > 1200 {
		return fmt.Errorf("horizon_months must be between 1 and 1200, got %d", in.HorizonMonths)
	}
	if in.MonthlyIncome.IsNegative() {
		return fmt.Errorf("monthly_income cannot be negative")
	}

	if err := ip.validateProperty(&in.Property); err != nil {
		return fmt.Errorf("property validation failed: %w", err)
	}
	if err := ip.validateLoan(&in.Loan, in.Property.Value); err != nil {
		return fmt.Errorf("loan validation failed: %w", err)
	}
	if err := ip.validateRent(&in.Rent); err != nil {
		return fmt.Errorf("rent validation failed: %w", err)
	}
	if err := ip.validateInvestment(&in.Investment); err != nil {
		return fmt.Errorf("investment validation failed: %w", err)
	}
	if err := ip.validateRestrictedSavings(in.RestrictedSavings); err != nil {
		return fmt.Errorf("restricted_savings validation failed: %w", err)
	}

	for i, event := range in.ExtraAmortizations {
		if err := ip.validateEvent(&event); err != nil {
			return fmt.Errorf("extra_amortizations[%d] validation failed: %w", i, err)
		}
	}
	for i, event := range in.Contributions {
		if err := ip.validateEvent(&event); err != nil {
			return fmt.Errorf("contributions[%d] validation failed: %w", i, err)
		}
	}

	return nil
}

func (ip *InputParser) validateProperty(p *domain.PropertyConfig) error {
	if p.Value.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("value must be positive")
	}
	if p.HOAMonthly.IsNegative() || p.PropertyTaxMonthly.IsNegative() {
		return fmt.Errorf("hoa_monthly and property_tax_monthly cannot be negative")
	}
	if p.TransferTaxPct.IsNegative() || p.DeedFeePct.IsNegative() {
		return fmt.Errorf("transfer_tax_pct and deed_fee_pct cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateLoan(l *domain.LoanConfig, propertyValue decimal.Decimal) error {
	if l.DownPayment.IsNegative() {
		return fmt.Errorf("down_payment cannot be negative")
	}
	if l.DownPayment.GreaterThanOrEqual(propertyValue) {
		return fmt.Errorf("down_payment %s must be below the property value %s",
			l.DownPayment, propertyValue)
	}
	if l.TermMonths <= 0 {
		return fmt.Errorf("term_months must be positive")
	}
	if l.System != domain.SystemPRICE && l.System != domain.SystemSAC {
		return fmt.Errorf("system must be %q or %q, got %q", domain.SystemPRICE, domain.SystemSAC, l.System)
	}
	if (l.AnnualInterestPct == nil) == (l.MonthlyInterestPct == nil) {
		return fmt.Errorf("exactly one of annual_interest_pct or monthly_interest_pct must be set")
	}
	if l.AnnualInterestPct != nil && l.AnnualInterestPct.IsNegative() {
		return fmt.Errorf("annual_interest_pct cannot be negative")
	}
	if l.MonthlyInterestPct != nil && l.MonthlyInterestPct.IsNegative() {
		return fmt.Errorf("monthly_interest_pct cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateRent(r *domain.RentConfig) error {
	if (r.Monthly == nil) == (r.PercentOfProperty == nil) {
		return fmt.Errorf("exactly one of monthly or percent_of_property must be set")
	}
	if r.Monthly != nil && r.Monthly.IsNegative() {
		return fmt.Errorf("monthly cannot be negative")
	}
	if r.PercentOfProperty != nil &&
		(r.PercentOfProperty.IsNegative() || r.PercentOfProperty.GreaterThan(decimal.NewFromInt(100))) {
		return fmt.Errorf("percent_of_property must be between 0 and 100")
	}
	return nil
}

func (ip *InputParser) validateInvestment(inv *domain.InvestmentConfig) error {
	if inv.InitialBalance.IsNegative() {
		return fmt.Errorf("initial_balance cannot be negative")
	}
	if inv.MonthlyContribution.IsNegative() {
		return fmt.Errorf("monthly_contribution cannot be negative")
	}
	if inv.TaxRegime != domain.TaxMonthly && inv.TaxRegime != domain.TaxOnWithdrawal {
		return fmt.Errorf("tax_regime must be %q or %q, got %q",
			domain.TaxMonthly, domain.TaxOnWithdrawal, inv.TaxRegime)
	}
	if inv.TaxRatePct.IsNegative() || inv.TaxRatePct.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("tax_rate_pct must be between 0 and 100")
	}
	for i, band := range inv.Returns {
		if band.StartMonth < 1 {
			return fmt.Errorf("returns[%d].start_month must be at least 1", i)
		}
		if band.EndMonth != nil && *band.EndMonth < band.StartMonth {
			return fmt.Errorf("returns[%d].end_month %d precedes start_month %d",
				i, *band.EndMonth, band.StartMonth)
		}
	}
	return nil
}

func (ip *InputParser) validateRestrictedSavings(rs *domain.RestrictedSavingsConfig) error {
	if rs == nil {
		return nil
	}
	if rs.InitialBalance.IsNegative() || rs.MonthlyContribution.IsNegative() {
		return fmt.Errorf("balances and contributions cannot be negative")
	}
	if rs.MaxWithdrawalAtPurchase != nil && rs.MaxWithdrawalAtPurchase.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("max_withdrawal_at_purchase must be positive when set")
	}
	return nil
}

func (ip *InputParser) validateEvent(e *domain.RecurringEvent) error {
	if e.Month < 0 {
		return fmt.Errorf("month cannot be negative")
	}
	if e.ValueType != domain.ValueFixed && e.ValueType != domain.ValuePercentage {
		return fmt.Errorf("value_type must be %q or %q, got %q",
			domain.ValueFixed, domain.ValuePercentage, e.ValueType)
	}
	if e.Value.IsNegative() {
		return fmt.Errorf("value cannot be negative")
	}
	if e.ValueType == domain.ValuePercentage && e.Value.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("percentage value must be between 0 and 100")
	}
	if e.Occurrences != nil && e.EndMonth != nil {
		return fmt.Errorf("occurrences and end_month are mutually exclusive")
	}
	if e.Occurrences != nil && *e.Occurrences < 1 {
		return fmt.Errorf("occurrences must be at least 1 when set")
	}
	if e.IntervalMonths != nil && *e.IntervalMonths < 1 {
		return fmt.Errorf("interval_months must be at least 1 when set")
	}
	switch e.Source {
	case domain.SourceCash, domain.SourceRestrictedSavings, domain.SourceInvestment:
	default:
		return fmt.Errorf("unknown funding_source %q", e.Source)
	}
	if e.InflationAdjust && e.ValueType == domain.ValuePercentage {
		return fmt.Errorf("inflation_adjust only applies to fixed values")
	}
	return nil
}
