package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/housecomp/housing-simulator/internal/domain"
)

// CSVFormatter exports the month-by-month ledgers of all three scenarios,
// one row per scenario-month.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(out *domain.SimulationOutput) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"scenario", "month",
		"installment", "interest", "principal", "extra_amortization",
		"blocked_amortization", "blocked_reason",
		"rent", "hoa", "property_tax", "housing_cost", "cash_outflow",
		"contribution", "withdrawal", "withdrawal_shortfall",
		"gross_return", "tax_paid", "burn_month",
		"loan_balance", "property_value", "equity",
		"investment_balance", "restricted_savings_balance", "wealth",
		"loan_paid_off", "purchased",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, result := range out.Results() {
		for _, r := range result.Records {
			row := []string{
				string(result.Summary.Kind),
				strconv.Itoa(r.Month),
				r.Installment.StringFixed(2),
				r.Interest.StringFixed(2),
				r.PrincipalPaid.StringFixed(2),
				r.ExtraAmortization.StringFixed(2),
				r.BlockedAmortization.StringFixed(2),
				string(r.BlockedReason),
				r.Rent.StringFixed(2),
				r.HOA.StringFixed(2),
				r.PropertyTax.StringFixed(2),
				r.HousingCost.StringFixed(2),
				r.CashOutflow.StringFixed(2),
				r.Contribution.StringFixed(2),
				r.Withdrawal.StringFixed(2),
				r.WithdrawalShortfall.StringFixed(2),
				r.GrossReturn.StringFixed(2),
				r.TaxPaid.StringFixed(2),
				strconv.FormatBool(r.BurnMonth),
				r.LoanBalance.StringFixed(2),
				r.PropertyValue.StringFixed(2),
				r.Equity.StringFixed(2),
				r.InvestmentBalance.StringFixed(2),
				r.RestrictedSavingsBalance.StringFixed(2),
				r.Wealth.StringFixed(2),
				strconv.FormatBool(r.LoanPaidOff),
				strconv.FormatBool(r.Purchased),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
