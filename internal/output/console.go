package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/housecomp/housing-simulator/internal/domain"
	"github.com/housecomp/housing-simulator/pkg/money"
	"github.com/housecomp/housing-simulator/pkg/monthgrid"
)

// ConsoleFormatter renders the comparison as a human-readable report.
// Verbose appends the full month-by-month ledger of each scenario.
type ConsoleFormatter struct {
	Verbose bool
}

func (ConsoleFormatter) Name() string { return "console" }

func (f ConsoleFormatter) Format(out *domain.SimulationOutput) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "HOUSING DECISION COMPARISON\n")
	fmt.Fprintf(buf, "===========================\n\n")
	fmt.Fprintf(buf, "Initial wealth committed: %s\n\n", money.FormatBRL(out.Comparison.InitialWealth))

	w := tabwriter.NewWriter(buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Scenario\tFinal wealth\tNet worth change\tROI\tTotal outflow\tAvg monthly outflow")
	for _, outcome := range out.Comparison.Outcomes {
		marker := ""
		if outcome.Kind == out.Comparison.Best {
			marker = " *"
		}
		fmt.Fprintf(w, "%s%s\t%s\t%s\t%s%%\t%s\t%s\n",
			outcome.Name, marker,
			money.FormatBRL(outcome.FinalWealth),
			money.FormatBRL(outcome.NetWorthChange),
			outcome.ROIPct.StringFixed(1),
			money.FormatBRL(outcome.TotalOutflow),
			money.FormatBRL(outcome.AverageMonthlyOutflow),
		)
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	fmt.Fprintf(buf, "\n* best scenario by net worth change\n")

	if out.Comparison.BreakEvenMonth > 0 {
		fmt.Fprintf(buf, "Buy vs rent break-even: month %d (%s)\n",
			out.Comparison.BreakEvenMonth, monthgrid.Span(out.Comparison.BreakEvenMonth))
	} else {
		fmt.Fprintf(buf, "Buy vs rent break-even: not reached within the horizon\n")
	}

	for _, result := range out.Results() {
		writeScenarioDetail(buf, result)
	}

	if f.Verbose {
		for _, result := range out.Results() {
			if err := writeLedger(buf, result); err != nil {
				return nil, err
			}
		}
	}

	return buf.Bytes(), nil
}

// writeLedger dumps the month-by-month ledger of one scenario.
func writeLedger(buf *bytes.Buffer, result *domain.ScenarioResult) error {
	fmt.Fprintf(buf, "\n=== %s ledger ===\n", result.Summary.Name)

	w := tabwriter.NewWriter(buf, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Month\tHousing cost\tInstallment\tRent\tContribution\tWithdrawal\tInvestments\tEquity\tWealth\t")
	for _, r := range result.Records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Month,
			money.FormatBRL(r.HousingCost),
			money.FormatBRL(r.Installment),
			money.FormatBRL(r.Rent),
			money.FormatBRL(r.Contribution),
			money.FormatBRL(r.Withdrawal),
			money.FormatBRL(r.InvestmentBalance),
			money.FormatBRL(r.Equity),
			money.FormatBRL(r.Wealth),
		)
	}
	return w.Flush()
}

func writeScenarioDetail(buf *bytes.Buffer, result *domain.ScenarioResult) {
	s := result.Summary
	fmt.Fprintf(buf, "\n--- %s ---\n", s.Name)

	if s.PayoffMonth > 0 {
		fmt.Fprintf(buf, "Loan paid off at month %d (%s); total interest %s\n",
			s.PayoffMonth, monthgrid.Span(s.PayoffMonth), money.FormatBRL(s.TotalInterestPaid))
	}
	if s.Kind == domain.ScenarioRentInvest {
		fmt.Fprintf(buf, "Total rent paid: %s\n", money.FormatBRL(s.TotalRentPaid))
	}
	if s.Purchase != nil {
		fmt.Fprintf(buf, "Outright purchase at month %d for %s (upfront costs %s, restricted savings %s, investments %s)\n",
			s.Purchase.Month,
			money.FormatBRL(s.Purchase.Price),
			money.FormatBRL(s.Purchase.UpfrontCosts),
			money.FormatBRL(s.Purchase.FromRestrictedSavings),
			money.FormatBRL(s.Purchase.FromInvestment))
	}
	if s.Kind == domain.ScenarioInvestThenBuy && s.Purchase == nil {
		fmt.Fprintf(buf, "Outright purchase not reached within the horizon\n")
	}

	usage := s.RestrictedSavings
	if usage.WithdrawalsGranted > 0 || usage.WithdrawalsBlocked > 0 {
		fmt.Fprintf(buf, "Restricted savings: %d withdrawals for %s, %d blocked for %s\n",
			usage.WithdrawalsGranted, money.FormatBRL(usage.AmountWithdrawn),
			usage.WithdrawalsBlocked, money.FormatBRL(usage.AmountBlocked))
	}
	if s.BurnMonths > 0 {
		fmt.Fprintf(buf, "Burn months (withdrawals above returns): %d\n", s.BurnMonths)
	}

	fmt.Fprintf(buf, "Final wealth: %s (equity %s, investments %s, restricted savings %s)\n",
		money.FormatBRL(s.FinalWealth),
		money.FormatBRL(s.FinalEquity),
		money.FormatBRL(s.FinalInvestmentBalance),
		money.FormatBRL(s.FinalRestrictedSavings))
}
