package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/housecomp/housing-simulator/internal/domain"
	"github.com/housecomp/housing-simulator/pkg/money"
)

// payoffEpsilon absorbs floating-point drift when deciding a loan is paid
// off: balances at or below one cent terminate the loan.
var payoffEpsilon = decimal.NewFromFloat(0.01)

// Loan is the amortizing fixed-rate loan state machine. It accrues interest
// month by month until the outstanding balance falls to zero, after which
// every step is a no-op.
type Loan struct {
	system      domain.AmortizationSystem
	monthlyRate decimal.Decimal
	balance     decimal.Decimal

	// installment is the fixed PRICE installment; principalShare is the
	// fixed SAC principal portion. Neither is ever recomputed: extra
	// amortizations shorten the term, they do not reduce the payment.
	installment    decimal.Decimal
	principalShare decimal.Decimal

	paidOff     bool
	payoffMonth int
}

// LoanPayment is one month's installment split.
type LoanPayment struct {
	Installment decimal.Decimal
	Interest    decimal.Decimal
	Principal   decimal.Decimal
	Extra       decimal.Decimal
	Balance     decimal.Decimal
}

// PriceInstallment computes the constant annuity installment for a loan via
// the standard formula. A zero rate degenerates to principal / term.
func PriceInstallment(principal, monthlyRate decimal.Decimal, termMonths int) decimal.Decimal {
	term := decimal.NewFromInt(int64(termMonths))
	if monthlyRate.IsZero() {
		return principal.Div(term)
	}
	onePlus := decimal.NewFromInt(1).Add(monthlyRate)
	power := onePlus.Pow(term)
	// principal * rate * (1+r)^n / ((1+r)^n - 1)
	return principal.Mul(monthlyRate).Mul(power).
		Div(power.Sub(decimal.NewFromInt(1)))
}

// NewLoan builds a loan at the start of month 1.
func NewLoan(principal, monthlyRate decimal.Decimal, termMonths int, system domain.AmortizationSystem) (*Loan, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("loan principal must be positive, got %s", principal)
	}
	if termMonths <= 0 {
		return nil, fmt.Errorf("loan term must be positive, got %d months", termMonths)
	}

	loan := &Loan{
		system:      system,
		monthlyRate: monthlyRate,
		balance:     principal,
	}

	switch system {
	case domain.SystemPRICE:
		loan.installment = PriceInstallment(principal, monthlyRate, termMonths)
	case domain.SystemSAC:
		loan.principalShare = principal.Div(decimal.NewFromInt(int64(termMonths)))
	default:
		return nil, fmt.Errorf("unknown amortization system %q", system)
	}

	return loan, nil
}

// Step advances the loan one month. The scheduled principal portion is
// applied first, then the extra amortization; the extra is capped at the
// remaining balance so the loan never overpays. Once paid off, Step returns
// a zero payment and charges nothing.
func (l *Loan) Step(month int, extra decimal.Decimal) LoanPayment {
	if l.paidOff {
		return LoanPayment{}
	}

	interest := l.balance.Mul(l.monthlyRate)

	var scheduled decimal.Decimal
	switch l.system {
	case domain.SystemPRICE:
		scheduled = l.installment.Sub(interest)
	case domain.SystemSAC:
		scheduled = l.principalShare
	}
	// The final scheduled payment only covers what is left.
	scheduled = money.Min(scheduled, l.balance)

	l.balance = l.balance.Sub(scheduled)
	extra = money.Min(extra, l.balance)
	l.balance = l.balance.Sub(extra)

	if l.balance.LessThanOrEqual(payoffEpsilon) {
		l.balance = decimal.Zero
		l.paidOff = true
		l.payoffMonth = month
	}

	return LoanPayment{
		Installment: interest.Add(scheduled),
		Interest:    interest,
		Principal:   scheduled,
		Extra:       extra,
		Balance:     l.balance,
	}
}

// MaxExtra returns the largest extra amortization the next step can absorb:
// the balance left after the scheduled principal portion. Funding sources use
// it to avoid debiting money the loan cannot take.
func (l *Loan) MaxExtra() decimal.Decimal {
	if l.paidOff {
		return decimal.Zero
	}

	var scheduled decimal.Decimal
	switch l.system {
	case domain.SystemPRICE:
		scheduled = l.installment.Sub(l.balance.Mul(l.monthlyRate))
	case domain.SystemSAC:
		scheduled = l.principalShare
	}
	scheduled = money.Min(scheduled, l.balance)
	return l.balance.Sub(scheduled)
}

// Balance returns the outstanding balance.
func (l *Loan) Balance() decimal.Decimal {
	return l.balance
}

// PaidOff reports whether the loan has terminated.
func (l *Loan) PaidOff() bool {
	return l.paidOff
}

// PayoffMonth returns the month the loan terminated, 0 if still accruing.
func (l *Loan) PayoffMonth() int {
	return l.payoffMonth
}
