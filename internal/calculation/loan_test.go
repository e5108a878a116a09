package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/housecomp/housing-simulator/internal/domain"
)

func TestPriceInstallmentFormula(t *testing.T) {
	// 100000 at 1% a month over 120 months.
	installment := PriceInstallment(decimal.NewFromInt(100000), decimal.NewFromFloat(0.01), 120)
	got, _ := installment.Float64()
	assert.InDelta(t, 1434.71, got, 0.01)
}

func TestPriceInstallmentZeroRate(t *testing.T) {
	installment := PriceInstallment(decimal.NewFromInt(120000), decimal.Zero, 120)
	assert.True(t, installment.Equal(decimal.NewFromInt(1000)))
}

func TestPriceInstallmentConstantWithoutExtras(t *testing.T) {
	loan, err := NewLoan(decimal.NewFromInt(100000), decimal.NewFromFloat(0.01), 120, domain.SystemPRICE)
	require.NoError(t, err)

	first := loan.Step(1, decimal.Zero)
	for month := 2; month <= 119; month++ {
		pay := loan.Step(month, decimal.Zero)
		assert.True(t, pay.Installment.Sub(first.Installment).Abs().LessThan(decimal.NewFromFloat(0.0001)),
			"installment changed at month %d", month)
	}
}

func TestSACPrincipalConstantInstallmentDecreasing(t *testing.T) {
	loan, err := NewLoan(decimal.NewFromInt(360000), decimal.NewFromFloat(0.008), 360, domain.SystemSAC)
	require.NoError(t, err)

	share := decimal.NewFromInt(1000) // 360000 / 360
	previous := decimal.Decimal{}
	for month := 1; month <= 360; month++ {
		pay := loan.Step(month, decimal.Zero)
		if loan.PaidOff() && pay.Installment.IsZero() {
			break
		}
		assert.True(t, pay.Principal.Sub(share).Abs().LessThan(decimal.NewFromFloat(0.01)),
			"principal share drifted at month %d: %s", month, pay.Principal)
		if month > 1 {
			assert.True(t, pay.Installment.LessThan(previous),
				"installment did not strictly decrease at month %d", month)
		}
		previous = pay.Installment
	}
	assert.True(t, loan.PaidOff())
}

func TestPrincipalPaymentsSumToOriginalPrincipal(t *testing.T) {
	tests := []struct {
		name   string
		system domain.AmortizationSystem
		extra  int64
	}{
		{"price without extras", domain.SystemPRICE, 0},
		{"price with extras", domain.SystemPRICE, 2000},
		{"sac without extras", domain.SystemSAC, 0},
		{"sac with extras", domain.SystemSAC, 2000},
	}

	principal := decimal.NewFromInt(50000)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan, err := NewLoan(principal, decimal.NewFromFloat(0.01), 60, tt.system)
			require.NoError(t, err)

			var paid decimal.Decimal
			for month := 1; month <= 60 && !loan.PaidOff(); month++ {
				extra := decimal.Zero
				if tt.extra > 0 && month%6 == 0 {
					extra = decimal.NewFromInt(tt.extra)
				}
				pay := loan.Step(month, extra)
				paid = paid.Add(pay.Principal).Add(pay.Extra)
			}

			require.True(t, loan.PaidOff())
			diff, _ := paid.Sub(principal).Abs().Float64()
			assert.InDelta(t, 0, diff, 0.05)
		})
	}
}

func TestExtraAmortizationShortensTermWithoutRecomputingInstallment(t *testing.T) {
	principal := decimal.NewFromInt(100000)
	rate := decimal.NewFromFloat(0.01)

	plain, err := NewLoan(principal, rate, 120, domain.SystemPRICE)
	require.NoError(t, err)
	accelerated, err := NewLoan(principal, rate, 120, domain.SystemPRICE)
	require.NoError(t, err)

	var plainPay, fastPay LoanPayment
	for month := 1; month <= 120; month++ {
		plainPay = plain.Step(month, decimal.Zero)
		extra := decimal.Zero
		if month == 12 {
			extra = decimal.NewFromInt(20000)
		}
		fastPay = accelerated.Step(month, extra)

		// Term, not installment, absorbs the acceleration.
		if !accelerated.PaidOff() && !plain.PaidOff() {
			assert.True(t, fastPay.Installment.Sub(plainPay.Installment).Abs().LessThan(decimal.NewFromFloat(0.01)),
				"installment diverged at month %d", month)
		}
	}

	require.True(t, accelerated.PaidOff())
	require.True(t, plain.PaidOff())
	assert.Less(t, accelerated.PayoffMonth(), plain.PayoffMonth())
}

func TestExtraAmortizationCappedAtBalance(t *testing.T) {
	loan, err := NewLoan(decimal.NewFromInt(10000), decimal.NewFromFloat(0.01), 12, domain.SystemSAC)
	require.NoError(t, err)

	pay := loan.Step(1, decimal.NewFromInt(50000))
	assert.True(t, loan.PaidOff())
	assert.True(t, pay.Extra.LessThan(decimal.NewFromInt(10000)),
		"extra must be capped to the balance remaining after the scheduled portion")
	assert.True(t, loan.Balance().IsZero())
}

func TestMaxExtraIsBalanceAfterScheduledShare(t *testing.T) {
	sac, err := NewLoan(decimal.NewFromInt(12000), decimal.Zero, 12, domain.SystemSAC)
	require.NoError(t, err)

	// 12000 balance minus the 1000 scheduled share.
	assert.True(t, sac.MaxExtra().Equal(decimal.NewFromInt(11000)))

	price, err := NewLoan(decimal.NewFromInt(100000), decimal.NewFromFloat(0.01), 120, domain.SystemPRICE)
	require.NoError(t, err)

	interest := decimal.NewFromInt(1000) // 100000 * 0.01
	scheduled := PriceInstallment(decimal.NewFromInt(100000), decimal.NewFromFloat(0.01), 120).Sub(interest)
	want := decimal.NewFromInt(100000).Sub(scheduled)
	diff, _ := price.MaxExtra().Sub(want).Abs().Float64()
	assert.InDelta(t, 0, diff, 0.01)

	// A paid-off loan absorbs nothing.
	paid, err := NewLoan(decimal.NewFromInt(1000), decimal.Zero, 1, domain.SystemPRICE)
	require.NoError(t, err)
	paid.Step(1, decimal.Zero)
	require.True(t, paid.PaidOff())
	assert.True(t, paid.MaxExtra().IsZero())
}

func TestNoInstallmentAfterPayoff(t *testing.T) {
	loan, err := NewLoan(decimal.NewFromInt(1000), decimal.Zero, 2, domain.SystemPRICE)
	require.NoError(t, err)

	loan.Step(1, decimal.Zero)
	loan.Step(2, decimal.Zero)
	require.True(t, loan.PaidOff())
	assert.Equal(t, 2, loan.PayoffMonth())

	pay := loan.Step(3, decimal.NewFromInt(500))
	assert.True(t, pay.Installment.IsZero())
	assert.True(t, pay.Interest.IsZero())
	assert.True(t, pay.Extra.IsZero())
}

func TestNewLoanRejectsBadInput(t *testing.T) {
	_, err := NewLoan(decimal.Zero, decimal.NewFromFloat(0.01), 12, domain.SystemPRICE)
	assert.Error(t, err)

	_, err = NewLoan(decimal.NewFromInt(1000), decimal.NewFromFloat(0.01), 0, domain.SystemPRICE)
	assert.Error(t, err)

	_, err = NewLoan(decimal.NewFromInt(1000), decimal.NewFromFloat(0.01), 12, domain.AmortizationSystem("balloon"))
	assert.Error(t, err)
}
