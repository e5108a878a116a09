package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/housecomp/housing-simulator/internal/domain"
)

func newTestSavings(initial, contribution int64, annualYieldPct float64) *RestrictedSavings {
	return NewRestrictedSavings(&domain.RestrictedSavingsConfig{
		InitialBalance:      decimal.NewFromInt(initial),
		MonthlyContribution: decimal.NewFromInt(contribution),
		AnnualYieldPct:      decimal.NewFromFloat(annualYieldPct),
	})
}

func TestRestrictedSavingsContributionBeforeYield(t *testing.T) {
	rs := newTestSavings(0, 100, 12.0)
	rs.Step()

	// The contribution lands first, so the very first yield accrues on it.
	expected := decimal.NewFromInt(100).
		Add(decimal.NewFromInt(100).Mul(AnnualToMonthly(decimal.NewFromInt(12))))
	assert.True(t, rs.Balance().Equal(expected),
		"got %s, expected %s", rs.Balance(), expected)
}

func TestRestrictedSavingsWithdrawalCooldownBoundary(t *testing.T) {
	rs := newTestSavings(100000, 0, 0)

	first := rs.Withdraw(decimal.NewFromInt(1000), 10)
	require.True(t, first.OK)

	// 23 months after the last withdrawal: still cooling down.
	blocked := rs.Withdraw(decimal.NewFromInt(1000), 33)
	assert.False(t, blocked.OK)
	assert.Equal(t, domain.BlockCooldownActive, blocked.Reason)

	// Exactly 24 months: allowed again.
	granted := rs.Withdraw(decimal.NewFromInt(1000), 34)
	assert.True(t, granted.OK)
}

func TestRestrictedSavingsDeniedWithdrawalDoesNotArmCooldown(t *testing.T) {
	rs := newTestSavings(500, 0, 0)

	denied := rs.Withdraw(decimal.NewFromInt(1000), 5)
	require.False(t, denied.OK)
	assert.Equal(t, domain.BlockInsufficientBalance, denied.Reason)
	assert.True(t, rs.Balance().Equal(decimal.NewFromInt(500)), "denied withdrawal must not debit")

	// The denial did not set last_withdrawal_month.
	granted := rs.Withdraw(decimal.NewFromInt(500), 6)
	assert.True(t, granted.OK)
}

func TestRestrictedSavingsAllOrNothing(t *testing.T) {
	rs := newTestSavings(999, 0, 0)

	res := rs.Withdraw(decimal.NewFromInt(1000), 1)
	assert.False(t, res.OK)
	assert.True(t, res.Amount.IsZero(), "no partial grants")
	assert.True(t, rs.Balance().Equal(decimal.NewFromInt(999)))
}

func TestRestrictedSavingsPurchaseCapAppliedBeforeBalanceCheck(t *testing.T) {
	rs := newTestSavings(50000, 0, 0)
	cap := decimal.NewFromInt(30000)

	res := rs.WithdrawForPurchase(decimal.NewFromInt(400000), &cap, 12)
	require.True(t, res.OK)
	assert.True(t, res.Amount.Equal(cap))
	assert.True(t, rs.Balance().Equal(decimal.NewFromInt(20000)))
}

func TestRestrictedSavingsPurchaseWithdrawalSharesCooldown(t *testing.T) {
	rs := newTestSavings(100000, 0, 0)

	// An amortization withdrawal arms the same cooldown a purchase checks.
	first := rs.Withdraw(decimal.NewFromInt(5000), 10)
	require.True(t, first.OK)

	res := rs.WithdrawForPurchase(decimal.NewFromInt(50000), nil, 20)
	assert.False(t, res.OK)
	assert.Equal(t, domain.BlockCooldownActive, res.Reason)
}

func TestRestrictedSavingsUsageCounters(t *testing.T) {
	rs := newTestSavings(10000, 0, 0)

	rs.Withdraw(decimal.NewFromInt(4000), 1)  // granted
	rs.Withdraw(decimal.NewFromInt(4000), 2)  // cooldown
	rs.Withdraw(decimal.NewFromInt(4000), 26) // granted again, 25 months later

	usage := rs.Usage()
	assert.Equal(t, 2, usage.WithdrawalsGranted)
	assert.Equal(t, 1, usage.WithdrawalsBlocked)
	assert.True(t, usage.AmountWithdrawn.Equal(decimal.NewFromInt(8000)))
	assert.True(t, usage.AmountBlocked.Equal(decimal.NewFromInt(4000)))
}

func TestNilRestrictedSavingsReadsAsZero(t *testing.T) {
	var rs *RestrictedSavings

	rs.Step()
	assert.True(t, rs.Balance().IsZero())

	res := rs.Withdraw(decimal.NewFromInt(100), 1)
	assert.False(t, res.OK)
}
