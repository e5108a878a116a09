package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/housecomp/housing-simulator/internal/domain"
	"github.com/housecomp/housing-simulator/pkg/money"
)

// WithdrawalCooldownMonths is the minimum spacing between two granted
// withdrawals from the restricted account. A withdrawal used toward the
// purchase down payment counts identically to one used for an extra
// amortization.
const WithdrawalCooldownMonths = 24

// RestrictedSavings models the FGTS-like account: monthly contribution and
// yield, plus a cooldown-gated, all-or-nothing withdrawal. The account is
// never deleted; it persists even after a scenario no longer needs it.
type RestrictedSavings struct {
	balance      decimal.Decimal
	contribution decimal.Decimal
	monthlyYield decimal.Decimal

	// lastWithdrawalMonth is 0 until the first granted withdrawal.
	lastWithdrawalMonth int

	usage domain.RestrictedSavingsUsage
}

// WithdrawalResult reports the outcome of a withdrawal request. Denials are
// normal economic outcomes, recorded as data rather than raised as errors.
type WithdrawalResult struct {
	OK     bool
	Amount decimal.Decimal
	Reason domain.BlockReason
}

// NewRestrictedSavings builds the account from its config, or returns nil
// when the simulation has no such account.
func NewRestrictedSavings(cfg *domain.RestrictedSavingsConfig) *RestrictedSavings {
	if cfg == nil {
		return nil
	}
	return &RestrictedSavings{
		balance:      cfg.InitialBalance,
		contribution: cfg.MonthlyContribution,
		monthlyYield: AnnualToMonthly(cfg.AnnualYieldPct),
	}
}

// Step advances the account one month: the contribution is added first, then
// yield accrues on the post-contribution balance.
func (rs *RestrictedSavings) Step() {
	if rs == nil {
		return
	}
	rs.balance = rs.balance.Add(rs.contribution)
	rs.balance = rs.balance.Add(rs.balance.Mul(rs.monthlyYield))
}

// Withdraw requests an all-or-nothing withdrawal at the given month. The
// cooldown check runs first, then the balance check; partial grants never
// happen.
func (rs *RestrictedSavings) Withdraw(amount decimal.Decimal, month int) WithdrawalResult {
	if rs == nil {
		return WithdrawalResult{Reason: domain.BlockInsufficientBalance}
	}

	if rs.lastWithdrawalMonth > 0 && month-rs.lastWithdrawalMonth < WithdrawalCooldownMonths {
		rs.usage.WithdrawalsBlocked++
		rs.usage.AmountBlocked = rs.usage.AmountBlocked.Add(amount)
		return WithdrawalResult{Reason: domain.BlockCooldownActive}
	}

	if rs.balance.LessThan(amount) {
		rs.usage.WithdrawalsBlocked++
		rs.usage.AmountBlocked = rs.usage.AmountBlocked.Add(amount)
		return WithdrawalResult{Reason: domain.BlockInsufficientBalance}
	}

	rs.balance = rs.balance.Sub(amount)
	rs.lastWithdrawalMonth = month
	rs.usage.WithdrawalsGranted++
	rs.usage.AmountWithdrawn = rs.usage.AmountWithdrawn.Add(amount)
	return WithdrawalResult{OK: true, Amount: amount}
}

// WithdrawForPurchase caps the request before the all-or-nothing check runs:
// the amount asked for is the smallest of the target, the balance and the
// configured purchase cap, so only the cooldown can still deny it.
func (rs *RestrictedSavings) WithdrawForPurchase(target decimal.Decimal, cap *decimal.Decimal, month int) WithdrawalResult {
	if rs == nil || rs.balance.IsZero() {
		return WithdrawalResult{Reason: domain.BlockInsufficientBalance}
	}

	request := money.Min(target, rs.balance)
	if cap != nil {
		request = money.Min(request, *cap)
	}
	if request.LessThanOrEqual(decimal.Zero) {
		return WithdrawalResult{Reason: domain.BlockInsufficientBalance}
	}
	return rs.Withdraw(request, month)
}

// Balance returns the current balance; a nil account reads as zero.
func (rs *RestrictedSavings) Balance() decimal.Decimal {
	if rs == nil {
		return decimal.Zero
	}
	return rs.balance
}

// Usage returns the withdrawal activity summary.
func (rs *RestrictedSavings) Usage() domain.RestrictedSavingsUsage {
	if rs == nil {
		return domain.RestrictedSavingsUsage{}
	}
	return rs.usage
}
