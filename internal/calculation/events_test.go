package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/housecomp/housing-simulator/internal/domain"
)

func intPtr(v int) *int { return &v }

func fixedBalance(v int64) BalanceReader {
	return func(int) decimal.Decimal { return decimal.NewFromInt(v) }
}

func TestExpandEventsSingleFiring(t *testing.T) {
	events := []domain.RecurringEvent{
		{Month: 3, Value: decimal.NewFromInt(100), ValueType: domain.ValueFixed, Source: domain.SourceCash},
	}
	schedule := ExpandEvents(events, 12, decimal.Zero)

	amounts := schedule.AmountsAt(3, nil)
	require.NotNil(t, amounts)
	assert.True(t, amounts[domain.SourceCash].Equal(decimal.NewFromInt(100)))

	assert.Nil(t, schedule.AmountsAt(2, nil))
	assert.Nil(t, schedule.AmountsAt(4, nil))
}

func TestExpandEventsIntervalBoundedByOccurrences(t *testing.T) {
	events := []domain.RecurringEvent{
		{
			Month:          2,
			Value:          decimal.NewFromInt(50),
			ValueType:      domain.ValueFixed,
			IntervalMonths: intPtr(3),
			Occurrences:    intPtr(3),
			Source:         domain.SourceCash,
		},
	}
	schedule := ExpandEvents(events, 24, decimal.Zero)

	for _, month := range []int{2, 5, 8} {
		assert.True(t, schedule.Has(month), "expected firing at month %d", month)
	}
	assert.False(t, schedule.Has(11), "occurrences bound must stop the fourth firing")
}

func TestExpandEventsIntervalBoundedByEndMonth(t *testing.T) {
	events := []domain.RecurringEvent{
		{
			Month:          1,
			Value:          decimal.NewFromInt(50),
			ValueType:      domain.ValueFixed,
			IntervalMonths: intPtr(6),
			EndMonth:       intPtr(13),
			Source:         domain.SourceCash,
		},
	}
	schedule := ExpandEvents(events, 36, decimal.Zero)

	for _, month := range []int{1, 7, 13} {
		assert.True(t, schedule.Has(month))
	}
	assert.False(t, schedule.Has(19))
}

func TestExpandEventsBoundedByHorizon(t *testing.T) {
	events := []domain.RecurringEvent{
		{
			Month:          10,
			Value:          decimal.NewFromInt(50),
			ValueType:      domain.ValueFixed,
			IntervalMonths: intPtr(5),
			Source:         domain.SourceCash,
		},
	}
	schedule := ExpandEvents(events, 12, decimal.Zero)

	assert.True(t, schedule.Has(10))
	assert.False(t, schedule.Has(15))
}

func TestExpandEventsInflationAnchoredAtFirstFiring(t *testing.T) {
	events := []domain.RecurringEvent{
		{
			Month:           6,
			Value:           decimal.NewFromInt(100),
			ValueType:       domain.ValueFixed,
			IntervalMonths:  intPtr(12),
			InflationAdjust: true,
			Source:          domain.SourceCash,
		},
	}
	schedule := ExpandEvents(events, 36, decimal.NewFromInt(10))

	first, _ := schedule.AmountsAt(6, nil)[domain.SourceCash].Float64()
	second, _ := schedule.AmountsAt(18, nil)[domain.SourceCash].Float64()

	// The anchor is the event's own first firing, not month 1 globally.
	assert.InDelta(t, 100.0, first, 1e-9)
	assert.InDelta(t, 110.0, second, 1e-6)
}

func TestExpandEventsPercentageResolvedAgainstLiveBalance(t *testing.T) {
	events := []domain.RecurringEvent{
		{Month: 4, Value: decimal.NewFromInt(2), ValueType: domain.ValuePercentage, Source: domain.SourceCash},
	}
	schedule := ExpandEvents(events, 12, decimal.Zero)

	amount := schedule.AmountsAt(4, fixedBalance(5000))[domain.SourceCash]
	assert.True(t, amount.Equal(decimal.NewFromInt(100)))

	// A different balance at fire time yields a different amount.
	amount = schedule.AmountsAt(4, fixedBalance(1000))[domain.SourceCash]
	assert.True(t, amount.Equal(decimal.NewFromInt(20)))
}

func TestExpandEventsSameMonthSummedPerSource(t *testing.T) {
	events := []domain.RecurringEvent{
		{Month: 5, Value: decimal.NewFromInt(100), ValueType: domain.ValueFixed, Source: domain.SourceCash},
		{Month: 5, Value: decimal.NewFromInt(40), ValueType: domain.ValueFixed, Source: domain.SourceCash},
		{Month: 5, Value: decimal.NewFromInt(200), ValueType: domain.ValueFixed, Source: domain.SourceRestrictedSavings},
	}
	schedule := ExpandEvents(events, 12, decimal.Zero)

	amounts := schedule.AmountsAt(5, nil)
	assert.True(t, amounts[domain.SourceCash].Equal(decimal.NewFromInt(140)))
	assert.True(t, amounts[domain.SourceRestrictedSavings].Equal(decimal.NewFromInt(200)))
}

func TestExpandEventsInertEvent(t *testing.T) {
	events := []domain.RecurringEvent{
		{Value: decimal.NewFromInt(100), ValueType: domain.ValueFixed, Source: domain.SourceCash},
	}
	schedule := ExpandEvents(events, 12, decimal.Zero)

	for month := 1; month <= 12; month++ {
		assert.False(t, schedule.Has(month), "inert event must produce zero firings")
	}
}

func TestExpandEventsIntervalWithoutStartDefaultsToMonthOne(t *testing.T) {
	events := []domain.RecurringEvent{
		{
			Value:          decimal.NewFromInt(100),
			ValueType:      domain.ValueFixed,
			IntervalMonths: intPtr(12),
			Source:         domain.SourceCash,
		},
	}
	schedule := ExpandEvents(events, 25, decimal.Zero)

	assert.True(t, schedule.Has(1))
	assert.True(t, schedule.Has(13))
	assert.True(t, schedule.Has(25))
}
