package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/housecomp/housing-simulator/internal/domain"
	"github.com/housecomp/housing-simulator/pkg/money"
)

// BalanceReader supplies the current balance a percentage event is evaluated
// against. It is passed explicitly so the scheduler stays pure and testable
// in isolation.
type BalanceReader func(month int) decimal.Decimal

// firing is one concrete occurrence of a recurring event. Fixed events carry
// a resolved amount; percentage events carry the percentage, resolved against
// the live balance only when the month is consumed.
type firing struct {
	source  domain.FundingSource
	amount  decimal.Decimal
	percent decimal.Decimal
}

// EventSchedule is the concrete month-to-firings expansion of a declarative
// event list. It is built once before the simulation loop and immutable
// thereafter.
type EventSchedule struct {
	firings map[int][]firing
}

// ExpandEvents generates every firing of every event within the horizon.
// Recurring events fire at start, start+interval, start+2*interval, ...
// bounded by occurrences or end month, whichever is declared, and always by
// the horizon. Inflation-adjusted fixed values are anchored at the event's
// own first firing month. An event with neither a start month nor an
// interval expands to nothing.
func ExpandEvents(events []domain.RecurringEvent, horizon int, inflationAnnualPct decimal.Decimal) *EventSchedule {
	schedule := &EventSchedule{firings: make(map[int][]firing)}

	for _, event := range events {
		if event.Month == 0 && event.IntervalMonths == nil {
			// Silently inert, not an error.
			continue
		}

		start := event.Month
		if start == 0 {
			start = 1
		}

		interval := 0
		if event.IntervalMonths != nil {
			interval = *event.IntervalMonths
		}

		count := 0
		for month := start; month <= horizon; month += interval {
			if event.EndMonth != nil && month > *event.EndMonth {
				break
			}
			if event.Occurrences != nil && count >= *event.Occurrences {
				break
			}
			count++

			f := firing{source: event.Source}
			switch event.ValueType {
			case domain.ValuePercentage:
				f.percent = event.Value
			default:
				f.amount = event.Value
				if event.InflationAdjust {
					f.amount = Inflate(event.Value, month-start, inflationAnnualPct)
				}
			}
			schedule.firings[month] = append(schedule.firings[month], f)

			if interval == 0 {
				break
			}
		}
	}

	return schedule
}

// AmountsAt resolves the total amount due at a month, summed per funding
// source. Events firing the same month are summed, never reduced to one, and
// distinct funding sources stay distinct so downstream components can apply
// source-specific rules. Percentage firings resolve against the balance
// supplied by read.
func (s *EventSchedule) AmountsAt(month int, read BalanceReader) map[domain.FundingSource]decimal.Decimal {
	firings, ok := s.firings[month]
	if !ok {
		return nil
	}

	amounts := make(map[domain.FundingSource]decimal.Decimal, len(firings))
	for _, f := range firings {
		amount := f.amount
		if !f.percent.IsZero() && read != nil {
			amount = money.Percent(read(month), f.percent)
		}
		amounts[f.source] = amounts[f.source].Add(amount)
	}
	return amounts
}

// Has reports whether any event fires at the given month.
func (s *EventSchedule) Has(month int) bool {
	return len(s.firings[month]) > 0
}
