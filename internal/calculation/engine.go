package calculation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/housecomp/housing-simulator/internal/domain"
)

// SimulationEngine orchestrates the three scenario simulations and the
// comparison layer. Each run is a pure function of its input; the engine
// itself holds no per-run state.
type SimulationEngine struct {
	Logger Logger
}

// NewSimulationEngine creates an engine with a no-op logger.
func NewSimulationEngine() *SimulationEngine {
	return &SimulationEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger restores the no-op default.
func (ce *SimulationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunAll runs the three scenarios over the same input and compares them.
// The scenarios are independent and each owns its own account state, so they
// run concurrently; every invocation remains deterministic.
func (ce *SimulationEngine) RunAll(ctx context.Context, in *domain.SimulationInput) (*domain.SimulationOutput, error) {
	if in.HorizonMonths <= 0 {
		return nil, fmt.Errorf("horizon must be positive, got %d months", in.HorizonMonths)
	}

	out := &domain.SimulationOutput{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		result, err := ce.runBuyScenario(in)
		out.Buy = result
		return err
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		result, err := ce.runRentInvestScenario(in)
		out.RentInvest = result
		return err
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		result, err := ce.runInvestThenBuyScenario(in)
		out.InvestThenBuy = result
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.Comparison = Compare(out.Buy, out.RentInvest, out.InvestThenBuy, initialWealth(in))

	ce.Logger.Infof("simulation finished: %d months, best scenario %s",
		in.HorizonMonths, out.Comparison.Best)

	return out, nil
}

// initialWealth is the total cash committed at month 1, identical across the
// three scenarios so their net-worth changes are comparable.
func initialWealth(in *domain.SimulationInput) decimal.Decimal {
	wealth := in.Loan.DownPayment.Add(in.Investment.InitialBalance)
	if in.RestrictedSavings != nil {
		wealth = wealth.Add(in.RestrictedSavings.InitialBalance)
	}
	return wealth
}
