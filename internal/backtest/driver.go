// Package backtest feeds price series through strategies and scores the results.
package backtest

import (
	"context"

	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-backtest/internal/strategy"
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

// ProgressCallback receives the state right after every step. Returning an
// error stops the run. It must not modify the strategy.
type ProgressCallback func(snapshot types.Snapshot) error

// Run gives every price to s in order. Strategy state is identical with or
// without a progress callback.
func Run(ctx context.Context, s strategy.Strategy, prices []float64, onProgress optional.Option[ProgressCallback]) error {
	for _, price := range prices {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.GiveDataPoint(price)

		if onProgress.IsSome() {
			if err := onProgress.Unwrap()(s.Snapshot()); err != nil {
				return err
			}
		}
	}

	return nil
}
