package registrant

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds the classification pool when Options.Workers is unset.
const DefaultWorkers = 4

// Options configures a processing pass. Zero values fall back to the defaults.
type Options struct {
	Labels  Labels
	Workers int
	Logger  *zap.Logger
}

// Process classifies every row and folds the outcomes into a Result.
//
// The export format is detected once from the first row. Rows are classified
// on a bounded pool of workers; each worker writes only its own slot, and the
// outcomes are folded in input order so records and event lists come out the
// same as a sequential pass.
func Process(ctx context.Context, rows []Row, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(rows) == 0 {
		logger.Debug("no rows to process")
		return NewAccumulator().Result(), nil
	}

	return ProcessFormat(ctx, rows, DetectRowFormat(rows[0]), opts)
}

// ProcessFormat is Process with an already detected format.
func ProcessFormat(ctx context.Context, rows []Row, format Format, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	labels := opts.Labels
	if labels == (Labels{}) {
		labels = DefaultLabels()
	}

	classifier := NewClassifier(labels)
	outcomes := make([]Outcome, len(rows))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i := range rows {
		if err := groupCtx.Err(); err != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = classifier.Classify(rows[i], format)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("classify rows: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("classify rows: %w", err)
	}

	acc := NewAccumulator()
	for i, outcome := range outcomes {
		if outcome.Skipped() {
			logger.Debug("row skipped", zap.Int("row", i+1))
		}
		acc.Add(outcome)
	}

	result := acc.Result()
	logger.Debug("rows classified",
		zap.Stringer("format", format),
		zap.Int("rows", result.RowsRead),
		zap.Int("iftar", len(result.Iftar)),
		zap.Int("programming", len(result.Programming)),
		zap.Int("skipped", result.RowsSkipped),
	)
	return result, nil
}
