// Package saga provides a minimal runner for ordered pipelines of
// compensable steps. A step's action is executed in sequence; when a later
// step fails, the compensations of the already completed steps run in
// reverse order. Compensation failures are logged and do not stop the
// unwind.
package saga

import (
	"context"
	"log/slog"
)

// Step pairs an action with the compensation that undoes it.
// A nil Compensate marks the step as non-compensable.
type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Runner executes steps in order and unwinds on first failure.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a runner that reports compensation progress through logger.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logger.With("component", "saga")}
}

// Execute runs the steps sequentially. On the first failing step it
// compensates every previously completed step in reverse order and
// returns the failing step's error. The failed step itself is never
// compensated.
func (r *Runner) Execute(ctx context.Context, steps []Step) error {
	var completed []Step

	for _, step := range steps {
		if err := step.Run(ctx); err != nil {
			r.logger.WarnContext(ctx, "step failed, unwinding",
				"step", step.Name, "completed", len(completed), "error", err)
			r.unwind(ctx, completed)
			return err
		}
		completed = append(completed, step)
	}

	return nil
}

func (r *Runner) unwind(ctx context.Context, completed []Step) {
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			// Nothing left to do beyond reporting: the remaining
			// compensations still have to run.
			r.logger.ErrorContext(ctx, "compensation failed",
				"step", step.Name, "error", err)
		}
	}
}
