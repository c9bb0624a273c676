// Package workflow runs a fixed sequence of steps and undoes completed work
// when a later step fails.
package workflow

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Step is one unit of a workflow. Invoke receives the output of the previous
// step and returns its own output, which is later handed to Compensate.
// Invoke may return a partial output together with an error; it is
// compensated as well.
type Step struct {
	Name       string
	Invoke     func(ctx context.Context, in any) (any, error)
	Compensate func(ctx context.Context, out any) error
}

type Workflow struct {
	name   string
	steps  []Step
	logger *zap.Logger
}

func New(name string, logger *zap.Logger, steps ...Step) *Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workflow{name: name, steps: steps, logger: logger}
}

type completed struct {
	step Step
	out  any
}

// Run executes the steps in order and returns the output of the last one.
func (w *Workflow) Run(ctx context.Context, in any) (any, error) {
	done := make([]completed, 0, len(w.steps))
	current := in

	for _, step := range w.steps {
		out, err := step.Invoke(ctx, current)
		if err != nil {
			if out != nil {
				done = append(done, completed{step: step, out: out})
			}
			w.compensate(ctx, done)
			return nil, fmt.Errorf("workflow %s: step %s: %w", w.name, step.Name, err)
		}
		done = append(done, completed{step: step, out: out})
		current = out
	}

	return current, nil
}

func (w *Workflow) compensate(ctx context.Context, done []completed) {
	ctx = context.WithoutCancel(ctx)

	for i := len(done) - 1; i >= 0; i-- {
		entry := done[i]
		if entry.step.Compensate == nil {
			continue
		}
		if err := entry.step.Compensate(ctx, entry.out); err != nil {
			w.logger.Error("workflow compensation failed",
				zap.String("workflow", w.name),
				zap.String("step", entry.step.Name),
				zap.Error(err),
			)
		}
	}
}
