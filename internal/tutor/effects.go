package tutor

import (
	"context"
	"fmt"
	"os"
)

// Effect is one fire-and-forget side effect queued by an operation:
// profile recomputation, periodic reassessment, plan revision. Effects
// never influence the operation's own result.
type Effect struct {
	Name string
	Run  func(ctx context.Context) error
}

// RunEffects executes effects in order. A failing effect is logged and
// the rest still run.
func RunEffects(ctx context.Context, effects []Effect) {
	for _, e := range effects {
		if err := e.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s effect failed: %v\n", e.Name, err)
		}
	}
}
