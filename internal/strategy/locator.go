package strategy

import (
	"log/slog"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/context"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/logging"
)

// Attempt records the outcome of one strategy during location.
type Attempt struct {
	Strategy string
	Found    bool

	// Err is the history-query error that made the strategy miss, if any.
	Err error

	// Explanation is nil unless explain mode is enabled.
	Explanation *Explanation
}

// LocateResult is the outcome of running the strategy chain.
type LocateResult struct {
	PushPoint PushPoint

	// Attempts lists the strategies that ran, in order. Strategies after
	// the first hit are not run.
	Attempts []Attempt
}

// Locator runs push-point strategies in order and returns the first hit.
type Locator struct {
	strategies []PushPointStrategy
	log        *slog.Logger
}

// NewLocator creates a Locator over the given strategies.
func NewLocator(strategies []PushPointStrategy, log *slog.Logger) *Locator {
	return &Locator{strategies: strategies, log: logging.OrDiscard(log)}
}

// Locate runs the chain. It never fails: a strategy error is logged and
// counts as a miss, and an exhausted chain yields the absent push point.
func (l *Locator) Locate(ctx *context.RepositoryContext, explain bool) LocateResult {
	var result LocateResult

	for _, s := range l.strategies {
		var exp *Explanation
		if explain {
			exp = NewExplanation(s.Name())
		}

		pp, err := s.Locate(ctx, exp)
		attempt := Attempt{Strategy: s.Name(), Err: err, Explanation: exp}

		if err != nil {
			exp.Addf("error: %v", err)
			l.log.Warn("push-point strategy failed", "strategy", s.Name(), "error", err)
			result.Attempts = append(result.Attempts, attempt)
			continue
		}

		if pp == nil || pp.Commit == nil {
			l.log.Debug("push-point strategy missed", "strategy", s.Name())
			result.Attempts = append(result.Attempts, attempt)
			continue
		}

		attempt.Found = true
		result.Attempts = append(result.Attempts, attempt)
		result.PushPoint = *pp
		l.log.Debug("push point located",
			"strategy", pp.Strategy,
			"commit", pp.Commit.Sha,
			"confidence", string(pp.Confidence),
		)
		return result
	}

	result.PushPoint = NoPushPoint()
	l.log.Debug("no push point located", "branch", ctx.BranchName())
	return result
}
