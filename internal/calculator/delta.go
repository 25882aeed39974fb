package calculator

import (
	"fmt"
	"log/slog"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/context"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/git"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/logging"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/strategy"
)

// DeltaResult holds the unpublished commits and the evidence behind them.
type DeltaResult struct {
	Context    *context.RepositoryContext
	PushPoint  strategy.PushPoint
	Attempts   []strategy.Attempt
	Divergence Divergence
	Range      CommitRange

	// Commits are ordered oldest to newest.
	Commits []git.Commit

	// EnumeratedBy names the enumeration path that produced Commits.
	EnumeratedBy string

	// IsFirstPublish is true when no push point was located.
	IsFirstPublish bool

	// IsForcedHistory is true when HEAD no longer contains the remote-tracking ref.
	IsForcedHistory bool

	Warnings []string
}

// Count returns the number of unpublished commits.
func (r DeltaResult) Count() int {
	return len(r.Commits)
}

// CommitShas returns the commit SHAs, oldest first.
func (r DeltaResult) CommitShas() []string {
	shas := make([]string, 0, len(r.Commits))
	for _, c := range r.Commits {
		shas = append(shas, c.Sha)
	}
	return shas
}

// DeltaCalculator orchestrates push-point location, divergence
// classification, range resolution and enumeration.
type DeltaCalculator struct {
	store      *git.RepositoryStore
	locator    *strategy.Locator
	enumerator *Enumerator
	log        *slog.Logger
}

// NewDeltaCalculator creates a DeltaCalculator running the given strategies.
func NewDeltaCalculator(
	store *git.RepositoryStore,
	strategies []strategy.PushPointStrategy,
	log *slog.Logger,
) *DeltaCalculator {
	log = logging.OrDiscard(log)
	return &DeltaCalculator{
		store:      store,
		locator:    strategy.NewLocator(strategies, log),
		enumerator: NewEnumerator(DefaultPaths(store), log),
		log:        log,
	}
}

// Calculate computes the delta for ctx. When explain is true, strategy
// attempts carry their reasoning steps.
func (c *DeltaCalculator) Calculate(ctx *context.RepositoryContext, explain bool) (DeltaResult, error) {
	result := DeltaResult{
		Context:  ctx,
		Warnings: append([]string(nil), ctx.Warnings...),
	}

	// Step 1: Locate the push point.
	located := c.locator.Locate(ctx, explain)
	result.PushPoint = located.PushPoint
	result.Attempts = located.Attempts
	result.IsFirstPublish = !located.PushPoint.IsPresent()

	// Step 2: Classify divergence. Failures degrade to unknown.
	div, err := ClassifyDivergence(c.store, ctx)
	if err != nil {
		c.log.Warn("divergence classification failed", "error", err)
		div = Divergence{State: DivergenceUnknown}
	}
	result.Divergence = div
	result.IsForcedHistory = div.State == DivergenceForced
	if result.IsForcedHistory {
		msg := fmt.Sprintf("history of %s was rewritten since %s/%s was last updated",
			ctx.BranchName(), ctx.Remote, ctx.BranchName())
		result.Warnings = append(result.Warnings, msg)
		c.log.Warn("remote-tracking ref is not an ancestor of HEAD",
			"branch", ctx.BranchName(),
			"remote", ctx.Remote,
			"tracking", div.TrackingSha,
		)
	}

	// Step 3: Resolve the commit range.
	r, err := ResolveRange(c.store, ctx.Head, located.PushPoint, ctx.Configuration.WindowSize)
	if err != nil {
		return DeltaResult{}, fmt.Errorf("resolving commit range: %w", err)
	}
	result.Range = r

	// Step 4: Enumerate.
	commits, path, err := c.enumerator.Enumerate(r)
	if err != nil {
		return DeltaResult{}, fmt.Errorf("enumerating commits: %w", err)
	}
	result.Commits = commits
	result.EnumeratedBy = path

	c.log.Debug("delta calculated",
		"range", r.String(),
		"kind", string(r.Kind),
		"path", path,
		"count", result.Count(),
	)

	return result, nil
}
