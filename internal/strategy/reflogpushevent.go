package strategy

import (
	"fmt"
	"regexp"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/config"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/context"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/git"
)

// ReflogPushEventStrategy takes the newest push event recorded in the
// reflog of the branch's remote-tracking ref.
type ReflogPushEventStrategy struct {
	store *git.RepositoryStore
}

// NewReflogPushEventStrategy creates a new ReflogPushEventStrategy.
func NewReflogPushEventStrategy(store *git.RepositoryStore) *ReflogPushEventStrategy {
	return &ReflogPushEventStrategy{store: store}
}

func (s *ReflogPushEventStrategy) Name() string { return config.StrategyReflogPushEvent }

func (s *ReflogPushEventStrategy) Locate(ctx *context.RepositoryContext, exp *Explanation) (*PushPoint, error) {
	pattern := ctx.Configuration.PushEventPattern
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling push-event-pattern %q: %w", pattern, err)
	}

	ref := ctx.TrackingRef().Canonical
	entry, err := s.store.FindReflogEntry(ref, func(e git.ReflogEntry) bool {
		return re.MatchString(e.Message)
	})
	if err != nil {
		return nil, fmt.Errorf("reading reflog of %s: %w", ref, err)
	}
	if entry == nil {
		exp.Addf("no reflog entry of %s matches %q", ref, pattern)
		return nil, nil
	}

	commit, ok := s.store.LookupCommit(entry.NewSha)
	if !ok {
		exp.Addf("push event %q points at %s, which no longer exists", entry.Message, shortSha(entry.NewSha))
		return nil, nil
	}

	exp.Addf("push event %q on %s -> %s", entry.Message, ref, commit.ShortSha())
	return &PushPoint{
		Commit:     &commit,
		Strategy:   s.Name(),
		Confidence: ConfidenceHigh,
		Source:     fmt.Sprintf("reflog %s: %s", ref, entry.Message),
	}, nil
}

func shortSha(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
